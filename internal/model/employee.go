package model

import "time"

const (
	EmployeeStatusActive = "active"
	PositionWaiter       = "waiter"
)

// Employee represents a staff member record
type Employee struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Image            string    `json:"image"`
	Position         string    `json:"position"`
	Salary           string    `json:"salary"`
	DateHired        time.Time `json:"date_hired"`
	Description      string    `json:"description"`
	WorkingHour      string    `json:"working_hour"`
	TableAssigned    *string   `json:"table_assigned,omitempty"`
	Status           string    `json:"status"`
	ReasonForLeaving string    `json:"reason_for_leaving"`
}

// EmployeeResponse is the wire shape consumed by the admin front-end. The
// camelCase names (dateHired, workingHour, tableAssigned, reasonForLeaving)
// are a fixed external contract.
type EmployeeResponse struct {
	ID               int       `json:"_id"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Image            string    `json:"image"`
	Position         string    `json:"position"`
	Salary           string    `json:"salary"`
	DateHired        time.Time `json:"dateHired"`
	Description      string    `json:"description"`
	WorkingHour      string    `json:"workingHour"`
	TableAssigned    *string   `json:"tableAssigned"`
	Status           string    `json:"status"`
	ReasonForLeaving string    `json:"reasonForLeaving"`
}

// ToResponse maps an employee to its wire shape
func (e *Employee) ToResponse() EmployeeResponse {
	return EmployeeResponse{
		ID:               e.ID,
		Name:             e.Name,
		Phone:            e.Phone,
		Image:            e.Image,
		Position:         e.Position,
		Salary:           e.Salary,
		DateHired:        e.DateHired,
		Description:      e.Description,
		WorkingHour:      e.WorkingHour,
		TableAssigned:    e.TableAssigned,
		Status:           e.Status,
		ReasonForLeaving: e.ReasonForLeaving,
	}
}

// EmployeeRequest is the payload for creating or updating an employee.
// Camel/snake key pairs accept both spellings with camelCase winning.
type EmployeeRequest struct {
	Name                string  `json:"name"`
	Phone               string  `json:"phone"`
	Image               *string `json:"image"`
	Position            string  `json:"position"`
	Salary              string  `json:"salary"`
	DateHired           string  `json:"dateHired"`
	DateHiredAlt        string  `json:"date_hired"`
	Description         string  `json:"description"`
	WorkingHour         string  `json:"workingHour"`
	WorkingHourAlt      string  `json:"working_hour"`
	TableAssigned       *string `json:"tableAssigned"`
	TableAssignedAlt    *string `json:"table_assigned"`
	Status              string  `json:"status"`
	ReasonForLeaving    *string `json:"reasonForLeaving"`
	ReasonForLeavingAlt *string `json:"reason_for_leaving"`
}

// DateHiredValue resolves the dateHired/date_hired key pair
func (r *EmployeeRequest) DateHiredValue() string {
	if r.DateHired != "" {
		return r.DateHired
	}
	return r.DateHiredAlt
}

// WorkingHourValue resolves the workingHour/working_hour key pair
func (r *EmployeeRequest) WorkingHourValue() string {
	if r.WorkingHour != "" {
		return r.WorkingHour
	}
	return r.WorkingHourAlt
}

// TableAssignedValue resolves the tableAssigned/table_assigned key pair
func (r *EmployeeRequest) TableAssignedValue() *string {
	if r.TableAssigned != nil {
		return r.TableAssigned
	}
	return r.TableAssignedAlt
}

// ReasonForLeavingValue resolves the reasonForLeaving/reason_for_leaving key pair
func (r *EmployeeRequest) ReasonForLeavingValue() *string {
	if r.ReasonForLeaving != nil {
		return r.ReasonForLeaving
	}
	return r.ReasonForLeavingAlt
}
