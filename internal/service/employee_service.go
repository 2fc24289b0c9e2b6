package service

import (
	"context"
	"fmt"
	"time"

	"restaurant_api/internal/model"
	"restaurant_api/internal/repository"
)

// EmployeeService provides employee management
type EmployeeService interface {
	Create(ctx context.Context, req model.EmployeeRequest) (*model.Employee, error)
	List(ctx context.Context) ([]model.Employee, error)
	Get(ctx context.Context, id int) (*model.Employee, error)
	Update(ctx context.Context, id int, req model.EmployeeRequest) (*model.Employee, error)
	Delete(ctx context.Context, id int) error
}

type employeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(employeeRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func parseDateHired(value string) time.Time {
	if value == "" {
		return time.Now()
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Now()
}

// Create adds a new employee. Hire date defaults to now, status to active,
// and a table is only assigned to waiters.
func (s *employeeService) Create(ctx context.Context, req model.EmployeeRequest) (*model.Employee, error) {
	if req.Name == "" {
		return nil, &ValidationError{Messages: []string{"Name can't be blank"}}
	}

	status := req.Status
	if status == "" {
		status = model.EmployeeStatusActive
	}
	reason := ""
	if v := req.ReasonForLeavingValue(); v != nil {
		reason = *v
	}
	image := ""
	if req.Image != nil {
		image = *req.Image
	}

	employee := &model.Employee{
		Name:             req.Name,
		Phone:            req.Phone,
		Image:            image,
		Position:         req.Position,
		Salary:           req.Salary,
		DateHired:        parseDateHired(req.DateHiredValue()),
		Description:      req.Description,
		WorkingHour:      req.WorkingHourValue(),
		Status:           status,
		ReasonForLeaving: reason,
	}

	if req.Position == model.PositionWaiter {
		employee.TableAssigned = req.TableAssignedValue()
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// List returns all employees
func (s *employeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.employeeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Get returns a single employee by ID
func (s *employeeService) Get(ctx context.Context, id int) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}
	return employee, nil
}

// Update applies a partial update. Moving an employee off the waiter
// position clears their table assignment.
func (s *employeeService) Update(ctx context.Context, id int, req model.EmployeeRequest) (*model.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	if req.Name != "" {
		employee.Name = req.Name
	}
	if req.Phone != "" {
		employee.Phone = req.Phone
	}
	if req.Image != nil {
		employee.Image = *req.Image
	}
	if req.Salary != "" {
		employee.Salary = req.Salary
	}
	if v := req.DateHiredValue(); v != "" {
		employee.DateHired = parseDateHired(v)
	}
	if req.Description != "" {
		employee.Description = req.Description
	}
	if v := req.WorkingHourValue(); v != "" {
		employee.WorkingHour = v
	}
	if req.Status != "" {
		employee.Status = req.Status
	}
	if v := req.ReasonForLeavingValue(); v != nil {
		employee.ReasonForLeaving = *v
	}

	if req.Position != "" {
		employee.Position = req.Position
		if req.Position == model.PositionWaiter {
			if v := req.TableAssignedValue(); v != nil {
				employee.TableAssigned = v
			}
		} else {
			employee.TableAssigned = nil
		}
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// Delete removes an employee
func (s *employeeService) Delete(ctx context.Context, id int) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find employee: %w", err)
	}
	if employee == nil {
		return ErrEmployeeNotFound
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
