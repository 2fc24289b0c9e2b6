package repository

import (
	"context"
	"errors"
	"fmt"

	"restaurant_api/internal/model"

	"github.com/jackc/pgx/v5"
)

// EmployeeRepository defines operations for employee data
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	FindAll(ctx context.Context) ([]model.Employee, error)
	FindByID(ctx context.Context, id int) (*model.Employee, error)
	Update(ctx context.Context, employee *model.Employee) error
	Delete(ctx context.Context, id int) error
}

type employeeRepository struct {
	db DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

// Create inserts a new employee into the database
func (r *employeeRepository) Create(ctx context.Context, e *model.Employee) error {
	sql := `INSERT INTO employees (name, phone, image, position, salary, date_hired, description,
            working_hour, table_assigned, status, reason_for_leaving)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err := r.db.QueryRow(ctx, sql, e.Name, e.Phone, e.Image, e.Position, e.Salary, e.DateHired,
		e.Description, e.WorkingHour, e.TableAssigned, e.Status, e.ReasonForLeaving).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// FindAll retrieves all employees
func (r *employeeRepository) FindAll(ctx context.Context) ([]model.Employee, error) {
	sql := `SELECT id, name, phone, image, position, salary, date_hired, description,
            working_hour, table_assigned, status, reason_for_leaving FROM employees ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []model.Employee{}
	for rows.Next() {
		var e model.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.Image, &e.Position, &e.Salary, &e.DateHired,
			&e.Description, &e.WorkingHour, &e.TableAssigned, &e.Status, &e.ReasonForLeaving); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employees: %w", err)
	}
	return employees, nil
}

// FindByID retrieves an employee by their ID
func (r *employeeRepository) FindByID(ctx context.Context, id int) (*model.Employee, error) {
	e := &model.Employee{}
	sql := `SELECT id, name, phone, image, position, salary, date_hired, description,
            working_hour, table_assigned, status, reason_for_leaving FROM employees WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&e.ID, &e.Name, &e.Phone, &e.Image, &e.Position, &e.Salary,
		&e.DateHired, &e.Description, &e.WorkingHour, &e.TableAssigned, &e.Status, &e.ReasonForLeaving)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find employee by ID: %w", err)
	}
	return e, nil
}

// Update rewrites an employee row
func (r *employeeRepository) Update(ctx context.Context, e *model.Employee) error {
	sql := `UPDATE employees SET name = $1, phone = $2, image = $3, position = $4, salary = $5,
            date_hired = $6, description = $7, working_hour = $8, table_assigned = $9,
            status = $10, reason_for_leaving = $11 WHERE id = $12`
	if _, err := r.db.Exec(ctx, sql, e.Name, e.Phone, e.Image, e.Position, e.Salary, e.DateHired,
		e.Description, e.WorkingHour, e.TableAssigned, e.Status, e.ReasonForLeaving, e.ID); err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

// Delete removes an employee
func (r *employeeRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM employees WHERE id = $1`
	if _, err := r.db.Exec(ctx, sql, id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}
