package postgresql

import (
	"context"
	"fmt"

	"github.com/bravoapp/volunteering-backend-go/internal/domain/employee"
	"github.com/bravoapp/volunteering-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, first_name, last_name, email, role, created_at
		FROM profiles
		WHERE id = $1
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.CompanyID,
		&e.FirstName,
		&e.LastName,
		&e.Email,
		&e.Role,
		&e.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// GetRosterByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetRosterByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, first_name, last_name, email, role, created_at
		FROM profiles
		WHERE company_id = $1
		AND role IN ('employee', 'hr_admin')
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}
	defer rows.Close()

	var roster []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID,
			&e.CompanyID,
			&e.FirstName,
			&e.LastName,
			&e.Email,
			&e.Role,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		roster = append(roster, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roster, nil
}
