package repositories

import (
	"database/sql"
	"strings"

	"github.com/alimgiray/staffdir/internal/models"
)

const employeeColumns = `id, first_name, last_name, email, phone, picture_url, job_title, department, location, created_at, updated_at`

// sortColumns whitelists the fields a caller may sort by. Anything else
// falls back to store-default order.
var sortColumns = map[string]string{
	"firstName":  "first_name",
	"lastName":   "last_name",
	"email":      "email",
	"jobTitle":   "job_title",
	"department": "department",
	"location":   "location",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
}

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create inserts a new employee. The unique index on email makes this fail
// for a duplicate address.
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	query := `
		INSERT INTO employees (
			id, first_name, last_name, email, phone, picture_url, job_title, department, location
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		employee.ID, employee.FirstName, employee.LastName, employee.Email,
		employee.Phone, employee.PictureURL, employee.JobTitle, employee.Department, employee.Location,
	)
	return err
}

// GetByID retrieves an employee by ID. Returns (nil, nil) when no record matches.
func (r *EmployeeRepository) GetByID(id string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = ?`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByEmail retrieves an employee by email. Returns (nil, nil) when no record matches.
func (r *EmployeeRepository) GetByEmail(email string) (*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = ?`
	return r.scanOne(r.db.QueryRow(query, email))
}

// EmailInUseByOther reports whether a record other than excludeID owns the email
func (r *EmployeeRepository) EmailInUseByOther(email, excludeID string) (bool, error) {
	query := `SELECT COUNT(*) FROM employees WHERE email = ? AND id != ?`
	var count int
	err := r.db.QueryRow(query, email, excludeID).Scan(&count)
	return count > 0, err
}

// Count returns the number of employees in the store
func (r *EmployeeRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM employees`).Scan(&count)
	return count, err
}

// Find returns all employees matching the filter. Department and title match
// exactly; location matches as a case-insensitive substring; search matches
// first name, last name or job title as a case-insensitive substring. Active
// conditions combine with AND.
func (r *EmployeeRepository) Find(filter *models.EmployeeFilter) ([]*models.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees`

	var conditions []string
	var args []interface{}

	if filter.Department != "" {
		conditions = append(conditions, "department = ?")
		args = append(args, filter.Department)
	}
	if filter.Title != "" {
		conditions = append(conditions, "job_title = ?")
		args = append(args, filter.Title)
	}
	if filter.Location != "" {
		conditions = append(conditions, "LOWER(location) LIKE ?")
		args = append(args, contains(filter.Location))
	}
	if filter.Search != "" {
		conditions = append(conditions, "(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(job_title) LIKE ?)")
		term := contains(filter.Search)
		args = append(args, term, term, term)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	if column, ok := sortColumns[filter.SortBy]; ok {
		direction := "ASC"
		if strings.EqualFold(filter.SortOrder, "desc") {
			direction = "DESC"
		}
		query += " ORDER BY " + column + " " + direction
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		employee := &models.Employee{}
		err := rows.Scan(
			&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email,
			&employee.Phone, &employee.PictureURL, &employee.JobTitle,
			&employee.Department, &employee.Location, &employee.CreatedAt, &employee.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, employee)
	}

	return employees, rows.Err()
}

// Update rewrites the mutable fields of an existing employee and bumps updated_at
func (r *EmployeeRepository) Update(employee *models.Employee) error {
	query := `
		UPDATE employees SET
			first_name = ?, last_name = ?, email = ?, phone = ?, picture_url = ?,
			job_title = ?, department = ?, location = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		employee.FirstName, employee.LastName, employee.Email, employee.Phone,
		employee.PictureURL, employee.JobTitle, employee.Department, employee.Location,
		employee.ID,
	)
	return err
}

// Delete removes an employee by ID and returns the number of affected rows
func (r *EmployeeRepository) Delete(id string) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *EmployeeRepository) scanOne(row *sql.Row) (*models.Employee, error) {
	employee := &models.Employee{}
	err := row.Scan(
		&employee.ID, &employee.FirstName, &employee.LastName, &employee.Email,
		&employee.Phone, &employee.PictureURL, &employee.JobTitle,
		&employee.Department, &employee.Location, &employee.CreatedAt, &employee.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func contains(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
