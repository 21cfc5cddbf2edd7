package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee represents a single directory record
type Employee struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	PictureURL string    `json:"pictureUrl"`
	JobTitle   string    `json:"jobTitle"`
	Department string    `json:"department"`
	Location   string    `json:"location"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewEmployee creates a new Employee with a generated UUID.
// Timestamps are assigned by the store on write, not here.
func NewEmployee(firstName, lastName, email, phone, pictureURL, jobTitle, department, location string) *Employee {
	return &Employee{
		ID:         uuid.New().String(),
		FirstName:  firstName,
		LastName:   lastName,
		Email:      email,
		Phone:      phone,
		PictureURL: pictureURL,
		JobTitle:   jobTitle,
		Department: department,
		Location:   location,
	}
}

// EmployeeFilter describes a directory query. Zero-valued fields are
// inactive; active fields combine with AND.
type EmployeeFilter struct {
	Department string
	Title      string
	Location   string
	Search     string
	SortBy     string
	SortOrder  string
}

// EmployeeUpdate carries a partial update. Nil fields are left untouched.
type EmployeeUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	PictureURL *string
	JobTitle   *string
	Department *string
	Location   *string
}
