package services

import (
	"fmt"

	"github.com/alimgiray/staffdir/internal/models"
)

// departments is a fixed ordered list; changing the order changes every
// hash-assigned department, so treat it as append-only.
var departments = []string{
	"Engineering",
	"Marketing",
	"Sales",
	"Human Resources",
	"Design",
}

var jobTitles = map[string][]string{
	"Engineering":     {"Software Engineer", "QA Engineer", "DevOps Engineer", "Tech Lead"},
	"Marketing":       {"Marketing Specialist", "Content Creator", "SEO Analyst"},
	"Sales":           {"Account Executive", "Sales Development Rep", "Sales Manager"},
	"Human Resources": {"Recruiter", "HR Generalist"},
	"Design":          {"UI/UX Designer", "Graphic Designer", "Product Designer"},
}

// EmployeeMapper turns raw external records into employee records,
// assigning a deterministic department/title pair from a hash of the raw
// identifier. The same raw record always maps to the same assignment,
// which keeps re-seeding reproducible.
type EmployeeMapper struct{}

func NewEmployeeMapper() *EmployeeMapper {
	return &EmployeeMapper{}
}

// hash computes a non-negative 32-bit polynomial hash of the input
func (m *EmployeeMapper) hash(input string) int {
	var h int32
	for _, r := range input {
		h = h<<5 - h + int32(r)
	}
	if h < 0 {
		h = -h
	}
	return int(h)
}

// ToEntity maps a raw external record to an employee record. It is total
// over well-formed input; missing nested fields are a caller contract
// violation, not handled here.
func (m *EmployeeMapper) ToEntity(raw RawUser) *models.Employee {
	h := m.hash(raw.Login.UUID)

	department := departments[h%len(departments)]
	titles := jobTitles[department]
	jobTitle := titles[h%len(titles)]

	return &models.Employee{
		ID:         raw.Login.UUID,
		FirstName:  raw.Name.First,
		LastName:   raw.Name.Last,
		Email:      raw.Email,
		Phone:      raw.Phone,
		PictureURL: raw.Picture.Large,
		JobTitle:   jobTitle,
		Department: department,
		Location:   fmt.Sprintf("%s, %s", raw.Location.City, raw.Location.State),
	}
}
