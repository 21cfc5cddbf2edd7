package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alimgiray/staffdir/internal/models"
)

// fakeStore is an in-memory EmployeeStore with call counters, used to
// observe whether the service went to the store or to the cache.
type fakeStore struct {
	employees  map[string]*models.Employee
	order      []string
	findCalls  int
	failCreate map[string]error // email -> error to return from Create
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		employees:  make(map[string]*models.Employee),
		failCreate: make(map[string]error),
	}
}

func (f *fakeStore) Create(employee *models.Employee) error {
	if err, ok := f.failCreate[employee.Email]; ok {
		return err
	}
	for _, existing := range f.employees {
		if existing.Email == employee.Email {
			return errors.New("UNIQUE constraint failed: employees.email")
		}
	}
	stored := *employee
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.employees[stored.ID] = &stored
	f.order = append(f.order, stored.ID)
	return nil
}

func (f *fakeStore) GetByID(id string) (*models.Employee, error) {
	employee, ok := f.employees[id]
	if !ok {
		return nil, nil
	}
	clone := *employee
	return &clone, nil
}

func (f *fakeStore) GetByEmail(email string) (*models.Employee, error) {
	for _, employee := range f.employees {
		if employee.Email == email {
			clone := *employee
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) EmailInUseByOther(email, excludeID string) (bool, error) {
	for _, employee := range f.employees {
		if employee.Email == email && employee.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Count() (int, error) {
	return len(f.employees), nil
}

func (f *fakeStore) Find(filter *models.EmployeeFilter) ([]*models.Employee, error) {
	f.findCalls++

	var result []*models.Employee
	for _, id := range f.order {
		employee, ok := f.employees[id]
		if !ok {
			continue
		}
		if filter.Department != "" && employee.Department != filter.Department {
			continue
		}
		if filter.Title != "" && employee.JobTitle != filter.Title {
			continue
		}
		if filter.Location != "" && !containsFold(employee.Location, filter.Location) {
			continue
		}
		if filter.Search != "" &&
			!containsFold(employee.FirstName, filter.Search) &&
			!containsFold(employee.LastName, filter.Search) &&
			!containsFold(employee.JobTitle, filter.Search) {
			continue
		}
		clone := *employee
		result = append(result, &clone)
	}
	return result, nil
}

func (f *fakeStore) Update(employee *models.Employee) error {
	existing, ok := f.employees[employee.ID]
	if !ok {
		return nil
	}
	clone := *employee
	clone.CreatedAt = existing.CreatedAt
	clone.UpdatedAt = time.Now()
	f.employees[employee.ID] = &clone
	return nil
}

func (f *fakeStore) Delete(id string) (int64, error) {
	if _, ok := f.employees[id]; !ok {
		return 0, nil
	}
	delete(f.employees, id)
	return 1, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// fakeSource is a canned DirectorySource that records how often it is called
type fakeSource struct {
	raws  []RawUser
	err   error
	calls int
}

func (f *fakeSource) FetchRawEmployees(ctx context.Context, count int) ([]RawUser, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.raws, nil
}
