package services

import (
	"fmt"

	"github.com/alimgiray/staffdir/internal/models"
	"github.com/alimgiray/staffdir/pkg/logger"
)

// EmployeeService serves filtered employee queries and single-record
// lookups through a query-shaped cache, and invalidates the entire cache
// on any write. Query results are keyed by arbitrary filter/sort
// combinations, so one mutation can touch an unbounded number of cached
// permutations; a whole-store reset trades a short cache-cold window for
// correctness. Do not replace it with selective invalidation.
type EmployeeService struct {
	store EmployeeStore
	cache CacheStore
}

func NewEmployeeService(store EmployeeStore, cache CacheStore) *EmployeeService {
	return &EmployeeService{
		store: store,
		cache: cache,
	}
}

// findCacheKey builds a canonical key from the filter parameters. Field
// order is fixed so identical queries always share an entry.
func findCacheKey(filter *models.EmployeeFilter) string {
	return fmt.Sprintf("employees:find:dept=%s|title=%s|loc=%s|q=%s|sort=%s|order=%s",
		filter.Department, filter.Title, filter.Location, filter.Search, filter.SortBy, filter.SortOrder)
}

func employeeCacheKey(id string) string {
	return "employee:" + id
}

// Find returns all employees matching the filter, ordered as requested.
// Pagination is the API boundary's responsibility.
func (s *EmployeeService) Find(filter *models.EmployeeFilter) ([]*models.Employee, error) {
	key := findCacheKey(filter)
	if cached, ok := s.cache.Get(key); ok {
		if employees, ok := cached.([]*models.Employee); ok {
			logger.Debugf("Returning cached employees for %s", key)
			return employees, nil
		}
	}

	employees, err := s.store.Find(filter)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, employees)
	return employees, nil
}

// FindOne returns the employee with the given ID, or ErrEmployeeNotFound.
// Only hits are cached; a missing ID is re-checked against the store on
// every call.
func (s *EmployeeService) FindOne(id string) (*models.Employee, error) {
	key := employeeCacheKey(id)
	if cached, ok := s.cache.Get(key); ok {
		if employee, ok := cached.(*models.Employee); ok {
			return employee, nil
		}
	}

	employee, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}

	s.cache.Set(key, employee)
	return employee, nil
}

// Create adds a new employee, assigning a fresh identifier. Fails with
// ErrEmailTaken when a record with the same email already exists.
func (s *EmployeeService) Create(input *models.Employee) (*models.Employee, error) {
	existing, err := s.store.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, input.Email)
	}

	employee := models.NewEmployee(
		input.FirstName, input.LastName, input.Email, input.Phone,
		input.PictureURL, input.JobTitle, input.Department, input.Location,
	)

	if err := s.store.Create(employee); err != nil {
		return nil, err
	}

	// Re-read so the caller sees the store-assigned timestamps
	created, err := s.store.GetByID(employee.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = employee
	}

	s.invalidateCache()
	return created, nil
}

// Update merges the supplied fields onto an existing employee. Fails with
// ErrEmployeeNotFound for an unknown ID and with ErrEmailTaken when the new
// email is owned by a different record; updating a record to its own
// current email succeeds.
func (s *EmployeeService) Update(id string, update *models.EmployeeUpdate) (*models.Employee, error) {
	employee, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}

	if update.Email != nil {
		taken, err := s.store.EmailInUseByOther(*update.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("%w: %s", ErrEmailTaken, *update.Email)
		}
		employee.Email = *update.Email
	}
	if update.FirstName != nil {
		employee.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		employee.LastName = *update.LastName
	}
	if update.Phone != nil {
		employee.Phone = *update.Phone
	}
	if update.PictureURL != nil {
		employee.PictureURL = *update.PictureURL
	}
	if update.JobTitle != nil {
		employee.JobTitle = *update.JobTitle
	}
	if update.Department != nil {
		employee.Department = *update.Department
	}
	if update.Location != nil {
		employee.Location = *update.Location
	}

	if err := s.store.Update(employee); err != nil {
		return nil, err
	}

	updated, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		updated = employee
	}

	s.invalidateCache()
	return updated, nil
}

// Remove deletes an employee by ID, or fails with ErrEmployeeNotFound
func (s *EmployeeService) Remove(id string) error {
	affected, err := s.store.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrEmployeeNotFound, id)
	}

	s.invalidateCache()
	return nil
}

// invalidateCache resets the whole cache store after a write. A failing
// reset degrades to a warning; the service keeps working, just less cached.
func (s *EmployeeService) invalidateCache() {
	if err := s.cache.Reset(); err != nil {
		logger.WithError(err).Warnf("Cache store reset failed, skipping cache invalidation")
		return
	}
	logger.Debugf("Employee cache invalidated")
}
