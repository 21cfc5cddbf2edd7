package services

import (
	"context"

	"github.com/alimgiray/staffdir/internal/models"
)

// EmployeeStore is the persistence boundary the services depend on.
// *repositories.EmployeeRepository is the production implementation.
// Lookups return (nil, nil) when no record matches.
type EmployeeStore interface {
	Create(employee *models.Employee) error
	GetByID(id string) (*models.Employee, error)
	GetByEmail(email string) (*models.Employee, error)
	EmailInUseByOther(email, excludeID string) (bool, error)
	Count() (int, error)
	Find(filter *models.EmployeeFilter) ([]*models.Employee, error)
	Update(employee *models.Employee) error
	Delete(id string) (int64, error)
}

// DirectorySource supplies raw person records for the seed pass
type DirectorySource interface {
	FetchRawEmployees(ctx context.Context, count int) ([]RawUser, error)
}

// CacheStore is the query cache boundary. Reset discards every entry; an
// error from it is a degradation, not a failure.
type CacheStore interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Reset() error
}
