package services

import (
	"context"

	"github.com/alimgiray/staffdir/pkg/logger"
	"github.com/sirupsen/logrus"
)

// SeedService populates an empty store from the external directory source.
// It runs once at process start, before the server accepts traffic.
type SeedService struct {
	store     EmployeeStore
	source    DirectorySource
	mapper    *EmployeeMapper
	batchSize int
}

func NewSeedService(store EmployeeStore, source DirectorySource, mapper *EmployeeMapper, batchSize int) *SeedService {
	return &SeedService{
		store:     store,
		source:    source,
		mapper:    mapper,
		batchSize: batchSize,
	}
}

// Run seeds the store if it is empty. A source failure aborts seeding and is
// returned to the caller; individual insert failures are logged and skipped
// so one bad record never blocks the rest of the batch.
func (s *SeedService) Run(ctx context.Context) error {
	count, err := s.store.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Infof("Store already seeded with %d employees, skipping", count)
		return nil
	}

	logger.Infof("Store is empty, seeding with initial data")

	rawUsers, err := s.source.FetchRawEmployees(ctx, s.batchSize)
	if err != nil {
		return err
	}

	// Dedup by email, keeping the first occurrence. The unique index would
	// reject duplicates anyway; filtering here keeps the log quiet.
	seen := make(map[string]bool, len(rawUsers))
	inserted := 0
	skipped := 0
	for _, raw := range rawUsers {
		employee := s.mapper.ToEntity(raw)
		if seen[employee.Email] {
			skipped++
			continue
		}
		seen[employee.Email] = true

		if err := s.store.Create(employee); err != nil {
			logger.WithFields(logrus.Fields{
				"email": employee.Email,
			}).WithError(err).Warnf("Failed to insert seed employee, skipping")
			continue
		}
		inserted++
	}

	logger.WithFields(logrus.Fields{
		"fetched":    len(rawUsers),
		"duplicates": skipped,
		"inserted":   inserted,
	}).Info("Store seeded successfully")

	return nil
}
