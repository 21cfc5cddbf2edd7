package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alimgiray/staffdir/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSeedSkipsNonEmptyStore(t *testing.T) {
	store := newFakeStore()
	err := store.Create(models.NewEmployee("Existing", "Person", "existing@example.com", "", "", "Recruiter", "Human Resources", "Austin, Texas"))
	assert.NoError(t, err)

	source := &fakeSource{raws: []RawUser{
		rawUser("6b0d549b-6f03-675a-1600-a35a099950d8", "Jane", "Doe", "jane@example.com", "Austin", "Texas"),
	}}

	seeder := NewSeedService(store, source, NewEmployeeMapper(), 100)
	assert.NoError(t, seeder.Run(context.Background()))

	assert.Equal(t, 0, source.calls, "source must not be called when the store is already seeded")
	count, _ := store.Count()
	assert.Equal(t, 1, count)
}

func TestSeedDeduplicatesByEmail(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{raws: []RawUser{
		rawUser("6b0d549b-6f03-675a-1600-a35a099950d8", "Jane", "Doe", "shared@example.com", "Austin", "Texas"),
		rawUser("d23f0824-128b-2f33-0c5c-7fd0a6a3a450", "John", "Smith", "john@example.com", "Denver", "Colorado"),
		rawUser("9531985d-5d9d-c9f8-1818-e811892f902b", "Mary", "Major", "shared@example.com", "Portland", "Oregon"),
	}}

	seeder := NewSeedService(store, source, NewEmployeeMapper(), 100)
	assert.NoError(t, seeder.Run(context.Background()))

	count, _ := store.Count()
	assert.Equal(t, 2, count, "duplicate email should be inserted exactly once")

	// First occurrence wins
	kept, err := store.GetByEmail("shared@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, kept)
	assert.Equal(t, "Jane", kept.FirstName)
}

func TestSeedToleratesInsertFailures(t *testing.T) {
	store := newFakeStore()
	store.failCreate["bad@example.com"] = errors.New("UNIQUE constraint failed: employees.email")

	source := &fakeSource{raws: []RawUser{
		rawUser("6b0d549b-6f03-675a-1600-a35a099950d8", "Jane", "Doe", "jane@example.com", "Austin", "Texas"),
		rawUser("d23f0824-128b-2f33-0c5c-7fd0a6a3a450", "Bad", "Record", "bad@example.com", "Denver", "Colorado"),
		rawUser("9531985d-5d9d-c9f8-1818-e811892f902b", "Mary", "Major", "mary@example.com", "Portland", "Oregon"),
	}}

	seeder := NewSeedService(store, source, NewEmployeeMapper(), 100)
	assert.NoError(t, seeder.Run(context.Background()), "one failed insert must not abort the batch")

	count, _ := store.Count()
	assert.Equal(t, 2, count)
}

func TestSeedSourceFailureAbortsPass(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{err: ErrDirectoryUnavailable}

	seeder := NewSeedService(store, source, NewEmployeeMapper(), 100)
	err := seeder.Run(context.Background())

	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
	count, _ := store.Count()
	assert.Equal(t, 0, count, "no partial inserts on source failure")
}

func TestSeedIsIdempotentAcrossRuns(t *testing.T) {
	store := newFakeStore()
	source := &fakeSource{raws: []RawUser{
		rawUser("6b0d549b-6f03-675a-1600-a35a099950d8", "Jane", "Doe", "jane@example.com", "Austin", "Texas"),
	}}

	seeder := NewSeedService(store, source, NewEmployeeMapper(), 100)
	assert.NoError(t, seeder.Run(context.Background()))
	assert.NoError(t, seeder.Run(context.Background()))

	assert.Equal(t, 1, source.calls, "second run must not call the source again")
	count, _ := store.Count()
	assert.Equal(t, 1, count)
}
