package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitadmin/src/core/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeRecruitYearRepo keeps rows in memory and records the order of write
// operations so tests can assert which path the upsert took.
type fakeRecruitYearRepo struct {
	nextID    int64
	rows      map[int64]*domain.RecruitYear
	writes    []string
	createErr error
	updateErr error
}

func newFakeRecruitYearRepo() *fakeRecruitYearRepo {
	return &fakeRecruitYearRepo{nextID: 1, rows: make(map[int64]*domain.RecruitYear)}
}

func (f *fakeRecruitYearRepo) Create(_ context.Context, year *domain.RecruitYear) (*domain.RecruitYear, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	saved := *year
	saved.ID = f.nextID
	f.nextID++
	f.rows[saved.ID] = &saved
	f.writes = append(f.writes, "create")
	return &saved, nil
}

func (f *fakeRecruitYearRepo) Update(_ context.Context, year *domain.RecruitYear) (*domain.RecruitYear, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.rows[year.ID]; !ok {
		return nil, domain.NewNotFoundError("recruit year")
	}
	saved := *year
	f.rows[saved.ID] = &saved
	f.writes = append(f.writes, "update")
	return &saved, nil
}

func (f *fakeRecruitYearRepo) FindByID(_ context.Context, id int64) (*domain.RecruitYear, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	copied := *row
	return &copied, nil
}

func (f *fakeRecruitYearRepo) FindByYear(_ context.Context, year int) (*domain.RecruitYear, error) {
	for _, row := range f.rows {
		if row.Year == year {
			copied := *row
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeRecruitYearRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return domain.NewNotFoundError("recruit year")
	}
	delete(f.rows, id)
	return nil
}

func TestRecruitYearServiceCreate(t *testing.T) {
	repo := newFakeRecruitYearRepo()
	svc := NewRecruitYearService(repo, testLogger())

	year, err := svc.Create(context.Background(), RecruitYearInput{Year: 2027, DisplayName: "2027"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, int64(1), year.ID)
	assert.Equal(t, []string{"create"}, repo.writes)
}

func TestRecruitYearServiceCreateValidatesBeforeRepo(t *testing.T) {
	repo := newFakeRecruitYearRepo()
	svc := NewRecruitYearService(repo, testLogger())

	_, err := svc.Create(context.Background(), RecruitYearInput{Year: 1990, DisplayName: "x"}, "admin")
	assert.True(t, domain.IsValidationError(err))
	assert.Empty(t, repo.writes)
}

func TestRecruitYearServiceUpsertCreatesWhenAbsent(t *testing.T) {
	repo := newFakeRecruitYearRepo()
	svc := NewRecruitYearService(repo, testLogger())

	year, err := svc.Upsert(context.Background(), RecruitYearInput{Year: 2027, DisplayName: "First"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "First", year.DisplayName)
	assert.Equal(t, []string{"create"}, repo.writes)
}

func TestRecruitYearServiceUpsertUpdatesWhenPresent(t *testing.T) {
	repo := newFakeRecruitYearRepo()
	svc := NewRecruitYearService(repo, testLogger())

	first, err := svc.Upsert(context.Background(), RecruitYearInput{Year: 2027, DisplayName: "First"}, "admin")
	require.NoError(t, err)
	second, err := svc.Upsert(context.Background(), RecruitYearInput{Year: 2027, DisplayName: "Second"}, "admin")
	require.NoError(t, err)

	// Same natural key resolves to the same row: one create, then an update.
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Second", second.DisplayName)
	assert.Len(t, repo.rows, 1)
	assert.Equal(t, []string{"create", "update"}, repo.writes)
}

func TestRecruitYearServiceUpdateMissing(t *testing.T) {
	repo := newFakeRecruitYearRepo()
	svc := NewRecruitYearService(repo, testLogger())

	_, err := svc.Update(context.Background(), 99, "New", "admin")
	assert.True(t, domain.IsNotFound(err))
	assert.Empty(t, repo.writes)
}

func TestRecruitYearServiceUpdatePropagatesRepoError(t *testing.T) {
	repo := newFakeRecruitYearRepo()
	svc := NewRecruitYearService(repo, testLogger())

	year, err := svc.Create(context.Background(), RecruitYearInput{Year: 2027, DisplayName: "x"}, "admin")
	require.NoError(t, err)

	repoFailure := errors.New("connection reset")
	repo.updateErr = repoFailure
	_, err = svc.Update(context.Background(), year.ID, "y", "admin")
	assert.ErrorIs(t, err, repoFailure)
}

func TestRecruitYearServiceGetMissing(t *testing.T) {
	repo := newFakeRecruitYearRepo()
	svc := NewRecruitYearService(repo, testLogger())

	_, err := svc.Get(context.Background(), 5)
	assert.True(t, domain.IsNotFound(err))
}
