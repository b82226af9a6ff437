package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/servicehub/servicehub/internal/domain"
	"github.com/servicehub/servicehub/internal/logging"
	"github.com/servicehub/servicehub/internal/metrics"
)

func newTestRepository() *MemoryServiceRepository {
	return NewMemoryServiceRepository(logging.NewNop(), nil)
}

func TestSave_GetByID_RoundTrip(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	s := domain.NewService("Test Service", "A test")

	saved, err := repo.Save(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, s, saved)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.Equal(t, 1, repo.Count())
}

func TestSave_Duplicate(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	s := domain.NewService("svc", "")

	_, err := repo.Save(ctx, s)
	require.NoError(t, err)

	_, err = repo.Save(ctx, s)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Contains(t, err.Error(), s.ID.String())
	assert.Equal(t, 1, repo.Count())
}

func TestSave_DeletedIDIsNotReused(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	s := domain.NewService("svc", "")

	_, err := repo.Save(ctx, s)
	require.NoError(t, err)
	ok, err := repo.Delete(ctx, s.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = repo.Save(ctx, s)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAll(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	first := domain.NewService("first", "")
	second := domain.NewService("second", "")
	third := domain.NewService("third", "")
	for _, s := range []domain.Service{first, second, third} {
		_, err := repo.Save(ctx, s)
		require.NoError(t, err)
	}
	_, err = repo.Delete(ctx, second.ID)
	require.NoError(t, err)

	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.Service{first, third}, all)
}

func TestGetAll_ReturnsCopies(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	s := domain.NewService("original", "")
	_, err := repo.Save(ctx, s)
	require.NoError(t, err)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	all[0].Name = "mutated"

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "original", got.Name)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	s := domain.NewService("before", "")
	_, err := repo.Save(ctx, s)
	require.NoError(t, err)

	s.Name = "after"
	s.Touch(s.CreatedAt.Add(time.Second))
	updated, err := repo.Update(ctx, s)
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s, got)
	assert.True(t, !got.UpdatedAt.Before(got.CreatedAt))
}

func TestUpdate_KeepsCreationTimestamps(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	s := domain.NewService("svc", "")
	_, err := repo.Save(ctx, s)
	require.NoError(t, err)

	tampered := s
	tampered.CreatedAt = s.CreatedAt.Add(-24 * time.Hour)
	tampered.UpdatedAt = s.CreatedAt.Add(-48 * time.Hour)

	updated, err := repo.Update(ctx, tampered)
	require.NoError(t, err)
	assert.Equal(t, s.CreatedAt, updated.CreatedAt)
	assert.Equal(t, s.CreatedAt, updated.UpdatedAt)

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.CreatedAt, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))
}

func TestUpdate_NotFound(t *testing.T) {
	repo := newTestRepository()

	_, err := repo.Update(context.Background(), domain.NewService("ghost", ""))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, repo.Count())
}

func TestDelete(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()
	s := domain.NewService("svc", "")
	_, err := repo.Save(ctx, s)
	require.NoError(t, err)

	ok, err := repo.Delete(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	ok, err = repo.Delete(ctx, s.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, ok)
}

func TestConcurrentAccess(t *testing.T) {
	repo := newTestRepository()
	ctx := context.Background()

	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				s := domain.NewService("svc", "")
				if _, err := repo.Save(ctx, s); err != nil {
					t.Errorf("save: %v", err)
					return
				}
				if _, err := repo.GetByID(ctx, s.ID); err != nil {
					t.Errorf("get: %v", err)
				}
				if i%2 == 0 {
					if _, err := repo.Delete(ctx, s.ID); err != nil {
						t.Errorf("delete: %v", err)
					}
				}
				_, _ = repo.GetAll(ctx)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker/2, repo.Count())
	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, repo.Count())
}

func TestOperationsAreTracked(t *testing.T) {
	collector := metrics.NewCollector("")
	repo := NewMemoryServiceRepository(logging.NewNop(), collector)
	ctx := context.Background()

	s := domain.NewService("svc", "")
	_, _ = repo.Save(ctx, s)
	_, _ = repo.GetByID(ctx, uuid.New())

	reg, err := metrics.NewRegistry(collector)
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "service_operations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
