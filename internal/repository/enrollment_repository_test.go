package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

func TestEnrollmentRepositoryEmptyIsValid(t *testing.T) {
	repo := NewEnrollmentRepository(store.NewMemStore())

	requests, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestEnrollmentRepositoryRoundTrip(t *testing.T) {
	repo := NewEnrollmentRepository(store.NewMemStore())
	ctx := context.Background()

	created := time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC)
	saved := []models.EnrollmentRequest{{
		ID:             "e1",
		Name:           "Asha",
		Email:          "asha@x.com",
		Phone:          "999",
		CourseOrSeries: "8th CBSE",
		Status:         models.EnrollmentStatusPending,
		CreatedAt:      created,
	}}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	request, err := repo.FindByID(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, "8th CBSE", request.CourseOrSeries)
}

func TestEnrollmentRepositoryCorruptSnapshotIsEmpty(t *testing.T) {
	s := store.NewMemStore()
	batch := store.NewBatch()
	batch.Set(store.KeyEnrollments, []byte(`"oops"`))
	require.NoError(t, s.Apply(context.Background(), batch))

	requests, err := NewEnrollmentRepository(s).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, requests)
}
