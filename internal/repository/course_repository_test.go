package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/seed"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

func TestCourseRepositoryFallsBackToSeed(t *testing.T) {
	repo := NewCourseRepository(store.NewMemStore())

	courses, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed.Courses(), courses)
}

func TestCourseRepositoryEmptySnapshotFallsBackToSeed(t *testing.T) {
	s := store.NewMemStore()
	batch := store.NewBatch()
	batch.Set(store.KeyCourses, []byte(`[]`))
	require.NoError(t, s.Apply(context.Background(), batch))

	courses, err := NewCourseRepository(s).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed.Courses(), courses)
}

func TestCourseRepositoryCorruptSnapshotFallsBackToSeed(t *testing.T) {
	s := store.NewMemStore()
	batch := store.NewBatch()
	batch.Set(store.KeyCourses, []byte(`{not json`))
	require.NoError(t, s.Apply(context.Background(), batch))

	courses, err := NewCourseRepository(s).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, seed.Courses(), courses)
}

func TestCourseRepositoryRoundTrip(t *testing.T) {
	repo := NewCourseRepository(store.NewMemStore())
	ctx := context.Background()

	saved := []models.Course{{ID: "c1", Title: "8th CBSE", Category: models.CategoryFoundation, Mode: models.ModeHybrid}}
	require.NoError(t, repo.Save(ctx, saved))

	loaded, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)

	course, err := repo.FindByID(ctx, "c1")
	require.NoError(t, err)
	require.NotNil(t, course)
	assert.Equal(t, "8th CBSE", course.Title)

	missing, err := repo.FindByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
