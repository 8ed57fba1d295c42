package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/seed"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

// CourseRepository reads and writes the course collection snapshot. An
// absent, unreadable, or empty snapshot falls back to the seed catalog, per
// the original deployment's behavior.
type CourseRepository struct {
	store store.Store
}

// NewCourseRepository constructs a CourseRepository.
func NewCourseRepository(s store.Store) *CourseRepository {
	return &CourseRepository{store: s}
}

// List loads the current course collection from the store.
func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	raw, found, err := r.store.Load(ctx, store.KeyCourses)
	if err != nil {
		return nil, fmt.Errorf("load courses: %w", err)
	}
	if !found {
		return seed.Courses(), nil
	}
	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err != nil || len(courses) == 0 {
		return seed.Courses(), nil
	}
	return courses, nil
}

// FindByID returns the course with the given id, or nil when absent.
func (r *CourseRepository) FindByID(ctx context.Context, id string) (*models.Course, error) {
	courses, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, nil
}

// Stage adds the full collection snapshot to a batch.
func (r *CourseRepository) Stage(batch *store.Batch, courses []models.Course) error {
	raw, err := json.Marshal(courses)
	if err != nil {
		return fmt.Errorf("encode courses: %w", err)
	}
	batch.Set(store.KeyCourses, raw)
	return nil
}

// Save persists the full collection in its own batch.
func (r *CourseRepository) Save(ctx context.Context, courses []models.Course) error {
	batch := store.NewBatch()
	if err := r.Stage(batch, courses); err != nil {
		return err
	}
	return r.store.Apply(ctx, batch)
}
