package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

// StudentRepository reads and writes the student account snapshot. List
// always consults the store so login sees changes made by a concurrent
// admin session; nothing is cached in memory.
type StudentRepository struct {
	store store.Store
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(s store.Store) *StudentRepository {
	return &StudentRepository{store: s}
}

// List loads the current student collection from the store.
func (r *StudentRepository) List(ctx context.Context) ([]models.StudentUser, error) {
	raw, found, err := r.store.Load(ctx, store.KeyStudents)
	if err != nil {
		return nil, fmt.Errorf("load students: %w", err)
	}
	if !found {
		return []models.StudentUser{}, nil
	}
	var students []models.StudentUser
	if err := json.Unmarshal(raw, &students); err != nil {
		return []models.StudentUser{}, nil
	}
	return students, nil
}

// FindByID returns the student with the given id, or nil when absent.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.StudentUser, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].ID == id {
			return &students[i], nil
		}
	}
	return nil, nil
}

// FindByEmail returns the student with the given email, or nil when absent.
func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (*models.StudentUser, error) {
	students, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range students {
		if students[i].Email == email {
			return &students[i], nil
		}
	}
	return nil, nil
}

// Stage adds the full collection snapshot to a batch.
func (r *StudentRepository) Stage(batch *store.Batch, students []models.StudentUser) error {
	raw, err := json.Marshal(students)
	if err != nil {
		return fmt.Errorf("encode students: %w", err)
	}
	batch.Set(store.KeyStudents, raw)
	return nil
}

// Save persists the full collection in its own batch.
func (r *StudentRepository) Save(ctx context.Context, students []models.StudentUser) error {
	batch := store.NewBatch()
	if err := r.Stage(batch, students); err != nil {
		return err
	}
	return r.store.Apply(ctx, batch)
}
