package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

// EnrollmentRepository reads and writes the enrollment request snapshot.
// Unlike the catalogs, an empty collection is a valid state here.
type EnrollmentRepository struct {
	store store.Store
}

// NewEnrollmentRepository constructs an EnrollmentRepository.
func NewEnrollmentRepository(s store.Store) *EnrollmentRepository {
	return &EnrollmentRepository{store: s}
}

// List loads the current enrollment requests from the store.
func (r *EnrollmentRepository) List(ctx context.Context) ([]models.EnrollmentRequest, error) {
	raw, found, err := r.store.Load(ctx, store.KeyEnrollments)
	if err != nil {
		return nil, fmt.Errorf("load enrollments: %w", err)
	}
	if !found {
		return []models.EnrollmentRequest{}, nil
	}
	var requests []models.EnrollmentRequest
	if err := json.Unmarshal(raw, &requests); err != nil {
		return []models.EnrollmentRequest{}, nil
	}
	return requests, nil
}

// FindByID returns the request with the given id, or nil when absent.
func (r *EnrollmentRepository) FindByID(ctx context.Context, id string) (*models.EnrollmentRequest, error) {
	requests, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range requests {
		if requests[i].ID == id {
			return &requests[i], nil
		}
	}
	return nil, nil
}

// Stage adds the full collection snapshot to a batch.
func (r *EnrollmentRepository) Stage(batch *store.Batch, requests []models.EnrollmentRequest) error {
	raw, err := json.Marshal(requests)
	if err != nil {
		return fmt.Errorf("encode enrollments: %w", err)
	}
	batch.Set(store.KeyEnrollments, raw)
	return nil
}

// Save persists the full collection in its own batch.
func (r *EnrollmentRepository) Save(ctx context.Context, requests []models.EnrollmentRequest) error {
	batch := store.NewBatch()
	if err := r.Stage(batch, requests); err != nil {
		return err
	}
	return r.store.Apply(ctx, batch)
}
