package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/seed"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

// TestSeriesRepository reads and writes the test series collection snapshot.
type TestSeriesRepository struct {
	store store.Store
}

// NewTestSeriesRepository constructs a TestSeriesRepository.
func NewTestSeriesRepository(s store.Store) *TestSeriesRepository {
	return &TestSeriesRepository{store: s}
}

// List loads the current test series collection from the store.
func (r *TestSeriesRepository) List(ctx context.Context) ([]models.TestSeries, error) {
	raw, found, err := r.store.Load(ctx, store.KeyTestSeries)
	if err != nil {
		return nil, fmt.Errorf("load test series: %w", err)
	}
	if !found {
		return seed.TestSeriesList(), nil
	}
	var series []models.TestSeries
	if err := json.Unmarshal(raw, &series); err != nil || len(series) == 0 {
		return seed.TestSeriesList(), nil
	}
	return series, nil
}

// FindByID returns the series with the given id, or nil when absent.
func (r *TestSeriesRepository) FindByID(ctx context.Context, id string) (*models.TestSeries, error) {
	series, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range series {
		if series[i].ID == id {
			return &series[i], nil
		}
	}
	return nil, nil
}

// Stage adds the full collection snapshot to a batch.
func (r *TestSeriesRepository) Stage(batch *store.Batch, series []models.TestSeries) error {
	raw, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("encode test series: %w", err)
	}
	batch.Set(store.KeyTestSeries, raw)
	return nil
}

// Save persists the full collection in its own batch.
func (r *TestSeriesRepository) Save(ctx context.Context, series []models.TestSeries) error {
	batch := store.NewBatch()
	if err := r.Stage(batch, series); err != nil {
		return err
	}
	return r.store.Apply(ctx, batch)
}
