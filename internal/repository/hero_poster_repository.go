package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/seed"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

// HeroPosterRepository reads and writes the hero poster collection snapshot.
type HeroPosterRepository struct {
	store store.Store
}

// NewHeroPosterRepository constructs a HeroPosterRepository.
func NewHeroPosterRepository(s store.Store) *HeroPosterRepository {
	return &HeroPosterRepository{store: s}
}

// List loads the current poster collection from the store.
func (r *HeroPosterRepository) List(ctx context.Context) ([]models.HeroPoster, error) {
	raw, found, err := r.store.Load(ctx, store.KeyHeroPosters)
	if err != nil {
		return nil, fmt.Errorf("load hero posters: %w", err)
	}
	if !found {
		return seed.HeroPosters(), nil
	}
	var posters []models.HeroPoster
	if err := json.Unmarshal(raw, &posters); err != nil || len(posters) == 0 {
		return seed.HeroPosters(), nil
	}
	return posters, nil
}

// Stage adds the full collection snapshot to a batch.
func (r *HeroPosterRepository) Stage(batch *store.Batch, posters []models.HeroPoster) error {
	raw, err := json.Marshal(posters)
	if err != nil {
		return fmt.Errorf("encode hero posters: %w", err)
	}
	batch.Set(store.KeyHeroPosters, raw)
	return nil
}

// Save persists the full collection in its own batch.
func (r *HeroPosterRepository) Save(ctx context.Context, posters []models.HeroPoster) error {
	batch := store.NewBatch()
	if err := r.Stage(batch, posters); err != nil {
		return err
	}
	return r.store.Apply(ctx, batch)
}
