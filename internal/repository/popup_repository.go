package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/seed"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

// PopupRepository reads and writes the singleton popup configuration.
type PopupRepository struct {
	store store.Store
}

// NewPopupRepository constructs a PopupRepository.
func NewPopupRepository(s store.Store) *PopupRepository {
	return &PopupRepository{store: s}
}

// Get loads the popup configuration, falling back to the default.
func (r *PopupRepository) Get(ctx context.Context) (models.PopupContent, error) {
	raw, found, err := r.store.Load(ctx, store.KeyPopup)
	if err != nil {
		return models.PopupContent{}, fmt.Errorf("load popup: %w", err)
	}
	if !found {
		return seed.Popup(), nil
	}
	var popup models.PopupContent
	if err := json.Unmarshal(raw, &popup); err != nil {
		return seed.Popup(), nil
	}
	return popup, nil
}

// Save replaces the popup configuration wholesale.
func (r *PopupRepository) Save(ctx context.Context, popup models.PopupContent) error {
	raw, err := json.Marshal(popup)
	if err != nil {
		return fmt.Errorf("encode popup: %w", err)
	}
	batch := store.NewBatch()
	batch.Set(store.KeyPopup, raw)
	return r.store.Apply(ctx, batch)
}
