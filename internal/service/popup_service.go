package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/saraswaticlasses/institute-api/internal/models"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
)

type popupStore interface {
	Get(ctx context.Context) (models.PopupContent, error)
	Save(ctx context.Context, popup models.PopupContent) error
}

// UpdatePopupRequest replaces the promotional popup wholesale.
type UpdatePopupRequest struct {
	Enabled     bool   `json:"enabled"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CTAText     string `json:"ctaText"`
	CTALink     string `json:"ctaLink"`
}

// PopupService owns the single promotional popup record.
type PopupService struct {
	popups    popupStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPopupService constructs a PopupService.
func NewPopupService(popups popupStore, validate *validator.Validate, logger *zap.Logger) *PopupService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PopupService{popups: popups, validator: validate, logger: logger}
}

// Get returns the current popup.
func (s *PopupService) Get(ctx context.Context) (models.PopupContent, error) {
	popup, err := s.popups.Get(ctx)
	if err != nil {
		return models.PopupContent{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load popup")
	}
	return popup, nil
}

// Update replaces the popup with the given content.
func (s *PopupService) Update(ctx context.Context, req UpdatePopupRequest) (*models.PopupContent, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid popup payload")
	}

	popup := models.PopupContent{
		Enabled:     req.Enabled,
		Title:       req.Title,
		Description: req.Description,
		CTAText:     req.CTAText,
		CTALink:     req.CTALink,
	}
	if err := s.popups.Save(ctx, popup); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist popup")
	}

	s.logger.Info("popup updated", zap.Bool("enabled", popup.Enabled))
	return &popup, nil
}
