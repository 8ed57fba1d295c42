package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/service"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
	"github.com/saraswaticlasses/institute-api/pkg/response"
)

// HeroPosterHandler handles hero poster endpoints.
type HeroPosterHandler struct {
	service *service.CatalogService
}

// NewHeroPosterHandler constructs a hero poster handler.
func NewHeroPosterHandler(svc *service.CatalogService) *HeroPosterHandler {
	return &HeroPosterHandler{service: svc}
}

// ListEnabled godoc
// @Summary Hero posters in the live rotation
// @Tags HeroPosters
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /hero-posters [get]
func (h *HeroPosterHandler) ListEnabled(c *gin.Context) {
	views, err := h.service.EnabledHeroPosters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, nil)
}

// List godoc
// @Summary All hero posters including disabled ones
// @Tags HeroPosters
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/hero-posters [get]
func (h *HeroPosterHandler) List(c *gin.Context) {
	views, err := h.service.HeroPosters(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views, nil)
}

// Create godoc
// @Summary Create hero poster
// @Tags HeroPosters
// @Accept json
// @Produce json
// @Param payload body service.CreateHeroPosterRequest true "Poster payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/hero-posters [post]
func (h *HeroPosterHandler) Create(c *gin.Context) {
	var req service.CreateHeroPosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	poster, err := h.service.AddHeroPoster(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, poster)
}

// Update godoc
// @Summary Update hero poster
// @Tags HeroPosters
// @Accept json
// @Produce json
// @Param id path string true "Poster ID"
// @Param payload body models.HeroPosterPatch true "Partial update"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/hero-posters/{id} [patch]
func (h *HeroPosterHandler) Update(c *gin.Context) {
	var patch models.HeroPosterPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	poster, err := h.service.UpdateHeroPoster(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, poster, nil)
}

// Delete godoc
// @Summary Delete hero poster
// @Tags HeroPosters
// @Produce json
// @Param id path string true "Poster ID"
// @Success 204
// @Router /admin/hero-posters/{id} [delete]
func (h *HeroPosterHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteHeroPoster(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
