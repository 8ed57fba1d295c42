package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/service"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
	"github.com/saraswaticlasses/institute-api/pkg/response"
)

// TestSeriesHandler handles test-series catalog endpoints.
type TestSeriesHandler struct {
	service *service.CatalogService
}

// NewTestSeriesHandler constructs a test-series handler.
func NewTestSeriesHandler(svc *service.CatalogService) *TestSeriesHandler {
	return &TestSeriesHandler{service: svc}
}

// List godoc
// @Summary List test series
// @Tags TestSeries
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /test-series [get]
func (h *TestSeriesHandler) List(c *gin.Context) {
	series, err := h.service.TestSeriesList(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, series, nil)
}

// Get godoc
// @Summary Get test series by id
// @Tags TestSeries
// @Produce json
// @Param id path string true "Test series ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /test-series/{id} [get]
func (h *TestSeriesHandler) Get(c *gin.Context) {
	series, err := h.service.TestSeriesByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, series, nil)
}

// Create godoc
// @Summary Create test series
// @Description Creates the series; when flagged for the hero rotation a paired poster is created atomically
// @Tags TestSeries
// @Accept json
// @Produce json
// @Param payload body service.CreateTestSeriesRequest true "Test series payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/test-series [post]
func (h *TestSeriesHandler) Create(c *gin.Context) {
	var req service.CreateTestSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	series, err := h.service.AddTestSeries(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, series)
}

// Update godoc
// @Summary Update test series
// @Tags TestSeries
// @Accept json
// @Produce json
// @Param id path string true "Test series ID"
// @Param payload body models.TestSeriesPatch true "Partial update"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/test-series/{id} [patch]
func (h *TestSeriesHandler) Update(c *gin.Context) {
	var patch models.TestSeriesPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	series, err := h.service.UpdateTestSeries(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, series, nil)
}

// Delete godoc
// @Summary Delete test series
// @Description Removes the series with its hero posters, student grants and matching enrollment requests
// @Tags TestSeries
// @Produce json
// @Param id path string true "Test series ID"
// @Success 204
// @Router /admin/test-series/{id} [delete]
func (h *TestSeriesHandler) Delete(c *gin.Context) {
	if err := h.service.DeleteTestSeries(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
