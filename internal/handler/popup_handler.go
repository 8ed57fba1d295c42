package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saraswaticlasses/institute-api/internal/service"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
	"github.com/saraswaticlasses/institute-api/pkg/response"
)

// PopupHandler handles the promotional popup endpoints.
type PopupHandler struct {
	service *service.PopupService
}

// NewPopupHandler constructs a popup handler.
func NewPopupHandler(svc *service.PopupService) *PopupHandler {
	return &PopupHandler{service: svc}
}

// Get godoc
// @Summary Current promotional popup
// @Tags Popup
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /popup [get]
func (h *PopupHandler) Get(c *gin.Context) {
	popup, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, popup, nil)
}

// Update godoc
// @Summary Replace the promotional popup
// @Tags Popup
// @Accept json
// @Produce json
// @Param payload body service.UpdatePopupRequest true "Popup payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/popup [put]
func (h *PopupHandler) Update(c *gin.Context) {
	var req service.UpdatePopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	popup, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, popup, nil)
}
