package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/service"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
	"github.com/saraswaticlasses/institute-api/pkg/response"
)

// EnrollmentHandler wires the enrollment workflow to HTTP.
type EnrollmentHandler struct {
	service *service.EnrollmentService
	metrics *service.MetricsService
}

// NewEnrollmentHandler constructs an enrollment handler.
func NewEnrollmentHandler(svc *service.EnrollmentService, metrics *service.MetricsService) *EnrollmentHandler {
	return &EnrollmentHandler{service: svc, metrics: metrics}
}

// Submit godoc
// @Summary Submit an enrollment request
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param payload body service.SubmitEnrollmentRequest true "Enrollment payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /enrollments [post]
func (h *EnrollmentHandler) Submit(c *gin.Context) {
	var req service.SubmitEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	created, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.IncEnrollmentSubmission()
	response.Created(c, created)
}

// List godoc
// @Summary List enrollment requests
// @Tags Enrollments
// @Produce json
// @Param status query string false "Filter by status (Pending, Approved, Rejected)"
// @Success 200 {object} response.Envelope
// @Router /admin/enrollments [get]
func (h *EnrollmentHandler) List(c *gin.Context) {
	status := models.EnrollmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown status filter"))
		return
	}
	requests, err := h.service.List(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, requests, nil)
}

// Approve godoc
// @Summary Approve an enrollment request
// @Description Grants access immediately for a known student; otherwise returns a credentials-required result without mutating anything
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Success 204
// @Failure 412 {object} response.Envelope
// @Router /admin/enrollments/{id}/approve [post]
func (h *EnrollmentHandler) Approve(c *gin.Context) {
	result, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if result == nil {
		response.NoContent(c)
		return
	}
	if !result.CredentialsRequired {
		h.metrics.IncEnrollmentDecision(string(models.EnrollmentStatusApproved))
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Credentials godoc
// @Summary View issued credentials
// @Tags Enrollments
// @Produce json
// @Param id path string true "Enrollment ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /admin/enrollments/{id}/credentials [get]
func (h *EnrollmentHandler) Credentials(c *gin.Context) {
	creds, err := h.service.Credentials(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, creds, nil)
}

// ConfirmCredentials godoc
// @Summary Finalize approval with credentials
// @Description Creates the student account on first issuance or rotates the login pair on an already approved request
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param payload body service.CredentialRequest true "Credential pair"
// @Success 200 {object} response.Envelope
// @Success 204
// @Failure 400 {object} response.Envelope
// @Failure 412 {object} response.Envelope
// @Router /admin/enrollments/{id}/credentials [post]
func (h *EnrollmentHandler) ConfirmCredentials(c *gin.Context) {
	var req service.CredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.ConfirmCredentials(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if result == nil {
		response.NoContent(c)
		return
	}
	h.metrics.IncEnrollmentDecision(string(models.EnrollmentStatusApproved))
	response.JSON(c, http.StatusOK, result, nil)
}

// UpdateStatus godoc
// @Summary Stamp an enrollment status
// @Description Terminal statuses never transition to a different one; this is the rejection path
// @Tags Enrollments
// @Accept json
// @Produce json
// @Param id path string true "Enrollment ID"
// @Param payload body object true "Status payload"
// @Success 200 {object} response.Envelope
// @Success 204
// @Failure 412 {object} response.Envelope
// @Router /admin/enrollments/{id}/status [patch]
func (h *EnrollmentHandler) UpdateStatus(c *gin.Context) {
	var payload struct {
		Status models.EnrollmentStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	updated, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), payload.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	if updated == nil {
		response.NoContent(c)
		return
	}
	h.metrics.IncEnrollmentDecision(string(updated.Status))
	response.JSON(c, http.StatusOK, updated, nil)
}
