package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/repository"
	"github.com/saraswaticlasses/institute-api/internal/service"
	"github.com/saraswaticlasses/institute-api/internal/store"
	"github.com/saraswaticlasses/institute-api/pkg/response"
)

type handlerFixture struct {
	enrollments *service.EnrollmentService
	auth        *service.AuthService
	students    *service.StudentService
	metrics     *service.MetricsService
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mem := store.NewMemStore()
	courseRepo := repository.NewCourseRepository(mem)
	seriesRepo := repository.NewTestSeriesRepository(mem)
	studentRepo := repository.NewStudentRepository(mem)
	requestRepo := repository.NewEnrollmentRepository(mem)
	sessionRepo := repository.NewSessionRepository(mem)

	return &handlerFixture{
		enrollments: service.NewEnrollmentService(requestRepo, studentRepo, courseRepo, seriesRepo, mem, nil, nil),
		auth: service.NewAuthService(studentRepo, sessionRepo, service.AuthConfig{
			AdminEmail:    "admin@saraswaticlasses.com",
			AdminPassword: "admin123",
			TokenSecret:   "test_secret",
			TokenExpiry:   time.Hour,
			Issuer:        "institute-api-test",
		}, nil, nil),
		students: service.NewStudentService(studentRepo, courseRepo, seriesRepo, mem, nil, nil),
		metrics:  service.NewMetricsService(),
	}
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req, err := http.NewRequest(method, target, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestEnrollmentSubmitCreated(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewEnrollmentHandler(f.enrollments, f.metrics)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/enrollments", service.SubmitEnrollmentRequest{
		Name:           "Asha",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		CourseOrSeries: "8th CBSE",
	})

	h.Submit(c)
	require.Equal(t, http.StatusCreated, w.Code)

	var envelope response.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Data)
}

func TestEnrollmentSubmitInvalidBody(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewEnrollmentHandler(f.enrollments, f.metrics)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/enrollments", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	h.Submit(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEnrollmentApproveUnknownIDNoContent(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewEnrollmentHandler(f.enrollments, f.metrics)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/admin/enrollments/missing/approve", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	h.Approve(c)
	// Flush the deferred status, as the gin engine does after the handler
	// chain; a bodiless c.Status is otherwise never written to the recorder.
	c.Writer.WriteHeaderNow()
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEnrollmentApproveThenConfirmFlow(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewEnrollmentHandler(f.enrollments, f.metrics)

	created, err := f.enrollments.Submit(context.Background(), service.SubmitEnrollmentRequest{
		Name:           "Asha",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		CourseOrSeries: "8th CBSE",
	})
	require.NoError(t, err)

	// Approving an unknown email reports that credentials are needed.
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/admin/enrollments/"+created.ID+"/approve", nil)
	c.Params = gin.Params{{Key: "id", Value: created.ID}}
	h.Approve(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"credentialsRequired":true`)

	// Confirming issues the account and stamps the request.
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/admin/enrollments/"+created.ID+"/credentials", service.CredentialRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	c.Params = gin.Params{{Key: "id", Value: created.ID}}
	h.ConfirmCredentials(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"Approved"`)
}

func TestEnrollmentUpdateStatusConflict(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewEnrollmentHandler(f.enrollments, f.metrics)

	created, err := f.enrollments.Submit(context.Background(), service.SubmitEnrollmentRequest{
		Name:           "Asha",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		CourseOrSeries: "8th CBSE",
	})
	require.NoError(t, err)
	_, err = f.enrollments.UpdateStatus(context.Background(), created.ID, models.EnrollmentStatusRejected)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPatch, "/admin/enrollments/"+created.ID+"/status", gin.H{"status": "Approved"})
	c.Params = gin.Params{{Key: "id", Value: created.ID}}

	h.UpdateStatus(c)
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)
}

func TestEnrollmentApproveRejectedRequestConflict(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewEnrollmentHandler(f.enrollments, f.metrics)

	created, err := f.enrollments.Submit(context.Background(), service.SubmitEnrollmentRequest{
		Name:           "Asha",
		Email:          "asha@example.com",
		Phone:          "9876543210",
		CourseOrSeries: "8th CBSE",
	})
	require.NoError(t, err)
	_, err = f.enrollments.UpdateStatus(context.Background(), created.ID, models.EnrollmentStatusRejected)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = jsonRequest(t, http.MethodPost, "/admin/enrollments/"+created.ID+"/approve", nil)
	c.Params = gin.Params{{Key: "id", Value: created.ID}}

	h.Approve(c)
	assert.Equal(t, http.StatusPreconditionFailed, w.Code)

	confirm := httptest.NewRecorder()
	cc, _ := gin.CreateTestContext(confirm)
	cc.Request = jsonRequest(t, http.MethodPost, "/admin/enrollments/"+created.ID+"/credentials", service.CredentialRequest{
		Email:    "asha@example.com",
		Password: "pass1234",
	})
	cc.Params = gin.Params{{Key: "id", Value: created.ID}}

	h.ConfirmCredentials(cc)
	assert.Equal(t, http.StatusPreconditionFailed, confirm.Code)
}

func TestEnrollmentListFilterValidation(t *testing.T) {
	f := newHandlerFixture(t)
	h := NewEnrollmentHandler(f.enrollments, f.metrics)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/admin/enrollments?status=Bogus", nil)
	c.Request = req

	h.List(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
