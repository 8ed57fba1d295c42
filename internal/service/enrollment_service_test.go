package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/repository"
	"github.com/saraswaticlasses/institute-api/internal/store"
)

type fixture struct {
	mem         *store.MemStore
	courseRepo  *repository.CourseRepository
	seriesRepo  *repository.TestSeriesRepository
	posterRepo  *repository.HeroPosterRepository
	studentRepo *repository.StudentRepository
	requestRepo *repository.EnrollmentRepository
	sessionRepo *repository.SessionRepository

	enrollments *EnrollmentService
	catalog     *CatalogService
	students    *StudentService
	auth        *AuthService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mem := store.NewMemStore()
	f := &fixture{
		mem:         mem,
		courseRepo:  repository.NewCourseRepository(mem),
		seriesRepo:  repository.NewTestSeriesRepository(mem),
		posterRepo:  repository.NewHeroPosterRepository(mem),
		studentRepo: repository.NewStudentRepository(mem),
		requestRepo: repository.NewEnrollmentRepository(mem),
		sessionRepo: repository.NewSessionRepository(mem),
	}
	f.enrollments = NewEnrollmentService(f.requestRepo, f.studentRepo, f.courseRepo, f.seriesRepo, mem, nil, nil)
	f.catalog = NewCatalogService(f.courseRepo, f.seriesRepo, f.posterRepo, f.studentRepo, f.requestRepo, mem, nil, nil)
	f.students = NewStudentService(f.studentRepo, f.courseRepo, f.seriesRepo, mem, nil, nil)
	f.auth = NewAuthService(f.studentRepo, f.sessionRepo, AuthConfig{
		AdminEmail:    "admin@saraswaticlasses.com",
		AdminPassword: "admin123",
		TokenSecret:   "test_secret",
		TokenExpiry:   time.Hour,
		Issuer:        "institute-api-test",
	}, nil, nil)
	return f
}

func (f *fixture) submit(t *testing.T, email, target string) *models.EnrollmentRequest {
	t.Helper()
	req, err := f.enrollments.Submit(context.Background(), SubmitEnrollmentRequest{
		Name:           "Asha",
		Email:          email,
		Phone:          "9876543210",
		Message:        "Interested in admission",
		CourseOrSeries: target,
	})
	require.NoError(t, err)
	return req
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	f := newFixture(t)

	created := f.submit(t, "asha@example.com", "8th CBSE")
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.EnrollmentStatusPending, created.Status)
	assert.False(t, created.CreatedAt.IsZero())

	requests, err := f.enrollments.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, created.ID, requests[0].ID)
}

func TestSubmitRejectsInvalidPayload(t *testing.T) {
	f := newFixture(t)

	_, err := f.enrollments.Submit(context.Background(), SubmitEnrollmentRequest{
		Name:           "Asha",
		Email:          "not-an-email",
		Phone:          "9876543210",
		CourseOrSeries: "8th CBSE",
	})
	require.Error(t, err)

	requests, err := f.enrollments.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestApproveUnknownStudentRequiresCredentials(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "asha@example.com", "8th CBSE")

	result, err := f.enrollments.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.CredentialsRequired)
	assert.Equal(t, "asha@example.com", result.ProposedEmail)

	// Asking for credentials must not mutate anything.
	requests, err := f.enrollments.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusPending, requests[0].Status)
	students, err := f.studentRepo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, students)
}

func TestConfirmCredentialsCreatesStudentWithGrants(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "asha@example.com", "8th CBSE")

	result, err := f.enrollments.ConfirmCredentials(context.Background(), created.ID, CredentialRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.NotNil(t, result.Student)
	assert.False(t, result.CredentialsRequired)
	assert.Equal(t, []string{"8th-cbse"}, result.Student.ApprovedCourses)
	assert.Empty(t, result.Student.ApprovedTestSeries)

	require.NotNil(t, result.Request)
	assert.Equal(t, models.EnrollmentStatusApproved, result.Request.Status)
	assert.Equal(t, result.Student.ID, result.Request.StudentID)
	assert.Equal(t, "asha@example.com", result.Request.Username)
	assert.Equal(t, "secret123", result.Request.Password)

	// The new student can sign in with the issued pair.
	login, err := f.auth.Login(context.Background(), models.LoginRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, login.Role)

	dashboard, err := f.students.Dashboard(context.Background(), result.Student.ID)
	require.NoError(t, err)
	require.Len(t, dashboard.ApprovedCourses, 1)
	assert.Equal(t, "8th CBSE", dashboard.ApprovedCourses[0].Title)
	assert.Empty(t, dashboard.ApprovedTestSeries)
}

func TestConfirmCredentialsRejectsBlankInput(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "asha@example.com", "8th CBSE")

	_, err := f.enrollments.ConfirmCredentials(context.Background(), created.ID, CredentialRequest{
		Email:    "   ",
		Password: "",
	})
	require.Error(t, err)

	requests, err := f.enrollments.List(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusPending, requests[0].Status)
}

func TestApproveExistingStudentGrantsIdempotently(t *testing.T) {
	f := newFixture(t)
	first := f.submit(t, "asha@example.com", "8th CBSE")
	_, err := f.enrollments.ConfirmCredentials(context.Background(), first.ID, CredentialRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	// A second request for the same course approves directly and must not
	// duplicate the grant.
	second := f.submit(t, "asha@example.com", "8th CBSE")
	result, err := f.enrollments.Approve(context.Background(), second.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.CredentialsRequired)
	assert.Equal(t, []string{"8th-cbse"}, result.Student.ApprovedCourses)

	result, err = f.enrollments.Approve(context.Background(), second.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"8th-cbse"}, result.Student.ApprovedCourses)
}

func TestApproveResolvesCourseAndSeriesWithSameTitle(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "ravi@example.com", "CET PCM Test Series")

	result, err := f.enrollments.ConfirmCredentials(context.Background(), created.ID, CredentialRequest{
		Email:    "ravi@example.com",
		Password: "pass1234",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Student.ApprovedCourses)
	assert.Equal(t, []string{"cet-pcm-test-series"}, result.Student.ApprovedTestSeries)
}

func TestApproveUnknownIDIsNoOp(t *testing.T) {
	f := newFixture(t)

	result, err := f.enrollments.Approve(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCredentialsViewAndRotation(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "asha@example.com", "8th CBSE")
	_, err := f.enrollments.ConfirmCredentials(context.Background(), created.ID, CredentialRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	creds, err := f.enrollments.Credentials(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", creds.Email)
	assert.Equal(t, "secret123", creds.Password)

	// Rotation goes through the same confirm operation.
	result, err := f.enrollments.ConfirmCredentials(context.Background(), created.ID, CredentialRequest{
		Email:    "asha@example.com",
		Password: "rotated456",
	})
	require.NoError(t, err)
	assert.Equal(t, creds.StudentID, result.Student.ID)
	assert.Equal(t, "rotated456", result.Student.Password)

	// The old password no longer works, the new one does.
	_, err = f.auth.Login(context.Background(), models.LoginRequest{Email: "asha@example.com", Password: "secret123"})
	require.Error(t, err)
	_, err = f.auth.Login(context.Background(), models.LoginRequest{Email: "asha@example.com", Password: "rotated456"})
	require.NoError(t, err)
}

func TestCredentialsBeforeIssuanceFails(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "asha@example.com", "8th CBSE")

	_, err := f.enrollments.Credentials(context.Background(), created.ID)
	require.Error(t, err)
}

func TestUpdateStatusRejectsAndStaysTerminal(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "asha@example.com", "8th CBSE")

	rejected, err := f.enrollments.UpdateStatus(context.Background(), created.ID, models.EnrollmentStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusRejected, rejected.Status)

	// Same terminal status again is a no-op success.
	again, err := f.enrollments.UpdateStatus(context.Background(), created.ID, models.EnrollmentStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentStatusRejected, again.Status)

	// A different terminal status is a conflict.
	_, err = f.enrollments.UpdateStatus(context.Background(), created.ID, models.EnrollmentStatusApproved)
	require.Error(t, err)
}

func TestApproveRejectedRequestFails(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "asha@example.com", "8th CBSE")

	_, err := f.enrollments.UpdateStatus(context.Background(), created.ID, models.EnrollmentStatusRejected)
	require.NoError(t, err)

	_, err = f.enrollments.Approve(context.Background(), created.ID)
	require.Error(t, err)

	requests, err := f.enrollments.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.EnrollmentStatusRejected, requests[0].Status)
}

func TestConfirmCredentialsRejectedRequestFails(t *testing.T) {
	f := newFixture(t)
	created := f.submit(t, "asha@example.com", "8th CBSE")

	_, err := f.enrollments.UpdateStatus(context.Background(), created.ID, models.EnrollmentStatusRejected)
	require.NoError(t, err)

	_, err = f.enrollments.ConfirmCredentials(context.Background(), created.ID, CredentialRequest{
		Email:    "asha@example.com",
		Password: "pass1234",
	})
	require.Error(t, err)

	// No account is minted and the request stays rejected.
	roster, err := f.students.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, roster)

	requests, err := f.enrollments.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, models.EnrollmentStatusRejected, requests[0].Status)
	assert.Empty(t, requests[0].StudentID)
}

func TestUpdateStatusUnknownIDIsNoOp(t *testing.T) {
	f := newFixture(t)

	updated, err := f.enrollments.UpdateStatus(context.Background(), "missing", models.EnrollmentStatusRejected)
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestListFiltersByStatus(t *testing.T) {
	f := newFixture(t)
	first := f.submit(t, "a@example.com", "8th CBSE")
	f.submit(t, "b@example.com", "9th CBSE")

	_, err := f.enrollments.UpdateStatus(context.Background(), first.ID, models.EnrollmentStatusRejected)
	require.NoError(t, err)

	pending, err := f.enrollments.List(context.Background(), models.EnrollmentStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b@example.com", pending[0].Email)
}
