package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/store"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
)

type enrollmentStore interface {
	List(ctx context.Context) ([]models.EnrollmentRequest, error)
	Stage(batch *store.Batch, requests []models.EnrollmentRequest) error
}

type studentStore interface {
	List(ctx context.Context) ([]models.StudentUser, error)
	Stage(batch *store.Batch, students []models.StudentUser) error
}

type courseReader interface {
	List(ctx context.Context) ([]models.Course, error)
}

type seriesReader interface {
	List(ctx context.Context) ([]models.TestSeries, error)
}

type batchApplier interface {
	Apply(ctx context.Context, batch *store.Batch) error
}

// SubmitEnrollmentRequest is the public enrollment form payload.
type SubmitEnrollmentRequest struct {
	Name           string `json:"name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	Message        string `json:"message"`
	CourseOrSeries string `json:"courseOrSeries" validate:"required"`
}

// CredentialRequest carries the admin credential-issuance form input.
type CredentialRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CredentialInfo is the current login pair issued to a request's student.
type CredentialInfo struct {
	StudentID string `json:"studentId"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ApprovalResult reports the outcome of an approval step. When the request
// belongs to no known student the engine mutates nothing and instead asks
// the caller to collect credentials.
type ApprovalResult struct {
	CredentialsRequired bool                      `json:"credentialsRequired"`
	ProposedEmail       string                    `json:"proposedEmail,omitempty"`
	Request             *models.EnrollmentRequest `json:"request,omitempty"`
	Student             *models.StudentUser       `json:"student,omitempty"`
}

// EnrollmentService is the enrollment-to-credential-issuance workflow: it
// turns public requests into approved student accounts and keeps requests,
// students and the catalogs consistent while doing so.
type EnrollmentService struct {
	requests  enrollmentStore
	students  studentStore
	courses   courseReader
	series    seriesReader
	applier   batchApplier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEnrollmentService constructs an EnrollmentService.
func NewEnrollmentService(requests enrollmentStore, students studentStore, courses courseReader, series seriesReader, applier batchApplier, validate *validator.Validate, logger *zap.Logger) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{requests: requests, students: students, courses: courses, series: series, applier: applier, validator: validate, logger: logger}
}

// Submit records a public enrollment request in Pending state.
func (s *EnrollmentService) Submit(ctx context.Context, req SubmitEnrollmentRequest) (*models.EnrollmentRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}

	enrollment := models.EnrollmentRequest{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Message:        req.Message,
		CourseOrSeries: req.CourseOrSeries,
		Status:         models.EnrollmentStatusPending,
		CreatedAt:      time.Now().UTC(),
	}
	requests = append(requests, enrollment)

	batch := store.NewBatch()
	if err := s.requests.Stage(batch, requests); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage enrollments")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist enrollment")
	}

	s.logger.Info("enrollment submitted",
		zap.String("enrollment_id", enrollment.ID),
		zap.String("target", enrollment.CourseOrSeries),
	)
	return &enrollment, nil
}

// List returns the enrollment register, optionally filtered by status.
func (s *EnrollmentService) List(ctx context.Context, status models.EnrollmentStatus) ([]models.EnrollmentRequest, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	if status == "" {
		return requests, nil
	}
	filtered := make([]models.EnrollmentRequest, 0, len(requests))
	for _, r := range requests {
		if r.Status == status {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// Approve advances a request toward Approved. For a known student (matched
// by email) the grant union and request stamping happen immediately; for an
// unknown student nothing is mutated and the result asks for credentials.
// An unknown id resolves as a silent no-op with a nil result. A rejected
// request never becomes Approved; re-approving an Approved one is fine.
func (s *EnrollmentService) Approve(ctx context.Context, id string) (*ApprovalResult, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	idx := indexOfRequest(requests, id)
	if idx < 0 {
		return nil, nil
	}
	request := requests[idx]
	if request.Status == models.EnrollmentStatusRejected {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "enrollment already rejected")
	}

	course, series, err := s.resolveTargets(ctx, request.CourseOrSeries)
	if err != nil {
		return nil, err
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	sIdx := indexOfStudentByEmail(students, request.Email)
	if sIdx < 0 {
		return &ApprovalResult{
			CredentialsRequired: true,
			ProposedEmail:       request.Email,
			Request:             &request,
		}, nil
	}

	grantAccess(&students[sIdx], course, series)

	requests[idx].Status = models.EnrollmentStatusApproved
	requests[idx].StudentID = students[sIdx].ID
	requests[idx].Username = students[sIdx].Email

	if err := s.commit(ctx, students, requests); err != nil {
		return nil, err
	}

	s.logger.Info("enrollment approved for existing student",
		zap.String("enrollment_id", request.ID),
		zap.String("student_id", students[sIdx].ID),
	)
	return &ApprovalResult{Request: &requests[idx], Student: &students[sIdx]}, nil
}

// Credentials loads the login pair issued to the request's student for
// viewing or editing. Valid only after credentials exist.
func (s *EnrollmentService) Credentials(ctx context.Context, id string) (*CredentialInfo, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	idx := indexOfRequest(requests, id)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "enrollment not found")
	}
	if requests[idx].StudentID == "" {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "enrollment has no issued credentials")
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	sIdx := indexOfStudentByID(students, requests[idx].StudentID)
	if sIdx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student account not found")
	}

	return &CredentialInfo{
		StudentID: students[sIdx].ID,
		Email:     students[sIdx].Email,
		Password:  students[sIdx].Password,
	}, nil
}

// ConfirmCredentials finalizes an approval with the supplied login pair.
// The same operation issues credentials for a new student and rotates them
// for an existing one: which path runs depends on whether the request
// already references a student. Blank input (after trimming) fails
// validation and mutates nothing. An unknown id resolves as a silent no-op,
// and a rejected request never becomes Approved.
func (s *EnrollmentService) ConfirmCredentials(ctx context.Context, id string, req CredentialRequest) (*ApprovalResult, error) {
	email := strings.TrimSpace(req.Email)
	password := strings.TrimSpace(req.Password)
	if email == "" || password == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "email and password are required")
	}

	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	idx := indexOfRequest(requests, id)
	if idx < 0 {
		return nil, nil
	}
	request := requests[idx]
	if request.Status == models.EnrollmentStatusRejected {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "enrollment already rejected")
	}

	course, series, err := s.resolveTargets(ctx, request.CourseOrSeries)
	if err != nil {
		return nil, err
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}

	var student *models.StudentUser
	if request.StudentID != "" {
		sIdx := indexOfStudentByID(students, request.StudentID)
		if sIdx < 0 {
			return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "student account no longer exists")
		}
		students[sIdx].Email = email
		students[sIdx].Password = password
		grantAccess(&students[sIdx], course, series)
		student = &students[sIdx]
	} else {
		created := models.StudentUser{
			ID:                 uuid.NewString(),
			Email:              email,
			Password:           password,
			Name:               request.Name,
			ApprovedCourses:    []string{},
			ApprovedTestSeries: []string{},
			CreatedAt:          time.Now().UTC(),
		}
		grantAccess(&created, course, series)
		students = append(students, created)
		student = &students[len(students)-1]
	}

	requests[idx].Status = models.EnrollmentStatusApproved
	requests[idx].StudentID = student.ID
	requests[idx].Username = student.Email
	requests[idx].Password = password

	if err := s.commit(ctx, students, requests); err != nil {
		return nil, err
	}

	s.logger.Info("enrollment credentials confirmed",
		zap.String("enrollment_id", request.ID),
		zap.String("student_id", student.ID),
	)
	return &ApprovalResult{Request: &requests[idx], Student: student}, nil
}

// UpdateStatus stamps a request's status with no side effects; this is the
// rejection path. Terminal statuses never transition to a different one.
// An unknown id resolves as a silent no-op with a nil result.
func (s *EnrollmentService) UpdateStatus(ctx context.Context, id string, status models.EnrollmentStatus) (*models.EnrollmentRequest, error) {
	if !status.Valid() || status == models.EnrollmentStatusPending {
		return nil, appErrors.Clone(appErrors.ErrValidation, "status must be Approved or Rejected")
	}

	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	idx := indexOfRequest(requests, id)
	if idx < 0 {
		return nil, nil
	}
	if requests[idx].Status == status {
		return &requests[idx], nil
	}
	if requests[idx].Status.Terminal() {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "enrollment already "+strings.ToLower(string(requests[idx].Status)))
	}

	requests[idx].Status = status

	batch := store.NewBatch()
	if err := s.requests.Stage(batch, requests); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage enrollments")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist enrollment status")
	}

	s.logger.Info("enrollment status updated",
		zap.String("enrollment_id", id),
		zap.String("status", string(status)),
	)
	return &requests[idx], nil
}

// resolveTargets matches the request's title string against both catalogs.
// The string may match a course, a series, both, or neither.
func (s *EnrollmentService) resolveTargets(ctx context.Context, title string) (*models.Course, *models.TestSeries, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	series, err := s.series.List(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test series")
	}

	var course *models.Course
	for i := range courses {
		if courses[i].Title == title {
			course = &courses[i]
			break
		}
	}
	var ts *models.TestSeries
	for i := range series {
		if series[i].Title == title {
			ts = &series[i]
			break
		}
	}
	return course, ts, nil
}

// commit persists students and requests in one atomic batch so an approval
// is never observable half-applied.
func (s *EnrollmentService) commit(ctx context.Context, students []models.StudentUser, requests []models.EnrollmentRequest) error {
	batch := store.NewBatch()
	if err := s.students.Stage(batch, students); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage students")
	}
	if err := s.requests.Stage(batch, requests); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage enrollments")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist approval")
	}
	return nil
}

// grantAccess unions the resolved targets into the student's grant sets.
// Idempotent: an id is never duplicated.
func grantAccess(student *models.StudentUser, course *models.Course, series *models.TestSeries) {
	if course != nil && !student.HasCourse(course.ID) {
		student.ApprovedCourses = append(student.ApprovedCourses, course.ID)
	}
	if series != nil && !student.HasTestSeries(series.ID) {
		student.ApprovedTestSeries = append(student.ApprovedTestSeries, series.ID)
	}
}

func indexOfRequest(requests []models.EnrollmentRequest, id string) int {
	for i := range requests {
		if requests[i].ID == id {
			return i
		}
	}
	return -1
}

func indexOfStudentByEmail(students []models.StudentUser, email string) int {
	for i := range students {
		if students[i].Email == email {
			return i
		}
	}
	return -1
}

func indexOfStudentByID(students []models.StudentUser, id string) int {
	for i := range students {
		if students[i].ID == id {
			return i
		}
	}
	return -1
}
