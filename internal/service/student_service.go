package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/store"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
)

// StudentDashboard is the student-facing view: the account plus only the
// catalog entries the student has been granted.
type StudentDashboard struct {
	Student            models.StudentUser  `json:"student"`
	ApprovedCourses    []models.Course     `json:"approvedCourses"`
	ApprovedTestSeries []models.TestSeries `json:"approvedTestSeries"`
}

type studentRoster interface {
	studentStore
	FindByID(ctx context.Context, id string) (*models.StudentUser, error)
}

// StudentService serves student accounts and their granted content.
type StudentService struct {
	students  studentRoster
	courses   courseReader
	series    seriesReader
	applier   batchApplier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(students studentRoster, courses courseReader, series seriesReader, applier batchApplier, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{students: students, courses: courses, series: series, applier: applier, validator: validate, logger: logger}
}

// List returns the full roster for the admin panel, passwords included:
// the admin owns credential issuance and rotation.
func (s *StudentService) List(ctx context.Context) ([]models.StudentUser, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	return students, nil
}

// Dashboard resolves a student's granted courses and test series. Grants
// pointing at deleted catalog entries have already cascaded away, so every
// id here resolves.
func (s *StudentService) Dashboard(ctx context.Context, studentID string) (*StudentDashboard, error) {
	found, err := s.students.FindByID(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	if found == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student account no longer exists")
	}
	student := *found

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	series, err := s.series.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test series")
	}

	dashboard := &StudentDashboard{
		Student:            student,
		ApprovedCourses:    []models.Course{},
		ApprovedTestSeries: []models.TestSeries{},
	}
	for _, c := range courses {
		if student.HasCourse(c.ID) {
			dashboard.ApprovedCourses = append(dashboard.ApprovedCourses, c)
		}
	}
	for _, ts := range series {
		if student.HasTestSeries(ts.ID) {
			dashboard.ApprovedTestSeries = append(dashboard.ApprovedTestSeries, ts)
		}
	}
	return dashboard, nil
}

// Update applies an admin patch to a student record.
func (s *StudentService) Update(ctx context.Context, id string, patch models.StudentPatch) (*models.StudentUser, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	idx := indexOfStudentByID(students, id)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}

	patch.Apply(&students[idx])

	batch := store.NewBatch()
	if err := s.students.Stage(batch, students); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage students")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist student")
	}

	s.logger.Info("student updated", zap.String("student_id", id))
	return &students[idx], nil
}
