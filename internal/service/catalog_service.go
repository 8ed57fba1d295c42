package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/seed"
	"github.com/saraswaticlasses/institute-api/internal/store"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
)

type courseStore interface {
	List(ctx context.Context) ([]models.Course, error)
	Stage(batch *store.Batch, courses []models.Course) error
}

type testSeriesStore interface {
	List(ctx context.Context) ([]models.TestSeries, error)
	FindByID(ctx context.Context, id string) (*models.TestSeries, error)
	Stage(batch *store.Batch, series []models.TestSeries) error
}

type heroPosterStore interface {
	List(ctx context.Context) ([]models.HeroPoster, error)
	Stage(batch *store.Batch, posters []models.HeroPoster) error
}

// CreateCourseRequest is the admin course form payload.
type CreateCourseRequest struct {
	Title           string                 `json:"title" validate:"required"`
	Category        models.CourseCategory  `json:"category" validate:"required,oneof=Foundation Science Competitive"`
	Mode            models.CourseMode      `json:"mode" validate:"required"`
	Description     string                 `json:"description"`
	FullDescription string                 `json:"fullDescription"`
	Image           string                 `json:"image"`
	DemoVideoURL    string                 `json:"demoVideoUrl"`
	Chapters        []models.CourseChapter `json:"chapters"`
}

// CreateTestSeriesRequest is the admin test-series form payload. ID may be
// pre-assigned for stable slugs; it is generated when blank.
type CreateTestSeriesRequest struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title" validate:"required"`
	Overview            string   `json:"overview" validate:"required"`
	Features            []string `json:"features"`
	TestPattern         string   `json:"testPattern"`
	Benefits            []string `json:"benefits"`
	Image               string   `json:"image"`
	CTALabel            string   `json:"ctaLabel"`
	DemoTestLink        string   `json:"demoTestLink"`
	HeroPosterThumbnail string   `json:"heroPosterThumbnail"`
	ShowInHeroPoster    bool     `json:"showInHeroPoster"`
}

// CreateHeroPosterRequest is the admin hero-poster form payload.
type CreateHeroPosterRequest struct {
	ImageURL     string `json:"imageUrl" validate:"required"`
	TestSeriesID string `json:"testSeriesId" validate:"required"`
	Enabled      *bool  `json:"enabled"`
}

// CatalogService owns the public catalogs: courses, test series and hero
// posters. Deletions cascade so no collection ever references an id or
// title that is gone.
type CatalogService struct {
	courses   courseStore
	series    testSeriesStore
	posters   heroPosterStore
	students  studentStore
	requests  enrollmentStore
	applier   batchApplier
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(courses courseStore, series testSeriesStore, posters heroPosterStore, students studentStore, requests enrollmentStore, applier batchApplier, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{courses: courses, series: series, posters: posters, students: students, requests: requests, applier: applier, validator: validate, logger: logger}
}

// Courses returns the full course catalog.
func (s *CatalogService) Courses(ctx context.Context) ([]models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	return courses, nil
}

// CourseByID returns one course.
func (s *CatalogService) CourseByID(ctx context.Context, id string) (*models.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
}

// AddCourse appends a new course to the catalog.
func (s *CatalogService) AddCourse(ctx context.Context, req CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}

	course := models.Course{
		ID:              uuid.NewString(),
		Title:           req.Title,
		Category:        req.Category,
		Mode:            req.Mode,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Image:           req.Image,
		DemoVideoURL:    req.DemoVideoURL,
		Chapters:        req.Chapters,
	}
	if course.Description == "" {
		course.Description = course.Title
	}
	if course.Image == "" {
		course.Image = "https://placehold.co/600x400"
	}
	if course.Chapters == nil {
		course.Chapters = []models.CourseChapter{}
	}
	courses = append(courses, course)

	batch := store.NewBatch()
	if err := s.courses.Stage(batch, courses); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage courses")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist course")
	}

	s.logger.Info("course added", zap.String("course_id", course.ID), zap.String("title", course.Title))
	return &course, nil
}

// DeleteCourse removes a course and cascades: the course id disappears from
// every student's grants and every enrollment request naming the course's
// title is dropped from the register. All in one atomic batch. An unknown
// id is a no-op.
func (s *CatalogService) DeleteCourse(ctx context.Context, id string) error {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load courses")
	}
	var removed *models.Course
	kept := make([]models.Course, 0, len(courses))
	for i := range courses {
		if courses[i].ID == id {
			removed = &courses[i]
			continue
		}
		kept = append(kept, courses[i])
	}
	if removed == nil {
		return nil
	}

	students, err := s.students.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	for i := range students {
		students[i].ApprovedCourses = removeString(students[i].ApprovedCourses, id)
	}

	requests, err := s.requests.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	keptRequests := make([]models.EnrollmentRequest, 0, len(requests))
	for _, r := range requests {
		if r.CourseOrSeries == removed.Title {
			continue
		}
		keptRequests = append(keptRequests, r)
	}

	batch := store.NewBatch()
	if err := s.courses.Stage(batch, kept); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage courses")
	}
	if err := s.students.Stage(batch, students); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage students")
	}
	if err := s.requests.Stage(batch, keptRequests); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage enrollments")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist course deletion")
	}

	s.logger.Info("course deleted", zap.String("course_id", id), zap.String("title", removed.Title))
	return nil
}

// TestSeriesList returns the full test-series catalog.
func (s *CatalogService) TestSeriesList(ctx context.Context) ([]models.TestSeries, error) {
	series, err := s.series.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test series")
	}
	return series, nil
}

// TestSeriesByID returns one test series.
func (s *CatalogService) TestSeriesByID(ctx context.Context, id string) (*models.TestSeries, error) {
	ts, err := s.series.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test series")
	}
	if ts == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "test series not found")
	}
	return ts, nil
}

// AddTestSeries appends a series; when flagged for the hero rotation a
// paired poster is created in the same batch.
func (s *CatalogService) AddTestSeries(ctx context.Context, req CreateTestSeriesRequest) (*models.TestSeries, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid test series payload")
	}

	series, err := s.series.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test series")
	}

	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}
	ts := models.TestSeries{
		ID:                  id,
		Title:               req.Title,
		Overview:            req.Overview,
		Features:            emptyIfNil(req.Features),
		TestPattern:         req.TestPattern,
		Benefits:            emptyIfNil(req.Benefits),
		Image:               req.Image,
		CTALabel:            req.CTALabel,
		DemoTestLink:        req.DemoTestLink,
		HeroPosterThumbnail: req.HeroPosterThumbnail,
		ShowInHeroPoster:    req.ShowInHeroPoster,
	}
	if ts.HeroPosterThumbnail == "" {
		ts.HeroPosterThumbnail = ts.Image
	}
	if ts.HeroPosterThumbnail == "" {
		ts.HeroPosterThumbnail = "https://placehold.co/1200x500"
	}
	series = append(series, ts)

	batch := store.NewBatch()
	if err := s.series.Stage(batch, series); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage test series")
	}

	if ts.ShowInHeroPoster {
		posters, err := s.posters.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hero posters")
		}
		posters = append(posters, models.HeroPoster{
			ID:           uuid.NewString(),
			ImageURL:     ts.HeroPosterThumbnail,
			TestSeriesID: ts.ID,
			Enabled:      true,
			CreatedAt:    time.Now().UTC(),
		})
		if err := s.posters.Stage(batch, posters); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage hero posters")
		}
	}

	if err := s.applier.Apply(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist test series")
	}

	s.logger.Info("test series added", zap.String("series_id", ts.ID), zap.String("title", ts.Title))
	return &ts, nil
}

// UpdateTestSeries applies a partial update. Hero-rotation membership is
// reconciled: turning the flag on creates a poster if none exists, turning
// it off removes the series' posters.
func (s *CatalogService) UpdateTestSeries(ctx context.Context, id string, patch models.TestSeriesPatch) (*models.TestSeries, error) {
	series, err := s.series.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test series")
	}
	idx := -1
	for i := range series {
		if series[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "test series not found")
	}

	patch.Apply(&series[idx])

	batch := store.NewBatch()
	if err := s.series.Stage(batch, series); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage test series")
	}

	if patch.ShowInHeroPoster != nil {
		posters, err := s.posters.List(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hero posters")
		}
		if *patch.ShowInHeroPoster {
			if !hasPosterForSeries(posters, id) {
				posters = append(posters, models.HeroPoster{
					ID:           uuid.NewString(),
					ImageURL:     series[idx].HeroPosterThumbnail,
					TestSeriesID: id,
					Enabled:      true,
					CreatedAt:    time.Now().UTC(),
				})
			}
		} else {
			posters = removePostersForSeries(posters, id)
		}
		if err := s.posters.Stage(batch, posters); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage hero posters")
		}
	}

	if err := s.applier.Apply(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist test series")
	}
	return &series[idx], nil
}

// DeleteTestSeries removes a series and cascades: its hero posters, the
// series id in student grants, and enrollment requests naming its title all
// go in the same batch. An unknown id is a no-op.
func (s *CatalogService) DeleteTestSeries(ctx context.Context, id string) error {
	series, err := s.series.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test series")
	}
	var removed *models.TestSeries
	kept := make([]models.TestSeries, 0, len(series))
	for i := range series {
		if series[i].ID == id {
			removed = &series[i]
			continue
		}
		kept = append(kept, series[i])
	}
	if removed == nil {
		return nil
	}

	posters, err := s.posters.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hero posters")
	}
	posters = removePostersForSeries(posters, id)

	students, err := s.students.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load students")
	}
	for i := range students {
		students[i].ApprovedTestSeries = removeString(students[i].ApprovedTestSeries, id)
	}

	requests, err := s.requests.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	keptRequests := make([]models.EnrollmentRequest, 0, len(requests))
	for _, r := range requests {
		if r.CourseOrSeries == removed.Title {
			continue
		}
		keptRequests = append(keptRequests, r)
	}

	batch := store.NewBatch()
	if err := s.series.Stage(batch, kept); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage test series")
	}
	if err := s.posters.Stage(batch, posters); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage hero posters")
	}
	if err := s.students.Stage(batch, students); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage students")
	}
	if err := s.requests.Stage(batch, keptRequests); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage enrollments")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist test series deletion")
	}

	s.logger.Info("test series deleted", zap.String("series_id", id), zap.String("title", removed.Title))
	return nil
}

// HeroPosters returns every poster joined with its series title. A poster
// whose series is gone renders with the title "Unknown".
func (s *CatalogService) HeroPosters(ctx context.Context) ([]models.HeroPosterView, error) {
	posters, err := s.posters.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hero posters")
	}
	series, err := s.series.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load test series")
	}
	titles := make(map[string]string, len(series))
	for _, ts := range series {
		titles[ts.ID] = ts.Title
	}

	views := make([]models.HeroPosterView, 0, len(posters))
	for _, p := range posters {
		title, ok := titles[p.TestSeriesID]
		if !ok {
			title = "Unknown"
		}
		views = append(views, models.HeroPosterView{HeroPoster: p, TestSeriesTitle: title})
	}
	return views, nil
}

// EnabledHeroPosters returns only the posters in the live rotation.
func (s *CatalogService) EnabledHeroPosters(ctx context.Context) ([]models.HeroPosterView, error) {
	views, err := s.HeroPosters(ctx)
	if err != nil {
		return nil, err
	}
	enabled := make([]models.HeroPosterView, 0, len(views))
	for _, v := range views {
		if v.Enabled {
			enabled = append(enabled, v)
		}
	}
	return enabled, nil
}

// AddHeroPoster appends a poster to the rotation.
func (s *CatalogService) AddHeroPoster(ctx context.Context, req CreateHeroPosterRequest) (*models.HeroPoster, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid hero poster payload")
	}

	posters, err := s.posters.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hero posters")
	}

	poster := models.HeroPoster{
		ID:           uuid.NewString(),
		ImageURL:     req.ImageURL,
		TestSeriesID: req.TestSeriesID,
		Enabled:      true,
		CreatedAt:    time.Now().UTC(),
	}
	if req.Enabled != nil {
		poster.Enabled = *req.Enabled
	}
	posters = append(posters, poster)

	batch := store.NewBatch()
	if err := s.posters.Stage(batch, posters); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage hero posters")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist hero poster")
	}
	return &poster, nil
}

// UpdateHeroPoster applies a partial update to one poster.
func (s *CatalogService) UpdateHeroPoster(ctx context.Context, id string, patch models.HeroPosterPatch) (*models.HeroPoster, error) {
	posters, err := s.posters.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hero posters")
	}
	idx := -1
	for i := range posters {
		if posters[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "hero poster not found")
	}

	patch.Apply(&posters[idx])

	batch := store.NewBatch()
	if err := s.posters.Stage(batch, posters); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage hero posters")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist hero poster")
	}
	return &posters[idx], nil
}

// DeleteHeroPoster removes a poster. An unknown id is a no-op.
func (s *CatalogService) DeleteHeroPoster(ctx context.Context, id string) error {
	posters, err := s.posters.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load hero posters")
	}
	kept := make([]models.HeroPoster, 0, len(posters))
	found := false
	for _, p := range posters {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return nil
	}

	batch := store.NewBatch()
	if err := s.posters.Stage(batch, kept); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to stage hero posters")
	}
	if err := s.applier.Apply(ctx, batch); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to persist hero poster deletion")
	}
	return nil
}

// Testimonials returns the static landing-page testimonials.
func (s *CatalogService) Testimonials() []models.Testimonial {
	return seed.Testimonials()
}

func removeString(values []string, target string) []string {
	kept := values[:0]
	for _, v := range values {
		if v != target {
			kept = append(kept, v)
		}
	}
	return kept
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func hasPosterForSeries(posters []models.HeroPoster, seriesID string) bool {
	for _, p := range posters {
		if p.TestSeriesID == seriesID {
			return true
		}
	}
	return false
}

func removePostersForSeries(posters []models.HeroPoster, seriesID string) []models.HeroPoster {
	kept := make([]models.HeroPoster, 0, len(posters))
	for _, p := range posters {
		if p.TestSeriesID == seriesID {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
