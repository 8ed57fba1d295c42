package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saraswaticlasses/institute-api/internal/models"
	"github.com/saraswaticlasses/institute-api/internal/seed"
)

func TestCoursesFallBackToDefaults(t *testing.T) {
	f := newFixture(t)

	courses, err := f.catalog.Courses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, len(seed.Courses()))
}

func TestAddCourseAppendsWithDefaults(t *testing.T) {
	f := newFixture(t)

	created, err := f.catalog.AddCourse(context.Background(), CreateCourseRequest{
		Title:    "Foundation Maths",
		Category: models.CategoryFoundation,
		Mode:     models.ModeOnline,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Foundation Maths", created.Description)
	assert.NotEmpty(t, created.Image)
	assert.NotNil(t, created.Chapters)

	courses, err := f.catalog.Courses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, len(seed.Courses())+1)
}

func TestAddCourseRejectsMissingTitle(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.AddCourse(context.Background(), CreateCourseRequest{
		Category: models.CategoryFoundation,
		Mode:     models.ModeOffline,
	})
	require.Error(t, err)
}

func TestTestSeriesLookupByID(t *testing.T) {
	f := newFixture(t)

	ts, err := f.catalog.TestSeriesByID(context.Background(), "cet-pcm-test-series")
	require.NoError(t, err)
	assert.Equal(t, "CET PCM Test Series", ts.Title)

	_, err = f.catalog.TestSeriesByID(context.Background(), "missing")
	require.Error(t, err)
}

func TestDeleteCourseCascades(t *testing.T) {
	f := newFixture(t)

	// A student holding the course grant and a pending request naming the
	// course title.
	created := f.submit(t, "asha@example.com", "8th CBSE")
	result, err := f.enrollments.ConfirmCredentials(context.Background(), created.ID, CredentialRequest{
		Email:    "asha@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	f.submit(t, "ravi@example.com", "8th CBSE")
	f.submit(t, "meena@example.com", "9th CBSE")

	require.NoError(t, f.catalog.DeleteCourse(context.Background(), "8th-cbse"))

	_, err = f.catalog.CourseByID(context.Background(), "8th-cbse")
	require.Error(t, err)

	students, err := f.studentRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Empty(t, students[0].ApprovedCourses)

	requests, err := f.enrollments.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "9th CBSE", requests[0].CourseOrSeries)

	dashboard, err := f.students.Dashboard(context.Background(), result.Student.ID)
	require.NoError(t, err)
	assert.Empty(t, dashboard.ApprovedCourses)
}

func TestDeleteCourseUnknownIDIsNoOp(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.catalog.DeleteCourse(context.Background(), "missing"))

	courses, err := f.catalog.Courses(context.Background())
	require.NoError(t, err)
	assert.Len(t, courses, len(seed.Courses()))
}

func TestAddTestSeriesCreatesPairedPoster(t *testing.T) {
	f := newFixture(t)

	created, err := f.catalog.AddTestSeries(context.Background(), CreateTestSeriesRequest{
		Title:            "NEET Biology Test Series",
		Overview:         "Chapter-wise NEET biology tests.",
		ShowInHeroPoster: true,
	})
	require.NoError(t, err)

	views, err := f.catalog.HeroPosters(context.Background())
	require.NoError(t, err)
	found := false
	for _, v := range views {
		if v.TestSeriesID == created.ID {
			found = true
			assert.Equal(t, "NEET Biology Test Series", v.TestSeriesTitle)
			assert.True(t, v.Enabled)
		}
	}
	assert.True(t, found)
}

func TestUpdateTestSeriesReconcilesHeroRotation(t *testing.T) {
	f := newFixture(t)

	off := false
	_, err := f.catalog.UpdateTestSeries(context.Background(), "cet-pcm-test-series", models.TestSeriesPatch{
		ShowInHeroPoster: &off,
	})
	require.NoError(t, err)

	views, err := f.catalog.HeroPosters(context.Background())
	require.NoError(t, err)
	for _, v := range views {
		assert.NotEqual(t, "cet-pcm-test-series", v.TestSeriesID)
	}

	on := true
	_, err = f.catalog.UpdateTestSeries(context.Background(), "cet-pcm-test-series", models.TestSeriesPatch{
		ShowInHeroPoster: &on,
	})
	require.NoError(t, err)

	views, err = f.catalog.HeroPosters(context.Background())
	require.NoError(t, err)
	found := false
	for _, v := range views {
		if v.TestSeriesID == "cet-pcm-test-series" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDeleteTestSeriesCascades(t *testing.T) {
	f := newFixture(t)

	created := f.submit(t, "ravi@example.com", "CET PCM Test Series")
	result, err := f.enrollments.ConfirmCredentials(context.Background(), created.ID, CredentialRequest{
		Email:    "ravi@example.com",
		Password: "pass1234",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"cet-pcm-test-series"}, result.Student.ApprovedTestSeries)

	require.NoError(t, f.catalog.DeleteTestSeries(context.Background(), "cet-pcm-test-series"))

	series, err := f.catalog.TestSeriesList(context.Background())
	require.NoError(t, err)
	for _, ts := range series {
		assert.NotEqual(t, "cet-pcm-test-series", ts.ID)
	}

	views, err := f.catalog.HeroPosters(context.Background())
	require.NoError(t, err)
	for _, v := range views {
		assert.NotEqual(t, "cet-pcm-test-series", v.TestSeriesID)
	}

	students, err := f.studentRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Empty(t, students[0].ApprovedTestSeries)

	requests, err := f.enrollments.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, requests)
}

func TestHeroPosterViewMarksDanglingSeriesUnknown(t *testing.T) {
	f := newFixture(t)

	poster, err := f.catalog.AddHeroPoster(context.Background(), CreateHeroPosterRequest{
		ImageURL:     "https://placehold.co/1200x500",
		TestSeriesID: "no-such-series",
	})
	require.NoError(t, err)

	views, err := f.catalog.HeroPosters(context.Background())
	require.NoError(t, err)
	found := false
	for _, v := range views {
		if v.ID == poster.ID {
			found = true
			assert.Equal(t, "Unknown", v.TestSeriesTitle)
		}
	}
	assert.True(t, found)
}

func TestEnabledHeroPostersFiltersDisabled(t *testing.T) {
	f := newFixture(t)

	disabled := false
	poster, err := f.catalog.AddHeroPoster(context.Background(), CreateHeroPosterRequest{
		ImageURL:     "https://placehold.co/1200x500",
		TestSeriesID: "10th-cbse-test-series",
		Enabled:      &disabled,
	})
	require.NoError(t, err)

	views, err := f.catalog.EnabledHeroPosters(context.Background())
	require.NoError(t, err)
	for _, v := range views {
		assert.NotEqual(t, poster.ID, v.ID)
	}
}

func TestDeleteHeroPosterUnknownIDIsNoOp(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.catalog.DeleteHeroPoster(context.Background(), "missing"))
}

func TestTestimonialsAreServed(t *testing.T) {
	f := newFixture(t)

	assert.NotEmpty(t, f.catalog.Testimonials())
}
