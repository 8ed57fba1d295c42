package models

import "time"

// CourseCategory groups courses on the public catalog.
type CourseCategory string

const (
	CategoryFoundation  CourseCategory = "Foundation"
	CategoryScience     CourseCategory = "Science"
	CategoryCompetitive CourseCategory = "Competitive"
)

// CourseMode describes how a course is delivered.
type CourseMode string

const (
	ModeOnline  CourseMode = "Online"
	ModeOffline CourseMode = "Offline"
	ModeHybrid  CourseMode = "Online / Offline"
)

// CourseChapter is a single entry in a course's ordered chapter list.
type CourseChapter struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	VideoURL    string `json:"videoUrl"`
}

// Course is a catalog course offered by the institute.
type Course struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Category        CourseCategory  `json:"category"`
	Description     string          `json:"description"`
	FullDescription string          `json:"fullDescription"`
	Mode            CourseMode      `json:"mode"`
	Image           string          `json:"image"`
	Chapters        []CourseChapter `json:"chapters"`
	DemoVideoURL    string          `json:"demoVideoUrl"`
}

// TestSeries is a catalog test series offered by the institute.
type TestSeries struct {
	ID                  string   `json:"id"`
	Title               string   `json:"title"`
	Overview            string   `json:"overview"`
	Features            []string `json:"features"`
	TestPattern         string   `json:"testPattern"`
	Benefits            []string `json:"benefits"`
	Image               string   `json:"image"`
	CTALabel            string   `json:"ctaLabel"`
	DemoTestLink        string   `json:"demoTestLink"`
	HeroPosterThumbnail string   `json:"heroPosterThumbnail"`
	ShowInHeroPoster    bool     `json:"showInHeroPoster"`
}

// HeroPoster is a promotional slot on the landing page. TestSeriesID is a
// weak reference; it may dangle after out-of-band edits and consumers must
// tolerate that.
type HeroPoster struct {
	ID           string    `json:"id"`
	ImageURL     string    `json:"imageUrl"`
	TestSeriesID string    `json:"testSeriesId"`
	Enabled      bool      `json:"enabled"`
	CreatedAt    time.Time `json:"createdAt"`
}

// HeroPosterView is a poster joined with its test series title for display.
type HeroPosterView struct {
	HeroPoster
	TestSeriesTitle string `json:"testSeriesTitle"`
}

// TestSeriesPatch carries partial updates for a test series. Present fields
// override, absent fields are retained.
type TestSeriesPatch struct {
	Title               *string   `json:"title,omitempty"`
	Overview            *string   `json:"overview,omitempty"`
	Features            *[]string `json:"features,omitempty"`
	TestPattern         *string   `json:"testPattern,omitempty"`
	Benefits            *[]string `json:"benefits,omitempty"`
	Image               *string   `json:"image,omitempty"`
	CTALabel            *string   `json:"ctaLabel,omitempty"`
	DemoTestLink        *string   `json:"demoTestLink,omitempty"`
	HeroPosterThumbnail *string   `json:"heroPosterThumbnail,omitempty"`
	ShowInHeroPoster    *bool     `json:"showInHeroPoster,omitempty"`
}

// Apply merges the patch into the series.
func (p TestSeriesPatch) Apply(ts *TestSeries) {
	if p.Title != nil {
		ts.Title = *p.Title
	}
	if p.Overview != nil {
		ts.Overview = *p.Overview
	}
	if p.Features != nil {
		ts.Features = *p.Features
	}
	if p.TestPattern != nil {
		ts.TestPattern = *p.TestPattern
	}
	if p.Benefits != nil {
		ts.Benefits = *p.Benefits
	}
	if p.Image != nil {
		ts.Image = *p.Image
	}
	if p.CTALabel != nil {
		ts.CTALabel = *p.CTALabel
	}
	if p.DemoTestLink != nil {
		ts.DemoTestLink = *p.DemoTestLink
	}
	if p.HeroPosterThumbnail != nil {
		ts.HeroPosterThumbnail = *p.HeroPosterThumbnail
	}
	if p.ShowInHeroPoster != nil {
		ts.ShowInHeroPoster = *p.ShowInHeroPoster
	}
}

// HeroPosterPatch carries partial updates for a hero poster.
type HeroPosterPatch struct {
	ImageURL     *string `json:"imageUrl,omitempty"`
	TestSeriesID *string `json:"testSeriesId,omitempty"`
	Enabled      *bool   `json:"enabled,omitempty"`
}

// Apply merges the patch into the poster.
func (p HeroPosterPatch) Apply(hp *HeroPoster) {
	if p.ImageURL != nil {
		hp.ImageURL = *p.ImageURL
	}
	if p.TestSeriesID != nil {
		hp.TestSeriesID = *p.TestSeriesID
	}
	if p.Enabled != nil {
		hp.Enabled = *p.Enabled
	}
}

// Testimonial is static social proof shown on the landing page.
type Testimonial struct {
	Name   string `json:"name"`
	Course string `json:"course"`
	Text   string `json:"text"`
	Avatar string `json:"avatar"`
}
