// Package seed holds the default public dataset used when a snapshot is
// absent or unreadable. Ids here are stable slugs rather than generated ids
// so fresh deployments are reproducible.
package seed

import (
	"time"

	"github.com/saraswaticlasses/institute-api/internal/models"
)

// Courses returns the default course catalog.
func Courses() []models.Course {
	return []models.Course{
		{
			ID:              "8th-cbse",
			Title:           "8th CBSE",
			Category:        models.CategoryFoundation,
			Description:     "Build strong fundamentals in Maths and Science for 8th CBSE.",
			FullDescription: "Our 8th CBSE foundation program focuses on conceptual clarity, regular assessments and doubt-solving to prepare students for higher classes and competitive exams.",
			Mode:            models.ModeHybrid,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=8th+CBSE",
			DemoVideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			Chapters: []models.CourseChapter{
				{Title: "Number Systems Basics", Description: "Understanding integers, fractions and decimals with real-life examples.", VideoURL: "https://www.youtube.com/watch?v=ysz5d6-0K8A"},
				{Title: "Algebraic Expressions", Description: "Introduction to variables, expressions and simple equations.", VideoURL: "https://www.youtube.com/watch?v=5MgBikgcWnY"},
				{Title: "Introduction to Force and Pressure", Description: "Key Science concepts with simple experiments.", VideoURL: "https://www.youtube.com/watch?v=aqz-KE-bpKQ"},
			},
		},
		{
			ID:              "9th-cbse",
			Title:           "9th CBSE",
			Category:        models.CategoryFoundation,
			Description:     "Strengthen problem-solving skills with focused 9th CBSE coaching.",
			FullDescription: "The 9th CBSE course prepares students with strong fundamentals in Algebra, Geometry, Physics and Chemistry with regular tests and detailed feedback.",
			Mode:            models.ModeHybrid,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=9th+CBSE",
			DemoVideoURL:    "https://www.youtube.com/embed/9bZkp7q19f0",
			Chapters: []models.CourseChapter{
				{Title: "Linear Equations in Two Variables", Description: "Graphical and algebraic methods to solve linear equations.", VideoURL: "https://www.youtube.com/watch?v=V-_O7nl0Ii0"},
				{Title: "Sound and Its Properties", Description: "Wave nature of sound and its applications.", VideoURL: "https://www.youtube.com/watch?v=uelHwf8o7_U"},
				{Title: "Atoms and Molecules", Description: "Laws of chemical combination and mole concept.", VideoURL: "https://www.youtube.com/watch?v=Zi_XLOBDo_Y"},
			},
		},
		{
			ID:              "10th-cbse",
			Title:           "10th CBSE",
			Category:        models.CategoryFoundation,
			Description:     "Score high in board exams with structured 10th CBSE preparation.",
			FullDescription: "Comprehensive coverage of all subjects with regular board pattern tests, analysis, and revision modules for CBSE 10th board exams.",
			Mode:            models.ModeHybrid,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=10th+CBSE",
			DemoVideoURL:    "https://www.youtube.com/embed/3JZ_D3ELwOQ",
			Chapters: []models.CourseChapter{
				{Title: "Quadratic Equations", Description: "Concept, factorization and quadratic formula based problems.", VideoURL: "https://www.youtube.com/watch?v=kXYiU_JCYtU"},
				{Title: "Light: Reflection and Refraction", Description: "Mirror and lens formulas with numericals.", VideoURL: "https://www.youtube.com/watch?v=fLexgOxsZu0"},
				{Title: "Chemical Reactions and Equations", Description: "Balancing equations and different types of reactions.", VideoURL: "https://www.youtube.com/watch?v=2Vv-BfVoq4g"},
			},
		},
		{
			ID:              "9th-ssc",
			Title:           "9th SSC",
			Category:        models.CategoryFoundation,
			Description:     "Concept-focused teaching for 9th SSC students.",
			FullDescription: "9th SSC course is designed to cover the Maharashtra State Board syllabus with exam-oriented preparation and regular practice sheets.",
			Mode:            models.ModeOffline,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=9th+SSC",
			DemoVideoURL:    "https://www.youtube.com/embed/kJQP7kiw5Fk",
			Chapters: []models.CourseChapter{
				{Title: "Statistics Basics", Description: "Understanding mean, median and mode with examples.", VideoURL: "https://www.youtube.com/watch?v=ktvTqknDobU"},
				{Title: "Sets and Venn Diagrams", Description: "Introduction to sets with Venn diagram representation.", VideoURL: "https://www.youtube.com/watch?v=JGwWNGJdvx8"},
			},
		},
		{
			ID:              "10th-ssc",
			Title:           "10th SSC",
			Category:        models.CategoryFoundation,
			Description:     "Target high marks in SSC board exams.",
			FullDescription: "10th SSC program includes chapter-wise notes, question banks, and multiple full-syllabus mock tests based on latest board pattern.",
			Mode:            models.ModeOffline,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=10th+SSC",
			DemoVideoURL:    "https://www.youtube.com/embed/OPf0YbXqDm0",
			Chapters: []models.CourseChapter{
				{Title: "Progressions", Description: "Arithmetic and geometric progressions with applications.", VideoURL: "https://www.youtube.com/watch?v=34Na4j8AVgA"},
				{Title: "Electricity", Description: "Ohm's law, series and parallel circuits and numericals.", VideoURL: "https://www.youtube.com/watch?v=pRpeEdMmmQ0"},
				{Title: "Acids, Bases and Salts", Description: "Everyday applications and important reactions.", VideoURL: "https://www.youtube.com/watch?v=lp-EO5I60KA"},
			},
		},
		{
			ID:              "11th-science-pcmb",
			Title:           "11th Science PCMB",
			Category:        models.CategoryScience,
			Description:     "Foundation for engineering and medical entrance exams.",
			FullDescription: "11th PCMB course strengthens conceptual understanding in Physics, Chemistry, Maths and Biology with a blend of board and entrance level questions.",
			Mode:            models.ModeHybrid,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=11th+Science+PCMB",
			DemoVideoURL:    "https://www.youtube.com/embed/e-ORhEE9VVg",
			Chapters: []models.CourseChapter{
				{Title: "Kinematics", Description: "Motion in a straight line and plane with graphs.", VideoURL: "https://www.youtube.com/watch?v=0KSOMA3QBU0"},
				{Title: "Basic Trigonometry", Description: "Trigonometric ratios and identities with problems.", VideoURL: "https://www.youtube.com/watch?v=SlPhMPnQ58k"},
				{Title: "Cell Structure", Description: "Introduction to cell as a unit of life.", VideoURL: "https://www.youtube.com/watch?v=CevxZvSJLk8"},
			},
		},
		{
			ID:              "12th-science-pcmb",
			Title:           "12th Science PCMB",
			Category:        models.CategoryScience,
			Description:     "Board + entrance-focused 12th Science coaching.",
			FullDescription: "12th PCMB course covers entire board syllabus along with advanced problems aligned with JEE, NEET and CET patterns.",
			Mode:            models.ModeHybrid,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=12th+Science+PCMB",
			DemoVideoURL:    "https://www.youtube.com/embed/09R8_2nJtjg",
			Chapters: []models.CourseChapter{
				{Title: "Electrostatics", Description: "Coulomb's law, electric field and potential.", VideoURL: "https://www.youtube.com/watch?v=RubBzkZzpUA"},
				{Title: "Organic Chemistry Basics", Description: "Nomenclature and reaction mechanisms overview.", VideoURL: "https://www.youtube.com/watch?v=TT2p5g0H3-w"},
				{Title: "Human Physiology", Description: "Overview of important human body systems.", VideoURL: "https://www.youtube.com/watch?v=LsoLEjrDogU"},
			},
		},
		{
			ID:              "jee-preparation",
			Title:           "JEE Preparation",
			Category:        models.CategoryCompetitive,
			Description:     "Intensive JEE Main & Advanced coaching.",
			FullDescription: "Two-year and one-year integrated JEE coaching with topic-wise tests, full-length mock exams and personalised performance analysis.",
			Mode:            models.ModeHybrid,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=JEE+Prep",
			DemoVideoURL:    "https://www.youtube.com/embed/uelHwf8o7_U",
			Chapters: []models.CourseChapter{
				{Title: "Vectors and 3D Geometry", Description: "Important tools for JEE coordinate geometry and physics.", VideoURL: "https://www.youtube.com/watch?v=2vjPBrBU-TM"},
				{Title: "Limits, Continuity and Differentiability", Description: "Core calculus concepts with JEE level problems.", VideoURL: "https://www.youtube.com/watch?v=YQHsXMglC9A"},
				{Title: "Thermodynamics for JEE", Description: "Key concepts and PYQ discussion.", VideoURL: "https://www.youtube.com/watch?v=3AtDnEC4zak"},
			},
		},
		{
			ID:              "cet-preparation",
			Title:           "CET Preparation",
			Category:        models.CategoryCompetitive,
			Description:     "Target MAH-CET with focused PCM practice.",
			FullDescription: "CET preparation course focuses on speed, accuracy and smart shortcuts with multiple full-length CET pattern tests.",
			Mode:            models.ModeOnline,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=CET+Prep",
			DemoVideoURL:    "https://www.youtube.com/embed/kOkQ4T5WO9E",
			Chapters: []models.CourseChapter{
				{Title: "Speed Maths Techniques", Description: "Shortcuts for arithmetic and algebra for CET.", VideoURL: "https://www.youtube.com/watch?v=RgKAFK5djSk"},
				{Title: "Modern Physics Overview", Description: "High-weightage CET topics in Modern Physics.", VideoURL: "https://www.youtube.com/watch?v=pXRviuL6vMY"},
			},
		},
		{
			ID:              "neet-preparation",
			Title:           "NEET Preparation",
			Category:        models.CategoryCompetitive,
			Description:     "Comprehensive NEET UG coaching for MBBS aspirants.",
			FullDescription: "Structured NEET course with NCERT-focused notes, question banks and chapter-wise, unit-wise and full-syllabus tests.",
			Mode:            models.ModeHybrid,
			Image:           "https://placehold.co/400x250/0ea5e9/ffffff?text=NEET+Prep",
			DemoVideoURL:    "https://www.youtube.com/embed/hT_nvWreIhg",
			Chapters: []models.CourseChapter{
				{Title: "Human Anatomy Highlights", Description: "Important diagrams and theory for NEET Biology.", VideoURL: "https://www.youtube.com/watch?v=6Dh-RL__uN4"},
				{Title: "Chemical Bonding", Description: "Conceptual coverage with previous year questions.", VideoURL: "https://www.youtube.com/watch?v=YykjpeuMNEk"},
				{Title: "Kinematics for NEET", Description: "Physics motion concepts tailored for NEET pattern.", VideoURL: "https://www.youtube.com/watch?v=JGwWNGJdvx8"},
			},
		},
	}
}

// TestSeriesList returns the default test series catalog.
func TestSeriesList() []models.TestSeries {
	return []models.TestSeries{
		{
			ID:       "cet-pcm-test-series",
			Title:    "CET PCM Test Series",
			Overview: "Rigorous full-syllabus CET PCM test series with detailed analysis to maximise your score.",
			Features: []string{
				"30+ full syllabus and part syllabus mock tests",
				"Paper discussion and doubt-solving after every test",
				"Topic-wise analysis to identify strong and weak areas",
				"Time management tips and strategies for CET",
			},
			TestPattern: "150 questions | 90 minutes | No negative marking | PCM focused pattern",
			Benefits: []string{
				"Build exam temperament through regular mock practice",
				"Understand question trends and frequently asked topics",
				"Improve speed and accuracy under time pressure",
				"Get personalised guidance based on your performance",
			},
			Image:               "https://placehold.co/400x250/0ea5e9/ffffff?text=CET+PCM+Test+Series",
			CTALabel:            "Enroll Now",
			DemoTestLink:        "https://forms.gle/example-cet-test",
			HeroPosterThumbnail: "https://placehold.co/600x450/0ea5e9/ffffff?text=CET+PCM+Test+Series",
			ShowInHeroPoster:    true,
		},
		{
			ID:       "9th-cbse-test-series",
			Title:    "9th CBSE Maths & Science Test Series",
			Overview: "Chapter-wise and full-syllabus 9th CBSE test series for strong fundamentals in Maths and Science.",
			Features: []string{
				"Chapter-wise tests for every unit in Maths & Science",
				"Mixed-topic tests to build application skills",
				"Detailed paper solutions and doubt-solving sessions",
				"Performance tracking across the entire academic year",
			},
			TestPattern: "Objective + subjective pattern aligned with latest CBSE guidelines",
			Benefits: []string{
				"Develop exam writing skills early in the year",
				"Identify conceptual gaps before final exams",
				"Boost confidence with regular exam practice",
				"Stay exam-ready with revision-oriented tests",
			},
			Image:               "https://placehold.co/400x250/0ea5e9/ffffff?text=9th+CBSE+Test+Series",
			CTALabel:            "Enroll Now",
			DemoTestLink:        "https://forms.gle/example-9th-cbse-test",
			HeroPosterThumbnail: "https://placehold.co/600x450/0ea5e9/ffffff?text=9th+CBSE+Test+Series",
			ShowInHeroPoster:    true,
		},
		{
			ID:       "10th-cbse-test-series",
			Title:    "10th CBSE Maths & Science Test Series",
			Overview: "Board-focused test series for 10th CBSE students targeting top scores in Maths and Science.",
			Features: []string{
				"Prelim-style full syllabus papers",
				"Chapter-wise and unit-wise practice tests",
				"Detailed marking scheme based evaluation",
				"Revision booster papers before board exams",
			},
			TestPattern: "Board-style question papers with section-wise weightage",
			Benefits: []string{
				"Experience real board-exam like environment",
				"Refine presentation and answer writing skills",
				"Get accurate feedback on your preparation level",
				"Reduce exam anxiety with multiple mock attempts",
			},
			Image:               "https://placehold.co/400x250/0ea5e9/ffffff?text=10th+CBSE+Test+Series",
			CTALabel:            "Enroll Now",
			DemoTestLink:        "https://forms.gle/example-10th-cbse-test",
			HeroPosterThumbnail: "https://placehold.co/600x450/0ea5e9/ffffff?text=10th+CBSE+Test+Series",
			ShowInHeroPoster:    false,
		},
	}
}

// HeroPosters derives the default posters from series flagged for the hero
// slot, mirroring how the landing page was originally seeded.
func HeroPosters() []models.HeroPoster {
	var posters []models.HeroPoster
	for _, ts := range TestSeriesList() {
		if !ts.ShowInHeroPoster {
			continue
		}
		image := ts.HeroPosterThumbnail
		if image == "" {
			image = ts.Image
		}
		posters = append(posters, models.HeroPoster{
			ID:           "default-hero-" + ts.ID,
			ImageURL:     image,
			TestSeriesID: ts.ID,
			Enabled:      true,
			CreatedAt:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	return posters
}

// Popup returns the default popup configuration (disabled).
func Popup() models.PopupContent {
	return models.PopupContent{
		Title:       "Explore Our Test Series",
		Description: "Boost your exam preparation with structured practice.",
		CTAText:     "View Test Series",
		CTALink:     "/test-series",
		Enabled:     false,
	}
}

// Testimonials returns the static landing-page testimonials.
func Testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:   "Priya Sharma",
			Course: "10th CBSE + CET Preparation",
			Text:   "Saraswati Classes helped me build a strong foundation in Maths and Science. Regular tests and personal guidance boosted my confidence for boards.",
			Avatar: "https://placehold.co/80x80/0ea5e9/ffffff?text=PS",
		},
		{
			Name:   "Rahul Verma",
			Course: "JEE Preparation",
			Text:   "The JEE batch is highly focused with conceptual teaching and lots of practice questions. Test analysis sessions were extremely useful.",
			Avatar: "https://placehold.co/80x80/0ea5e9/ffffff?text=RV",
		},
		{
			Name:   "Sneha Patil",
			Course: "NEET Preparation",
			Text:   "Detailed notes, doubt-solving and regular NEET pattern tests made my preparation structured and stress-free.",
			Avatar: "https://placehold.co/80x80/0ea5e9/ffffff?text=SP",
		},
		{
			Name:   "Aditya Deshmukh",
			Course: "9th & 10th Foundation",
			Text:   "I joined in 9th and continued till 10th. The friendly environment and clear explanations made even difficult topics easy to understand.",
			Avatar: "https://placehold.co/80x80/0ea5e9/ffffff?text=AD",
		},
	}
}
