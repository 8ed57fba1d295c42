package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/saraswaticlasses/institute-api/internal/models"
	appErrors "github.com/saraswaticlasses/institute-api/pkg/errors"
	"github.com/saraswaticlasses/institute-api/pkg/export"
)

// ReportFile is a rendered enrollment report ready to be served.
type ReportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// ExportService renders the enrollment register as downloadable reports.
type ExportService struct {
	requests enrollmentStore
	csv      *export.CSVExporter
	pdf      *export.PDFExporter
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(requests enrollmentStore, logger *zap.Logger) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExportService{
		requests: requests,
		csv:      export.NewCSVExporter(),
		pdf:      export.NewPDFExporter(),
		logger:   logger,
	}
}

// EnrollmentReport renders the register in the requested format, "csv" or
// "pdf".
func (s *ExportService) EnrollmentReport(ctx context.Context, format string) (*ReportFile, error) {
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf")
	}

	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load enrollments")
	}
	data := enrollmentDataset(requests)
	stamp := time.Now().UTC().Format("20060102-150405")

	switch format {
	case "csv":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv report")
		}
		s.logger.Info("enrollment report rendered", zap.String("format", "csv"), zap.Int("rows", len(requests)))
		return &ReportFile{
			Name:        fmt.Sprintf("enrollments-%s.csv", stamp),
			ContentType: "text/csv",
			Content:     content,
		}, nil
	default:
		content, err := s.pdf.Render(data, "Enrollment Register")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf report")
		}
		s.logger.Info("enrollment report rendered", zap.String("format", "pdf"), zap.Int("rows", len(requests)))
		return &ReportFile{
			Name:        fmt.Sprintf("enrollments-%s.pdf", stamp),
			ContentType: "application/pdf",
			Content:     content,
		}, nil
	}
}

func enrollmentDataset(requests []models.EnrollmentRequest) export.Dataset {
	data := export.Dataset{
		Headers: []string{"Name", "Email", "Phone", "Course / Series", "Status", "Submitted"},
		Rows:    make([]map[string]string, 0, len(requests)),
	}
	for _, r := range requests {
		data.Rows = append(data.Rows, map[string]string{
			"Name":            r.Name,
			"Email":           r.Email,
			"Phone":           r.Phone,
			"Course / Series": r.CourseOrSeries,
			"Status":          string(r.Status),
			"Submitted":       r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	return data
}
