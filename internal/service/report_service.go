package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/pkg/apperror"
	"github.com/hirenow/hirenow-backend/internal/store"
	"github.com/hirenow/hirenow-backend/internal/validation"
)

// CreateReportInput — данные жалобы.
type CreateReportInput struct {
	ProjectID   string
	Description string
	Rating      int
	TargetType  string
}

// ReportService принимает жалобы участников друг на друга.
type ReportService struct {
	store *store.Store
}

// NewReportService создаёт сервис жалоб.
func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// Create регистрирует жалобу от текущего участника.
func (s *ReportService) Create(ctx context.Context, reporterID, reporterRole string, input CreateReportInput) (models.Report, error) {
	if err := validation.ValidateRole(reporterRole); err != nil {
		return models.Report{}, err
	}
	if input.TargetType != models.ReportTargetLaborer && input.TargetType != models.ReportTargetContractor {
		return models.Report{}, fmt.Errorf("неизвестный тип цели жалобы '%s'", input.TargetType)
	}
	if _, ok := s.store.ProjectByID(input.ProjectID); !ok {
		return models.Report{}, apperror.ErrProjectNotFound
	}
	if err := validation.ValidateDescription(input.Description); err != nil {
		return models.Report{}, err
	}
	if err := validation.ValidateStars(input.Rating); err != nil {
		return models.Report{}, err
	}

	report := models.Report{
		ID:           models.NewID("report"),
		ReporterID:   reporterID,
		ReporterRole: reporterRole,
		ProjectID:    input.ProjectID,
		Description:  input.Description,
		Rating:       input.Rating,
		TargetType:   input.TargetType,
		Date:         time.Now().Format("2006-01-02"),
	}

	s.store.AddReport(ctx, report)
	return report, nil
}

// ListForReporter возвращает жалобы, поданные участником.
func (s *ReportService) ListForReporter(reporterID string) []models.Report {
	var out []models.Report
	for _, r := range s.store.Reports() {
		if r.ReporterID == reporterID {
			out = append(out, r)
		}
	}
	return out
}
