package service

import (
	"context"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/pkg/apperror"
	"github.com/hirenow/hirenow-backend/internal/store"
	"github.com/hirenow/hirenow-backend/internal/validation"
)

// CreateProjectInput — данные нового проекта.
type CreateProjectInput struct {
	Title       string
	Description string
	Location    string
	PhotoURLs   []string
	StartDate   string
	EndDate     string
}

// ProjectService управляет проектами подрядчиков.
type ProjectService struct {
	store *store.Store
}

// NewProjectService создаёт сервис проектов.
func NewProjectService(st *store.Store) *ProjectService {
	return &ProjectService{store: st}
}

// Create создаёт проект со статусом active.
func (s *ProjectService) Create(ctx context.Context, contractorID string, input CreateProjectInput) (models.Project, error) {
	if _, ok := s.store.ContractorByID(contractorID); !ok {
		return models.Project{}, apperror.ErrContractorNotFound
	}
	if err := validation.ValidateTitle(input.Title); err != nil {
		return models.Project{}, err
	}
	if err := validation.ValidateDescription(input.Description); err != nil {
		return models.Project{}, err
	}
	if err := validation.ValidateLocation(input.Location); err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		ID:           models.NewID("project"),
		ContractorID: contractorID,
		Title:        input.Title,
		Description:  input.Description,
		Location:     input.Location,
		PhotoURLs:    input.PhotoURLs,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		Status:       models.ProjectStatusActive,
	}
	if project.PhotoURLs == nil {
		project.PhotoURLs = []string{}
	}

	s.store.AddProject(ctx, project)
	return project, nil
}

// Complete переводит проект в статус completed. Разрешено только владельцу.
func (s *ProjectService) Complete(ctx context.Context, contractorID, projectID string) (models.Project, error) {
	project, ok := s.store.ProjectByID(projectID)
	if !ok {
		return models.Project{}, apperror.ErrProjectNotFound
	}
	if project.ContractorID != contractorID {
		return models.Project{}, apperror.ErrForbidden
	}

	s.store.UpdateProjectStatus(ctx, projectID, models.ProjectStatusCompleted)

	updated, _ := s.store.ProjectByID(projectID)
	return updated, nil
}

// Get возвращает проект по идентификатору.
func (s *ProjectService) Get(id string) (models.Project, bool) {
	return s.store.ProjectByID(id)
}

// ListForContractor возвращает проекты подрядчика в порядке создания.
func (s *ProjectService) ListForContractor(contractorID string) []models.Project {
	var out []models.Project
	for _, p := range s.store.Projects() {
		if p.ContractorID == contractorID {
			out = append(out, p)
		}
	}
	return out
}
