package service

import (
	"context"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/store"
	"github.com/hirenow/hirenow-backend/internal/validation"
)

// RegisterLaborerInput — данные регистрации рабочего. Навыки, доступность и
// фото задаются один раз при создании профиля.
type RegisterLaborerInput struct {
	Name         string
	Phone        string
	Location     string
	Skills       []models.Skill
	Availability []string
	PhotoURLs    []string
	CanDrive     bool
}

// RegisterContractorInput — данные регистрации подрядчика.
type RegisterContractorInput struct {
	Name     string
	Phone    string
	Company  string
	Location string
}

// ProfileService регистрирует участников и отдаёт их профили.
type ProfileService struct {
	store *store.Store
}

// NewProfileService создаёт сервис профилей.
func NewProfileService(st *store.Store) *ProfileService {
	return &ProfileService{store: st}
}

// RegisterLaborer создаёт профиль рабочего.
func (s *ProfileService) RegisterLaborer(ctx context.Context, input RegisterLaborerInput) (models.Laborer, error) {
	if err := validation.ValidateName(input.Name); err != nil {
		return models.Laborer{}, err
	}
	if err := validation.ValidatePhone(input.Phone); err != nil {
		return models.Laborer{}, err
	}
	if err := validation.ValidateLocation(input.Location); err != nil {
		return models.Laborer{}, err
	}
	if err := validation.ValidateSkills(input.Skills); err != nil {
		return models.Laborer{}, err
	}
	if err := validation.ValidateAvailability(input.Availability); err != nil {
		return models.Laborer{}, err
	}

	laborer := models.Laborer{
		ID:           models.NewID("laborer"),
		Name:         input.Name,
		Phone:        input.Phone,
		Location:     input.Location,
		Skills:       input.Skills,
		Availability: input.Availability,
		PhotoURLs:    input.PhotoURLs,
		Ratings:      []models.Rating{},
		CanDrive:     input.CanDrive,
	}
	if laborer.PhotoURLs == nil {
		laborer.PhotoURLs = []string{}
	}

	s.store.AddLaborer(ctx, laborer)
	return laborer, nil
}

// RegisterContractor создаёт профиль подрядчика.
func (s *ProfileService) RegisterContractor(ctx context.Context, input RegisterContractorInput) (models.Contractor, error) {
	if err := validation.ValidateName(input.Name); err != nil {
		return models.Contractor{}, err
	}
	if err := validation.ValidatePhone(input.Phone); err != nil {
		return models.Contractor{}, err
	}
	if err := validation.ValidateNonEmpty("компания", input.Company); err != nil {
		return models.Contractor{}, err
	}
	if err := validation.ValidateLocation(input.Location); err != nil {
		return models.Contractor{}, err
	}

	contractor := models.Contractor{
		ID:       models.NewID("contractor"),
		Name:     input.Name,
		Phone:    input.Phone,
		Company:  input.Company,
		Location: input.Location,
		Ratings:  []models.ContractorRating{},
	}

	s.store.AddContractor(ctx, contractor)
	return contractor, nil
}

// GetLaborer возвращает профиль рабочего.
func (s *ProfileService) GetLaborer(id string) (models.Laborer, bool) {
	return s.store.LaborerByID(id)
}

// GetContractor возвращает профиль подрядчика.
func (s *ProfileService) GetContractor(id string) (models.Contractor, bool) {
	return s.store.ContractorByID(id)
}
