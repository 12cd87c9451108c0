package service

import (
	"context"
	"fmt"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/pkg/apperror"
	"github.com/hirenow/hirenow-backend/internal/store"
	"github.com/hirenow/hirenow-backend/internal/validation"
)

// EventPublisher доставляет событие пользователю. Доставка best-effort,
// ошибки не возвращаются.
type EventPublisher interface {
	Notify(userID, event string, data any)
}

// CreateHireRequestInput — данные новой заявки на найм.
type CreateHireRequestInput struct {
	ProjectID       string
	LaborerID       string
	Date            string
	PickupLocation  string
	DropoffLocation string
	OfferedAmount   float64
}

// HireRequestService реализует жизненный цикл заявки на найм:
// pending -> accepted | declined | negotiating, из negotiating подрядчик
// утверждает, отклоняет или правит сумму, completed достижим только из
// accepted. Все переходы — одношаговые перезаписи полей; терминальные
// статусы на уровне хранилища не защищаются.
type HireRequestService struct {
	store  *store.Store
	events EventPublisher
}

// NewHireRequestService создаёт сервис заявок.
func NewHireRequestService(st *store.Store, events EventPublisher) *HireRequestService {
	return &HireRequestService{store: st, events: events}
}

// notify отправляет событие, если издатель подключён.
func (s *HireRequestService) notify(userID, event string, data any) {
	if s.events != nil {
		s.events.Notify(userID, event, data)
	}
}

// Create создаёт заявку от подрядчика к одному рабочему под один проект.
// Ссылочная целостность проверяется здесь, на границе — хранилище её
// не контролирует.
func (s *HireRequestService) Create(ctx context.Context, contractorID string, input CreateHireRequestInput) (models.HireRequest, error) {
	project, ok := s.store.ProjectByID(input.ProjectID)
	if !ok {
		return models.HireRequest{}, apperror.ErrProjectNotFound
	}
	if project.ContractorID != contractorID {
		return models.HireRequest{}, apperror.ErrForbidden
	}
	if _, ok := s.store.LaborerByID(input.LaborerID); !ok {
		return models.HireRequest{}, apperror.ErrLaborerNotFound
	}
	if err := validation.ValidateNonEmpty("дата", input.Date); err != nil {
		return models.HireRequest{}, err
	}
	if err := validation.ValidateNonEmpty("место встречи", input.PickupLocation); err != nil {
		return models.HireRequest{}, err
	}
	if err := validation.ValidateAmount(input.OfferedAmount); err != nil {
		return models.HireRequest{}, err
	}

	req := models.HireRequest{
		ID:              models.NewID("request"),
		ProjectID:       input.ProjectID,
		LaborerID:       input.LaborerID,
		ContractorID:    contractorID,
		Date:            input.Date,
		Status:          models.HireStatusPending,
		PickupLocation:  input.PickupLocation,
		DropoffLocation: input.DropoffLocation,
		OfferedAmount:   input.OfferedAmount,
		JobCompleted:    false,
	}

	s.store.AddHireRequest(ctx, req)
	s.notify(req.LaborerID, "hire_request.created", req)

	return req, nil
}

// Accept — рабочий принимает заявку, при желании поправив точки встречи.
func (s *HireRequestService) Accept(ctx context.Context, laborerID, requestID string, pickup, dropoff *string) (models.HireRequest, error) {
	req, err := s.requestForLaborer(laborerID, requestID)
	if err != nil {
		return models.HireRequest{}, err
	}

	status := models.HireStatusAccepted
	s.store.UpdateHireRequest(ctx, req.ID, models.HireRequestUpdate{
		Status:          &status,
		PickupLocation:  pickup,
		DropoffLocation: dropoff,
	})

	updated, _ := s.store.HireRequestByID(req.ID)
	s.notify(updated.ContractorID, "hire_request.accepted", updated)
	return updated, nil
}

// Decline — рабочий отклоняет заявку. Статус терминальный.
func (s *HireRequestService) Decline(ctx context.Context, laborerID, requestID string) (models.HireRequest, error) {
	req, err := s.requestForLaborer(laborerID, requestID)
	if err != nil {
		return models.HireRequest{}, err
	}

	status := models.HireStatusDeclined
	s.store.UpdateHireRequest(ctx, req.ID, models.HireRequestUpdate{Status: &status})

	updated, _ := s.store.HireRequestByID(req.ID)
	s.notify(updated.ContractorID, "hire_request.declined", updated)
	return updated, nil
}

// Counter — рабочий предлагает встречную сумму, заявка переходит в торг.
func (s *HireRequestService) Counter(ctx context.Context, laborerID, requestID string, amount float64) (models.HireRequest, error) {
	req, err := s.requestForLaborer(laborerID, requestID)
	if err != nil {
		return models.HireRequest{}, err
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return models.HireRequest{}, err
	}

	status := models.HireStatusNegotiating
	s.store.UpdateHireRequest(ctx, req.ID, models.HireRequestUpdate{
		Status:        &status,
		CounterAmount: &amount,
	})

	updated, _ := s.store.HireRequestByID(req.ID)
	s.notify(updated.ContractorID, "hire_request.countered", updated)
	return updated, nil
}

// ApproveCounter — подрядчик принимает встречную сумму: она становится
// оплатой, встречное предложение очищается.
func (s *HireRequestService) ApproveCounter(ctx context.Context, contractorID, requestID string) (models.HireRequest, error) {
	req, err := s.requestForContractor(contractorID, requestID)
	if err != nil {
		return models.HireRequest{}, err
	}
	if req.CounterAmount == nil {
		return models.HireRequest{}, fmt.Errorf("встречного предложения нет")
	}

	status := models.HireStatusAccepted
	offered := *req.CounterAmount
	s.store.UpdateHireRequest(ctx, req.ID, models.HireRequestUpdate{
		Status:             &status,
		OfferedAmount:      &offered,
		ClearCounterAmount: true,
	})

	updated, _ := s.store.HireRequestByID(req.ID)
	s.notify(updated.LaborerID, "hire_request.counter_approved", updated)
	return updated, nil
}

// DenyCounter — подрядчик отклоняет встречную сумму, заявка закрывается.
// Встречное предложение при этом остаётся в записи: отображение опирается
// на него, и исходная реализация его не очищала.
func (s *HireRequestService) DenyCounter(ctx context.Context, contractorID, requestID string) (models.HireRequest, error) {
	req, err := s.requestForContractor(contractorID, requestID)
	if err != nil {
		return models.HireRequest{}, err
	}

	status := models.HireStatusDeclined
	s.store.UpdateHireRequest(ctx, req.ID, models.HireRequestUpdate{Status: &status})

	updated, _ := s.store.HireRequestByID(req.ID)
	s.notify(updated.LaborerID, "hire_request.counter_denied", updated)
	return updated, nil
}

// Amend — подрядчик предлагает новую сумму вместо встречной; заявка
// возвращается в pending, и рабочий решает заново.
func (s *HireRequestService) Amend(ctx context.Context, contractorID, requestID string, amount float64) (models.HireRequest, error) {
	req, err := s.requestForContractor(contractorID, requestID)
	if err != nil {
		return models.HireRequest{}, err
	}
	if err := validation.ValidateAmount(amount); err != nil {
		return models.HireRequest{}, err
	}

	status := models.HireStatusPending
	s.store.UpdateHireRequest(ctx, req.ID, models.HireRequestUpdate{
		Status:             &status,
		OfferedAmount:      &amount,
		ClearCounterAmount: true,
	})

	updated, _ := s.store.HireRequestByID(req.ID)
	s.notify(updated.LaborerID, "hire_request.amended", updated)
	return updated, nil
}

// Complete — подрядчик отмечает работу выполненной.
func (s *HireRequestService) Complete(ctx context.Context, contractorID, requestID string) (models.HireRequest, error) {
	req, err := s.requestForContractor(contractorID, requestID)
	if err != nil {
		return models.HireRequest{}, err
	}

	status := models.HireStatusCompleted
	done := true
	s.store.UpdateHireRequest(ctx, req.ID, models.HireRequestUpdate{
		Status:       &status,
		JobCompleted: &done,
	})

	updated, _ := s.store.HireRequestByID(req.ID)
	s.notify(updated.LaborerID, "hire_request.completed", updated)
	return updated, nil
}

// ListForLaborer возвращает заявки, адресованные рабочему.
func (s *HireRequestService) ListForLaborer(laborerID string) []models.HireRequest {
	var out []models.HireRequest
	for _, r := range s.store.HireRequests() {
		if r.LaborerID == laborerID {
			out = append(out, r)
		}
	}
	return out
}

// ListForContractor возвращает заявки, созданные подрядчиком.
func (s *HireRequestService) ListForContractor(contractorID string) []models.HireRequest {
	var out []models.HireRequest
	for _, r := range s.store.HireRequests() {
		if r.ContractorID == contractorID {
			out = append(out, r)
		}
	}
	return out
}

// ListForProject возвращает заявки проекта.
func (s *HireRequestService) ListForProject(projectID string) []models.HireRequest {
	var out []models.HireRequest
	for _, r := range s.store.HireRequests() {
		if r.ProjectID == projectID {
			out = append(out, r)
		}
	}
	return out
}

// requestForLaborer находит заявку и проверяет, что действует её адресат.
func (s *HireRequestService) requestForLaborer(laborerID, requestID string) (models.HireRequest, error) {
	req, ok := s.store.HireRequestByID(requestID)
	if !ok {
		return models.HireRequest{}, apperror.ErrHireRequestNotFound
	}
	if req.LaborerID != laborerID {
		return models.HireRequest{}, apperror.ErrForbidden
	}
	return req, nil
}

// requestForContractor находит заявку и проверяет, что действует её автор.
func (s *HireRequestService) requestForContractor(contractorID, requestID string) (models.HireRequest, error) {
	req, ok := s.store.HireRequestByID(requestID)
	if !ok {
		return models.HireRequest{}, apperror.ErrHireRequestNotFound
	}
	if req.ContractorID != contractorID {
		return models.HireRequest{}, apperror.ErrForbidden
	}
	return req, nil
}
