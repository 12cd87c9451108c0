package service

import (
	"context"
	"fmt"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/store"
	"github.com/hirenow/hirenow-backend/internal/validation"
)

// SessionService управляет текущей сессией: вход — это выбор роли плюс
// идентификатор существующего профиля, выход сбрасывает пару целиком.
type SessionService struct {
	store  *store.Store
	tokens *TokenManager
}

// NewSessionService создаёт сервис сессий.
func NewSessionService(st *store.Store, tokens *TokenManager) *SessionService {
	return &SessionService{store: st, tokens: tokens}
}

// Login устанавливает сессию и возвращает сессионный токен.
// Профиль с указанной ролью должен существовать.
func (s *SessionService) Login(ctx context.Context, role, userID string) (string, error) {
	if err := validation.ValidateRole(role); err != nil {
		return "", err
	}

	switch role {
	case models.RoleLaborer:
		if _, ok := s.store.LaborerByID(userID); !ok {
			return "", fmt.Errorf("рабочий не найден")
		}
	case models.RoleContractor:
		if _, ok := s.store.ContractorByID(userID); !ok {
			return "", fmt.Errorf("подрядчик не найден")
		}
	}

	s.store.SetRole(ctx, role, userID)

	token, err := s.tokens.Generate(userID, role)
	if err != nil {
		return "", fmt.Errorf("не удалось выпустить токен: %w", err)
	}
	return token, nil
}

// Logout сбрасывает сессию. Роль и пользователь очищаются атомарно.
func (s *SessionService) Logout(ctx context.Context) {
	s.store.Logout(ctx)
}

// Current возвращает текущую пару роль/пользователь.
func (s *SessionService) Current() (role, userID string, ok bool) {
	return s.store.Session()
}
