package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hirenow/hirenow-backend/internal/logger"
	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/seed"
)

// AppState — единственный источник правды приложения: все коллекции плюс
// текущая сессия (роль и пользователь). Сериализуется целиком одним JSON
// объектом под фиксированным ключом.
type AppState struct {
	Laborers      []models.Laborer     `json:"laborers"`
	Contractors   []models.Contractor  `json:"contractors"`
	Projects      []models.Project     `json:"projects"`
	HireRequests  []models.HireRequest `json:"hireRequests"`
	Reports       []models.Report      `json:"reports,omitempty"`
	CurrentRole   *string              `json:"currentRole"`
	CurrentUserID *string              `json:"currentUserId"`
}

// Snapshotter сохраняет и загружает сериализованное состояние.
// Load возвращает (nil, nil), если сохранённого снимка ещё нет.
type Snapshotter interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, payload []byte) error
}

// Store владеет состоянием приложения. Каждая мутация синхронно записывает
// полный снимок; ошибки записи проглатываются — память остаётся
// авторитетной, сохранение здесь best-effort.
//
// Мутекс нужен только потому, что HTTP-слой конкурентен; наблюдаемое
// поведение от этого не меняется.
type Store struct {
	mu       sync.RWMutex
	state    AppState
	snaps    Snapshotter
	seedData *seed.Dataset
	hydrated bool
}

// New создаёт хранилище поверх снапшоттера с указанными сид-данными.
func New(snaps Snapshotter, seedData *seed.Dataset) *Store {
	return &Store{snaps: snaps, seedData: seedData}
}

// Hydrate загружает сохранённое состояние. Если снимка нет или он повреждён,
// хранилище стартует с сид-данных. До вызова Hydrate коллекции читать нельзя —
// иначе клиент увидит сид-данные вместо настоящих.
func (s *Store) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.snaps.Load(ctx)
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithError(err).Warn("store: не удалось прочитать снимок, используем сид-данные")
		}
		raw = nil
	}

	if raw != nil {
		var loaded AppState
		if err := json.Unmarshal(raw, &loaded); err == nil {
			s.state = loaded
			s.hydrated = true
			return
		} else if logger.Log != nil {
			logger.Log.WithError(err).Warn("store: снимок повреждён, используем сид-данные")
		}
	}

	s.state = AppState{
		Laborers:     append([]models.Laborer(nil), s.seedData.Laborers...),
		Contractors:  append([]models.Contractor(nil), s.seedData.Contractors...),
		Projects:     append([]models.Project(nil), s.seedData.Projects...),
		HireRequests: append([]models.HireRequest(nil), s.seedData.HireRequests...),
	}
	s.hydrated = true
}

// Hydrated сообщает, была ли уже попытка загрузки состояния.
func (s *Store) Hydrated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hydrated
}

// persistLocked сериализует состояние и пишет снимок. Вызывается строго под
// мутексом. Ошибки записи не прерывают мутацию.
func (s *Store) persistLocked(ctx context.Context) {
	raw, err := json.Marshal(s.state)
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithError(err).Error("store: не удалось сериализовать состояние")
		}
		return
	}
	if err := s.snaps.Save(ctx, raw); err != nil && logger.Log != nil {
		logger.Log.WithError(err).Warn("store: не удалось записать снимок, продолжаем в памяти")
	}
}

// AddLaborer добавляет рабочего. Идентификатор задаёт вызывающий; коллизии
// не проверяются.
func (s *Store) AddLaborer(ctx context.Context, l models.Laborer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Laborers = append(s.state.Laborers, l)
	s.persistLocked(ctx)
}

// AddContractor добавляет подрядчика.
func (s *Store) AddContractor(ctx context.Context, c models.Contractor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Contractors = append(s.state.Contractors, c)
	s.persistLocked(ctx)
}

// AddProject добавляет проект.
func (s *Store) AddProject(ctx context.Context, p models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Projects = append(s.state.Projects, p)
	s.persistLocked(ctx)
}

// AddHireRequest добавляет заявку на найм.
func (s *Store) AddHireRequest(ctx context.Context, r models.HireRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.HireRequests = append(s.state.HireRequests, r)
	s.persistLocked(ctx)
}

// AddReport добавляет жалобу.
func (s *Store) AddReport(ctx context.Context, r models.Report) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reports = append(s.state.Reports, r)
	s.persistLocked(ctx)
}

// UpdateHireRequest вливает заполненные поля в заявку с указанным id.
// Если заявка не найдена — молча ничего не делает. Терминальные статусы
// не защищаются: обновление применяется к declined и completed записям тоже.
func (s *Store) UpdateHireRequest(ctx context.Context, id string, upd models.HireRequestUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.HireRequests {
		if s.state.HireRequests[i].ID != id {
			continue
		}
		r := &s.state.HireRequests[i]
		if upd.Status != nil {
			r.Status = *upd.Status
		}
		if upd.PickupLocation != nil {
			r.PickupLocation = *upd.PickupLocation
		}
		if upd.DropoffLocation != nil {
			r.DropoffLocation = *upd.DropoffLocation
		}
		if upd.OfferedAmount != nil {
			r.OfferedAmount = *upd.OfferedAmount
		}
		if upd.CounterAmount != nil {
			amount := *upd.CounterAmount
			r.CounterAmount = &amount
		}
		if upd.ClearCounterAmount {
			r.CounterAmount = nil
		}
		if upd.JobCompleted != nil {
			r.JobCompleted = *upd.JobCompleted
		}
		s.persistLocked(ctx)
		return
	}
}

// UpdateProjectStatus меняет статус проекта. Молчаливый no-op, если проект
// не найден.
func (s *Store) UpdateProjectStatus(ctx context.Context, id, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Projects {
		if s.state.Projects[i].ID == id {
			s.state.Projects[i].Status = status
			s.persistLocked(ctx)
			return
		}
	}
}

// AddRating добавляет отзыв рабочему. Молчаливый no-op, если рабочий не найден.
func (s *Store) AddRating(ctx context.Context, laborerID string, rating models.Rating) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Laborers {
		if s.state.Laborers[i].ID == laborerID {
			s.state.Laborers[i].Ratings = append(s.state.Laborers[i].Ratings, rating)
			s.persistLocked(ctx)
			return
		}
	}
}

// AddContractorRating добавляет отзыв подрядчику. Молчаливый no-op, если
// подрядчик не найден.
func (s *Store) AddContractorRating(ctx context.Context, contractorID string, rating models.ContractorRating) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Contractors {
		if s.state.Contractors[i].ID == contractorID {
			s.state.Contractors[i].Ratings = append(s.state.Contractors[i].Ratings, rating)
			s.persistLocked(ctx)
			return
		}
	}
}

// SetRole устанавливает текущую сессию. Роль и пользователь меняются всегда
// вместе, по отдельности — никогда.
func (s *Store) SetRole(ctx context.Context, role, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentRole = &role
	s.state.CurrentUserID = &userID
	s.persistLocked(ctx)
}

// Logout сбрасывает сессию целиком.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.CurrentRole = nil
	s.state.CurrentUserID = nil
	s.persistLocked(ctx)
}

// Session возвращает текущую пару роль/пользователь. ok=false, если сессии нет.
func (s *Store) Session() (role, userID string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state.CurrentRole == nil || s.state.CurrentUserID == nil {
		return "", "", false
	}
	return *s.state.CurrentRole, *s.state.CurrentUserID, true
}
