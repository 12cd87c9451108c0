package store

import "github.com/hirenow/hirenow-backend/internal/models"

// Методы чтения возвращают копии срезов в порядке добавления: порядок
// вставки — это порядок отображения.

// Laborers возвращает всех рабочих.
func (s *Store) Laborers() []models.Laborer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Laborer(nil), s.state.Laborers...)
}

// Contractors возвращает всех подрядчиков.
func (s *Store) Contractors() []models.Contractor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Contractor(nil), s.state.Contractors...)
}

// Projects возвращает все проекты.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project(nil), s.state.Projects...)
}

// HireRequests возвращает все заявки на найм.
func (s *Store) HireRequests() []models.HireRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.HireRequest(nil), s.state.HireRequests...)
}

// Reports возвращает все жалобы.
func (s *Store) Reports() []models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Report(nil), s.state.Reports...)
}

// LaborerByID находит рабочего линейным проходом по коллекции.
func (s *Store) LaborerByID(id string) (models.Laborer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.state.Laborers {
		if l.ID == id {
			return l, true
		}
	}
	return models.Laborer{}, false
}

// ContractorByID находит подрядчика.
func (s *Store) ContractorByID(id string) (models.Contractor, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.state.Contractors {
		if c.ID == id {
			return c, true
		}
	}
	return models.Contractor{}, false
}

// ProjectByID находит проект.
func (s *Store) ProjectByID(id string) (models.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.state.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// HireRequestByID находит заявку.
func (s *Store) HireRequestByID(id string) (models.HireRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.state.HireRequests {
		if r.ID == id {
			return r, true
		}
	}
	return models.HireRequest{}, false
}
