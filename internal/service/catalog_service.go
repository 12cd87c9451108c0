package service

import (
	"sort"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/store"
)

// Порядок сортировки каталога по минимальной ставке.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// CatalogFilter — критерии выборки каталога. Пустое поле означает
// «фильтр не применяется». Фильтры независимы, порядок применения
// на результат не влияет.
type CatalogFilter struct {
	Skill    string
	Location string
	Day      string
	Sort     string
}

// CatalogService строит отфильтрованное и отсортированное представление
// каталога рабочих. Чистая производная: ничего не кэшируется, выборка
// пересчитывается на каждый запрос.
type CatalogService struct {
	store *store.Store
}

// NewCatalogService создаёт сервис каталога.
func NewCatalogService(st *store.Store) *CatalogService {
	return &CatalogService{store: st}
}

// Search применяет фильтры и сортирует по минимальной почасовой ставке.
// Сортировка стабильная: при равных ставках сохраняется порядок добавления.
func (s *CatalogService) Search(filter CatalogFilter) []models.Laborer {
	list := s.store.Laborers()

	filtered := list[:0]
	for _, l := range list {
		if filter.Skill != "" && !l.HasSkill(filter.Skill) {
			continue
		}
		if filter.Location != "" && l.Location != filter.Location {
			continue
		}
		if filter.Day != "" && !l.AvailableOn(filter.Day) {
			continue
		}
		filtered = append(filtered, l)
	}

	desc := filter.Sort == SortDesc
	sort.SliceStable(filtered, func(i, j int) bool {
		a, b := filtered[i].MinHourlyRate(), filtered[j].MinHourlyRate()
		if desc {
			return a > b
		}
		return a < b
	})

	return filtered
}

// SkillOptions возвращает отсортированный список уникальных навыков каталога.
func (s *CatalogService) SkillOptions() []string {
	set := make(map[string]struct{})
	for _, l := range s.store.Laborers() {
		for _, skill := range l.Skills {
			set[skill.Name] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// LocationOptions возвращает отсортированный список уникальных городов.
func (s *CatalogService) LocationOptions() []string {
	set := make(map[string]struct{})
	for _, l := range s.store.Laborers() {
		set[l.Location] = struct{}{}
	}
	return sortedKeys(set)
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
