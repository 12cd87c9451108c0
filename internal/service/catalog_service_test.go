package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirenow/hirenow-backend/internal/models"
)

func laborerIDs(list []models.Laborer) []string {
	ids := make([]string, 0, len(list))
	for _, l := range list {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestCatalogService_Search_NoFilters(t *testing.T) {
	svc := NewCatalogService(newTestStore())

	// Без фильтров — весь каталог по возрастанию минимальной ставки.
	// laborer-3 без навыков сортируется как ставка 0.
	result := svc.Search(CatalogFilter{Sort: SortAsc})
	assert.Equal(t, []string{"laborer-3", "laborer-1", "laborer-2"}, laborerIDs(result))
}

func TestCatalogService_Search_SortDesc(t *testing.T) {
	svc := NewCatalogService(newTestStore())

	result := svc.Search(CatalogFilter{Sort: SortDesc})
	assert.Equal(t, []string{"laborer-2", "laborer-1", "laborer-3"}, laborerIDs(result))
}

func TestCatalogService_Search_FilterBySkill(t *testing.T) {
	svc := NewCatalogService(newTestStore())

	result := svc.Search(CatalogFilter{Skill: "Plumbing"})
	assert.Equal(t, []string{"laborer-1"}, laborerIDs(result))

	// Совпадение точное, подстроки не считаются.
	assert.Empty(t, svc.Search(CatalogFilter{Skill: "Plumb"}))
}

func TestCatalogService_Search_FilterByLocation(t *testing.T) {
	svc := NewCatalogService(newTestStore())

	result := svc.Search(CatalogFilter{Location: "Mumbai", Sort: SortAsc})
	assert.Equal(t, []string{"laborer-3", "laborer-1"}, laborerIDs(result))
}

func TestCatalogService_Search_FilterByDay(t *testing.T) {
	svc := NewCatalogService(newTestStore())

	result := svc.Search(CatalogFilter{Day: "saturday"})
	assert.Equal(t, []string{"laborer-2"}, laborerIDs(result))
}

func TestCatalogService_Search_CombinedFilters(t *testing.T) {
	svc := NewCatalogService(newTestStore())

	result := svc.Search(CatalogFilter{Skill: "Plumbing", Location: "Mumbai", Day: "monday"})
	assert.Equal(t, []string{"laborer-1"}, laborerIDs(result))

	// Фильтры независимы: несовместимая комбинация даёт пустую выборку.
	assert.Empty(t, svc.Search(CatalogFilter{Skill: "Plumbing", Location: "Pune"}))
}

func TestCatalogService_Search_StableSortOnEqualRates(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	st.AddLaborer(ctx, models.Laborer{
		ID:       "laborer-4",
		Name:     "Арджун",
		Location: "Delhi",
		Skills:   []models.Skill{{Name: "Painting", HourlyRate: 120}},
	})
	svc := NewCatalogService(st)

	// laborer-1 и laborer-4 имеют одинаковую минимальную ставку 120;
	// порядок добавления сохраняется.
	result := svc.Search(CatalogFilter{Sort: SortAsc})
	assert.Equal(t, []string{"laborer-3", "laborer-1", "laborer-4", "laborer-2"}, laborerIDs(result))
}

func TestCatalogService_Options(t *testing.T) {
	svc := NewCatalogService(newTestStore())

	assert.Equal(t, []string{"Carpentry", "Painting", "Plumbing"}, svc.SkillOptions())
	assert.Equal(t, []string{"Mumbai", "Pune"}, svc.LocationOptions())
}
