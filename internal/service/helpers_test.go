package service

import (
	"context"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/seed"
	"github.com/hirenow/hirenow-backend/internal/store"
)

// memorySnapshots — снапшоттер в памяти для тестов сервисов.
type memorySnapshots struct {
	payload []byte
}

func (m *memorySnapshots) Load(ctx context.Context) ([]byte, error) {
	if m.payload == nil {
		return nil, nil
	}
	return m.payload, nil
}

func (m *memorySnapshots) Save(ctx context.Context, payload []byte) error {
	m.payload = append([]byte(nil), payload...)
	return nil
}

// recordingPublisher собирает отправленные события.
type recordingPublisher struct {
	events []publishedEvent
}

type publishedEvent struct {
	userID string
	event  string
}

func (p *recordingPublisher) Notify(userID, event string, data any) {
	p.events = append(p.events, publishedEvent{userID: userID, event: event})
}

func testDataset() *seed.Dataset {
	return &seed.Dataset{
		Laborers: []models.Laborer{
			{
				ID:       "laborer-1",
				Name:     "Раджеш",
				Phone:    "+91 98000 00001",
				Location: "Mumbai",
				Skills: []models.Skill{
					{Name: "Plumbing", HourlyRate: 150},
					{Name: "Painting", HourlyRate: 120},
				},
				Availability: []string{"monday", "tuesday", "wednesday"},
				Ratings:      []models.Rating{},
			},
			{
				ID:       "laborer-2",
				Name:     "Суреш",
				Phone:    "+91 98000 00002",
				Location: "Pune",
				Skills: []models.Skill{
					{Name: "Carpentry", HourlyRate: 200},
				},
				Availability: []string{"saturday", "sunday"},
				Ratings:      []models.Rating{},
			},
			{
				ID:           "laborer-3",
				Name:         "Викрам",
				Phone:        "+91 98000 00003",
				Location:     "Mumbai",
				Skills:       []models.Skill{},
				Availability: []string{"monday"},
				Ratings:      []models.Rating{},
			},
		},
		Contractors: []models.Contractor{
			{ID: "contractor-1", Name: "Амит", Phone: "+91 99000 00001", Company: "BuildCo", Location: "Mumbai", Ratings: []models.ContractorRating{}},
			{ID: "contractor-2", Name: "Прия", Phone: "+91 99000 00002", Company: "HomeFix", Location: "Pune", Ratings: []models.ContractorRating{}},
		},
		Projects: []models.Project{
			{ID: "project-1", ContractorID: "contractor-1", Title: "Ремонт квартиры", Description: "Полный ремонт", Location: "Mumbai", Status: models.ProjectStatusActive},
			{ID: "project-2", ContractorID: "contractor-2", Title: "Покраска офиса", Description: "Стены и потолок", Location: "Pune", Status: models.ProjectStatusActive},
		},
		HireRequests: []models.HireRequest{},
	}
}

func newTestStore() *store.Store {
	st := store.New(&memorySnapshots{}, testDataset())
	st.Hydrate(context.Background())
	return st
}
