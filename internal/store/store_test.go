package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/seed"
)

type mockSnapshotter struct {
	mock.Mock
}

func (m *mockSnapshotter) Load(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *mockSnapshotter) Save(ctx context.Context, payload []byte) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// memorySnapshots — снапшоттер в памяти для сквозных сценариев.
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

func testSeed() *seed.Dataset {
	return &seed.Dataset{
		Laborers: []models.Laborer{
			{ID: "laborer-1", Name: "Раджеш", Location: "Mumbai", Skills: []models.Skill{{Name: "Plumbing", HourlyRate: 150}}},
		},
		Contractors: []models.Contractor{
			{ID: "contractor-1", Name: "Амит", Company: "BuildCo", Location: "Mumbai"},
		},
		Projects: []models.Project{
			{ID: "project-1", ContractorID: "contractor-1", Title: "Ремонт", Status: models.ProjectStatusActive},
		},
		HireRequests: []models.HireRequest{
			{ID: "request-1", ProjectID: "project-1", LaborerID: "laborer-1", ContractorID: "contractor-1", Status: models.HireStatusPending, OfferedAmount: 2500},
		},
	}
}

func TestStore_Hydrate_NoSnapshotFallsBackToSeed(t *testing.T) {
	snaps := new(mockSnapshotter)
	snaps.On("Load", mock.Anything).Return(nil, nil)

	st := New(snaps, testSeed())
	st.Hydrate(context.Background())

	assert.True(t, st.Hydrated())
	assert.Len(t, st.Laborers(), 1)
	assert.Len(t, st.Contractors(), 1)
	assert.Len(t, st.Projects(), 1)
	assert.Len(t, st.HireRequests(), 1)

	_, _, ok := st.Session()
	assert.False(t, ok)
}

func TestStore_Hydrate_CorruptSnapshotFallsBackToSeed(t *testing.T) {
	snaps := new(mockSnapshotter)
	snaps.On("Load", mock.Anything).Return([]byte("{not json"), nil)

	st := New(snaps, testSeed())
	st.Hydrate(context.Background())

	assert.True(t, st.Hydrated())
	laborers := st.Laborers()
	assert.Len(t, laborers, 1)
	assert.Equal(t, "laborer-1", laborers[0].ID)
}

func TestStore_Hydrate_LoadErrorFallsBackToSeed(t *testing.T) {
	snaps := new(mockSnapshotter)
	snaps.On("Load", mock.Anything).Return(nil, assert.AnError)

	st := New(snaps, testSeed())
	st.Hydrate(context.Background())

	assert.True(t, st.Hydrated())
	assert.Len(t, st.Laborers(), 1)
}

func TestStore_SnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	snaps := &memorySnapshots{}

	first := New(snaps, testSeed())
	first.Hydrate(ctx)
	first.AddLaborer(ctx, models.Laborer{ID: "laborer-2", Name: "Суреш", Location: "Pune"})
	first.SetRole(ctx, models.RoleContractor, "contractor-1")

	// Новый экземпляр поверх того же снапшоттера видит сохранённое состояние.
	second := New(snaps, testSeed())
	second.Hydrate(ctx)

	assert.Len(t, second.Laborers(), 2)
	role, userID, ok := second.Session()
	assert.True(t, ok)
	assert.Equal(t, models.RoleContractor, role)
	assert.Equal(t, "contractor-1", userID)
}

func TestStore_SaveErrorDoesNotBreakMutation(t *testing.T) {
	ctx := context.Background()
	snaps := new(mockSnapshotter)
	snaps.On("Load", mock.Anything).Return(nil, nil)
	snaps.On("Save", mock.Anything, mock.Anything).Return(assert.AnError)

	st := New(snaps, testSeed())
	st.Hydrate(ctx)
	st.AddLaborer(ctx, models.Laborer{ID: "laborer-2", Name: "Суреш"})

	// Память остаётся авторитетной даже когда запись снимка падает.
	assert.Len(t, st.Laborers(), 2)
}

func TestStore_UpdateHireRequest_MergesOnlyFilledFields(t *testing.T) {
	ctx := context.Background()
	st := New(&memorySnapshots{}, testSeed())
	st.Hydrate(ctx)

	status := models.HireStatusNegotiating
	counter := 3000.0
	st.UpdateHireRequest(ctx, "request-1", models.HireRequestUpdate{
		Status:        &status,
		CounterAmount: &counter,
	})

	req, ok := st.HireRequestByID("request-1")
	assert.True(t, ok)
	assert.Equal(t, models.HireStatusNegotiating, req.Status)
	assert.NotNil(t, req.CounterAmount)
	assert.Equal(t, 3000.0, *req.CounterAmount)
	// Незаполненные поля не тронуты.
	assert.Equal(t, 2500.0, req.OfferedAmount)
	assert.Equal(t, "project-1", req.ProjectID)
}

func TestStore_UpdateHireRequest_ClearCounterAmount(t *testing.T) {
	ctx := context.Background()
	st := New(&memorySnapshots{}, testSeed())
	st.Hydrate(ctx)

	counter := 3000.0
	st.UpdateHireRequest(ctx, "request-1", models.HireRequestUpdate{CounterAmount: &counter})
	st.UpdateHireRequest(ctx, "request-1", models.HireRequestUpdate{ClearCounterAmount: true})

	req, _ := st.HireRequestByID("request-1")
	assert.Nil(t, req.CounterAmount)
}

func TestStore_UpdateHireRequest_Idempotent(t *testing.T) {
	ctx := context.Background()
	st := New(&memorySnapshots{}, testSeed())
	st.Hydrate(ctx)

	status := models.HireStatusAccepted
	upd := models.HireRequestUpdate{Status: &status}
	st.UpdateHireRequest(ctx, "request-1", upd)
	st.UpdateHireRequest(ctx, "request-1", upd)

	req, _ := st.HireRequestByID("request-1")
	assert.Equal(t, models.HireStatusAccepted, req.Status)
	assert.Len(t, st.HireRequests(), 1)
}

func TestStore_UpdateHireRequest_UnknownIDIsNoOp(t *testing.T) {
	ctx := context.Background()
	st := New(&memorySnapshots{}, testSeed())
	st.Hydrate(ctx)

	status := models.HireStatusAccepted
	st.UpdateHireRequest(ctx, "request-missing", models.HireRequestUpdate{Status: &status})

	req, _ := st.HireRequestByID("request-1")
	assert.Equal(t, models.HireStatusPending, req.Status)
}

func TestStore_UpdateHireRequest_TerminalStatusNotGuarded(t *testing.T) {
	ctx := context.Background()
	st := New(&memorySnapshots{}, testSeed())
	st.Hydrate(ctx)

	declined := models.HireStatusDeclined
	st.UpdateHireRequest(ctx, "request-1", models.HireRequestUpdate{Status: &declined})

	// Хранилище применяет обновление и к терминальной записи.
	accepted := models.HireStatusAccepted
	st.UpdateHireRequest(ctx, "request-1", models.HireRequestUpdate{Status: &accepted})

	req, _ := st.HireRequestByID("request-1")
	assert.Equal(t, models.HireStatusAccepted, req.Status)
}

func TestStore_AddRating_UnknownLaborerIsNoOp(t *testing.T) {
	ctx := context.Background()
	st := New(&memorySnapshots{}, testSeed())
	st.Hydrate(ctx)

	st.AddRating(ctx, "laborer-missing", models.Rating{Stars: 5})

	laborer, _ := st.LaborerByID("laborer-1")
	assert.Empty(t, laborer.Ratings)
}

func TestStore_SetRoleAndLogout(t *testing.T) {
	ctx := context.Background()
	st := New(&memorySnapshots{}, testSeed())
	st.Hydrate(ctx)

	st.SetRole(ctx, models.RoleLaborer, "laborer-1")
	role, userID, ok := st.Session()
	assert.True(t, ok)
	assert.Equal(t, models.RoleLaborer, role)
	assert.Equal(t, "laborer-1", userID)

	st.Logout(ctx)
	_, _, ok = st.Session()
	assert.False(t, ok)
}

func TestStore_ReadsPreserveInsertionOrder(t *testing.T) {
	ctx := context.Background()
	st := New(&memorySnapshots{}, testSeed())
	st.Hydrate(ctx)

	st.AddLaborer(ctx, models.Laborer{ID: "laborer-2", Name: "Суреш"})
	st.AddLaborer(ctx, models.Laborer{ID: "laborer-3", Name: "Викрам"})

	laborers := st.Laborers()
	assert.Equal(t, []string{"laborer-1", "laborer-2", "laborer-3"}, []string{laborers[0].ID, laborers[1].ID, laborers[2].ID})
}
