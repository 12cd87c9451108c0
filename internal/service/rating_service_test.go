package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/pkg/apperror"
)

// completeJob доводит заявку между contractor-1 и laborer-1 до завершения.
func completeJob(t *testing.T, st interface {
	AddHireRequest(ctx context.Context, r models.HireRequest)
}) {
	t.Helper()
	st.AddHireRequest(context.Background(), models.HireRequest{
		ID:            "request-done",
		ProjectID:     "project-1",
		LaborerID:     "laborer-1",
		ContractorID:  "contractor-1",
		Status:        models.HireStatusCompleted,
		OfferedAmount: 2500,
		JobCompleted:  true,
	})
}

func TestRatingService_RateLaborer_Success(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	completeJob(t, st)
	svc := NewRatingService(st)

	rating, err := svc.RateLaborer(ctx, "contractor-1", "laborer-1", 5, "Отличная работа")

	assert.NoError(t, err)
	assert.Equal(t, "contractor-1", rating.ContractorID)
	assert.Equal(t, "Амит", rating.ContractorName)
	assert.Equal(t, 5, rating.Stars)

	avg, count, ok := svc.LaborerAverage("laborer-1")
	assert.True(t, ok)
	assert.Equal(t, 5.0, avg)
	assert.Equal(t, 1, count)
}

func TestRatingService_RateLaborer_WithoutCompletedJob(t *testing.T) {
	svc := NewRatingService(newTestStore())

	_, err := svc.RateLaborer(context.Background(), "contractor-1", "laborer-1", 5, "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "после завершения работы")
}

func TestRatingService_RateLaborer_StarsOutOfRange(t *testing.T) {
	svc := NewRatingService(newTestStore())

	_, err := svc.RateLaborer(context.Background(), "contractor-1", "laborer-1", 0, "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "от 1 до 5")

	_, err = svc.RateLaborer(context.Background(), "contractor-1", "laborer-1", 6, "")
	assert.Error(t, err)
}

func TestRatingService_RateLaborer_UnknownLaborer(t *testing.T) {
	svc := NewRatingService(newTestStore())

	_, err := svc.RateLaborer(context.Background(), "contractor-1", "laborer-missing", 4, "")
	assert.ErrorIs(t, err, apperror.ErrLaborerNotFound)
}

func TestRatingService_RateContractor_Success(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	completeJob(t, st)
	svc := NewRatingService(st)

	rating, err := svc.RateContractor(ctx, "laborer-1", "contractor-1", 4, "Платит вовремя")

	assert.NoError(t, err)
	assert.Equal(t, "laborer-1", rating.LaborerID)
	assert.Equal(t, "Раджеш", rating.LaborerName)

	avg, count, ok := svc.ContractorAverage("contractor-1")
	assert.True(t, ok)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 1, count)
}

func TestRatingService_Average_MultipleRatings(t *testing.T) {
	ctx := context.Background()
	st := newTestStore()
	completeJob(t, st)
	svc := NewRatingService(st)

	for _, stars := range []int{5, 4, 3} {
		_, err := svc.RateLaborer(ctx, "contractor-1", "laborer-1", stars, "")
		assert.NoError(t, err)
	}

	avg, count, ok := svc.LaborerAverage("laborer-1")
	assert.True(t, ok)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 3, count)
	assert.Equal(t, 4, RoundedStars(avg))
}

func TestRatingService_Average_NoRatings(t *testing.T) {
	svc := NewRatingService(newTestStore())

	// Отсутствие отзывов — не ноль звёзд, среднего просто нет.
	_, _, ok := svc.LaborerAverage("laborer-1")
	assert.False(t, ok)

	_, _, ok = svc.ContractorAverage("contractor-1")
	assert.False(t, ok)
}

func TestRatingService_Average_UnknownProfile(t *testing.T) {
	svc := NewRatingService(newTestStore())

	_, _, ok := svc.LaborerAverage("laborer-missing")
	assert.False(t, ok)
}

func TestAverage_Pure(t *testing.T) {
	avg, count, ok := Average([]int{5, 4, 3})
	assert.True(t, ok)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 3, count)

	_, _, ok = Average(nil)
	assert.False(t, ok)

	avg, _, ok = Average([]int{4, 5})
	assert.True(t, ok)
	assert.Equal(t, 4.5, avg)
	assert.Equal(t, 5, RoundedStars(avg))
}
