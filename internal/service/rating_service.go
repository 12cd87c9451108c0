package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/pkg/apperror"
	"github.com/hirenow/hirenow-backend/internal/store"
	"github.com/hirenow/hirenow-backend/internal/validation"
)

// RatingService добавляет отзывы и считает средний рейтинг. Средний рейтинг
// нигде не хранится — выводится из списка отзывов при каждом запросе.
type RatingService struct {
	store *store.Store
}

// NewRatingService создаёт сервис отзывов.
func NewRatingService(st *store.Store) *RatingService {
	return &RatingService{store: st}
}

// RateLaborer — подрядчик оставляет отзыв рабочему после завершённой работы.
func (s *RatingService) RateLaborer(ctx context.Context, contractorID, laborerID string, stars int, comment string) (models.Rating, error) {
	if err := validation.ValidateStars(stars); err != nil {
		return models.Rating{}, err
	}
	if err := validation.ValidateComment(comment); err != nil {
		return models.Rating{}, err
	}

	contractor, ok := s.store.ContractorByID(contractorID)
	if !ok {
		return models.Rating{}, apperror.ErrContractorNotFound
	}
	if _, ok := s.store.LaborerByID(laborerID); !ok {
		return models.Rating{}, apperror.ErrLaborerNotFound
	}
	if !s.hasCompletedJob(contractorID, laborerID) {
		return models.Rating{}, fmt.Errorf("отзыв можно оставить только после завершения работы")
	}

	rating := models.Rating{
		ContractorID:   contractorID,
		ContractorName: contractor.Name,
		Stars:          stars,
		Comment:        comment,
		Date:           time.Now().Format("2006-01-02"),
	}

	s.store.AddRating(ctx, laborerID, rating)
	return rating, nil
}

// RateContractor — рабочий оставляет отзыв подрядчику после завершённой работы.
func (s *RatingService) RateContractor(ctx context.Context, laborerID, contractorID string, stars int, comment string) (models.ContractorRating, error) {
	if err := validation.ValidateStars(stars); err != nil {
		return models.ContractorRating{}, err
	}
	if err := validation.ValidateComment(comment); err != nil {
		return models.ContractorRating{}, err
	}

	laborer, ok := s.store.LaborerByID(laborerID)
	if !ok {
		return models.ContractorRating{}, apperror.ErrLaborerNotFound
	}
	if _, ok := s.store.ContractorByID(contractorID); !ok {
		return models.ContractorRating{}, apperror.ErrContractorNotFound
	}
	if !s.hasCompletedJob(contractorID, laborerID) {
		return models.ContractorRating{}, fmt.Errorf("отзыв можно оставить только после завершения работы")
	}

	rating := models.ContractorRating{
		LaborerID:   laborerID,
		LaborerName: laborer.Name,
		Stars:       stars,
		Comment:     comment,
		Date:        time.Now().Format("2006-01-02"),
	}

	s.store.AddContractorRating(ctx, contractorID, rating)
	return rating, nil
}

// hasCompletedJob проверяет, была ли у пары завершённая работа.
func (s *RatingService) hasCompletedJob(contractorID, laborerID string) bool {
	for _, r := range s.store.HireRequests() {
		if r.ContractorID == contractorID && r.LaborerID == laborerID && r.JobCompleted {
			return true
		}
	}
	return false
}

// LaborerAverage возвращает средний рейтинг рабочего.
// ok=false, если отзывов нет — средний рейтинг тогда не показывается вовсе.
func (s *RatingService) LaborerAverage(laborerID string) (avg float64, count int, ok bool) {
	laborer, found := s.store.LaborerByID(laborerID)
	if !found {
		return 0, 0, false
	}
	stars := make([]int, 0, len(laborer.Ratings))
	for _, r := range laborer.Ratings {
		stars = append(stars, r.Stars)
	}
	return Average(stars)
}

// ContractorAverage возвращает средний рейтинг подрядчика.
func (s *RatingService) ContractorAverage(contractorID string) (avg float64, count int, ok bool) {
	contractor, found := s.store.ContractorByID(contractorID)
	if !found {
		return 0, 0, false
	}
	stars := make([]int, 0, len(contractor.Ratings))
	for _, r := range contractor.Ratings {
		stars = append(stars, r.Stars)
	}
	return Average(stars)
}

// Average считает среднее по списку звёзд. Пустой список — рейтинга нет,
// это не то же самое, что ноль звёзд.
func Average(stars []int) (avg float64, count int, ok bool) {
	if len(stars) == 0 {
		return 0, 0, false
	}
	sum := 0
	for _, s := range stars {
		sum += s
	}
	return float64(sum) / float64(len(stars)), len(stars), true
}

// RoundedStars округляет средний рейтинг до целого для отображения звёздами.
func RoundedStars(avg float64) int {
	return int(math.Round(avg))
}
