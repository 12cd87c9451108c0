package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirenow/hirenow-backend/internal/models"
)

func TestValidateName(t *testing.T) {
	assert.NoError(t, ValidateName("Раджеш Кумар"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("  "))
	assert.Error(t, ValidateName("А"))
	assert.Error(t, ValidateName(strings.Repeat("а", MaxNameLength+1)))
}

func TestValidatePhone(t *testing.T) {
	assert.NoError(t, ValidatePhone("+91 98000 00001"))
	assert.Error(t, ValidatePhone(""))
	assert.Error(t, ValidatePhone(strings.Repeat("9", MaxPhoneLength+1)))
}

func TestValidateSkills(t *testing.T) {
	assert.NoError(t, ValidateSkills([]models.Skill{
		{Name: "Plumbing", HourlyRate: 150},
		{Name: "Painting", HourlyRate: 0},
	}))

	assert.Error(t, ValidateSkills(nil))
	assert.Error(t, ValidateSkills([]models.Skill{{Name: "  ", HourlyRate: 100}}))
	assert.Error(t, ValidateSkills([]models.Skill{{Name: "Plumbing", HourlyRate: -1}}))
	assert.Error(t, ValidateSkills([]models.Skill{
		{Name: "Plumbing", HourlyRate: 100},
		{Name: "Plumbing", HourlyRate: 200},
	}))
}

func TestValidateAvailability(t *testing.T) {
	assert.NoError(t, ValidateAvailability(nil))
	assert.NoError(t, ValidateAvailability([]string{"monday", "sunday"}))
	assert.Error(t, ValidateAvailability([]string{"Monday"}))
	assert.Error(t, ValidateAvailability([]string{"monday", "monday"}))
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(2500))
	assert.NoError(t, ValidateAmount(0.01))
	assert.Error(t, ValidateAmount(0))
	assert.Error(t, ValidateAmount(-100))
	assert.Error(t, ValidateAmount(MaxAmount+1))
}

func TestValidateStars(t *testing.T) {
	for stars := MinStars; stars <= MaxStars; stars++ {
		assert.NoError(t, ValidateStars(stars))
	}
	assert.Error(t, ValidateStars(0))
	assert.Error(t, ValidateStars(6))
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Ремонт квартиры"))
	assert.Error(t, ValidateTitle("аб"))
	assert.Error(t, ValidateTitle(""))
}

func TestValidateComment(t *testing.T) {
	// Пустой комментарий допустим.
	assert.NoError(t, ValidateComment(""))
	assert.NoError(t, ValidateComment("Отличная работа"))
	assert.Error(t, ValidateComment(strings.Repeat("а", MaxCommentLength+1)))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(models.RoleLaborer))
	assert.NoError(t, ValidateRole(models.RoleContractor))
	assert.Error(t, ValidateRole("admin"))
	assert.Error(t, ValidateRole(""))
}
