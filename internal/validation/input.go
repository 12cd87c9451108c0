package validation

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hirenow/hirenow-backend/internal/models"
)

// Константы валидации
const (
	MinNameLength        = 2
	MaxNameLength        = 100
	MaxPhoneLength       = 20
	MaxLocationLength    = 100
	MaxSkillNameLength   = 50
	MaxSkillsCount       = 50
	MaxTitleLength       = 200
	MinTitleLength       = 3
	MaxDescriptionLength = 5000
	MaxCommentLength     = 1000
	MinHourlyRate        = 0.0
	MaxHourlyRate        = 100000.0
	MinAmount            = 0.0
	MaxAmount            = 100000000.0 // 100 миллионов
	MinStars             = 1
	MaxStars             = 5
)

// ValidateLength проверяет длину строки.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s должен быть не менее %d символов", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s должен быть не более %d символов", fieldName, max)
	}
	return nil
}

// ValidateNonEmpty проверяет, что строка не пустая.
func ValidateNonEmpty(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s не может быть пустым", fieldName)
	}
	return nil
}

// ValidateName проверяет имя участника.
func ValidateName(name string) error {
	if err := ValidateNonEmpty("имя", name); err != nil {
		return err
	}
	return ValidateLength("имя", strings.TrimSpace(name), MinNameLength, MaxNameLength)
}

// ValidatePhone проверяет номер телефона. Формат свободный, но пустой
// номер не принимается.
func ValidatePhone(phone string) error {
	if err := ValidateNonEmpty("телефон", phone); err != nil {
		return err
	}
	return ValidateLength("телефон", strings.TrimSpace(phone), 0, MaxPhoneLength)
}

// ValidateLocation проверяет местоположение.
func ValidateLocation(location string) error {
	if err := ValidateNonEmpty("местоположение", location); err != nil {
		return err
	}
	return ValidateLength("местоположение", strings.TrimSpace(location), 0, MaxLocationLength)
}

// ValidateSkills проверяет список навыков: имена уникальны, ставки не
// отрицательны. Порядок навыков сохраняется как есть.
func ValidateSkills(skills []models.Skill) error {
	if len(skills) == 0 {
		return fmt.Errorf("нужен хотя бы один навык")
	}
	if len(skills) > MaxSkillsCount {
		return fmt.Errorf("количество навыков не может превышать %d", MaxSkillsCount)
	}

	seen := make(map[string]bool)
	for _, skill := range skills {
		name := strings.TrimSpace(skill.Name)
		if name == "" {
			return fmt.Errorf("навык не может быть пустым")
		}
		if utf8.RuneCountInString(name) > MaxSkillNameLength {
			return fmt.Errorf("навык не может быть длиннее %d символов", MaxSkillNameLength)
		}
		if seen[name] {
			return fmt.Errorf("навык '%s' указан дважды", name)
		}
		seen[name] = true

		if skill.HourlyRate < MinHourlyRate {
			return fmt.Errorf("почасовая ставка не может быть отрицательной")
		}
		if skill.HourlyRate > MaxHourlyRate {
			return fmt.Errorf("почасовая ставка не может превышать %.0f", MaxHourlyRate)
		}
	}

	return nil
}

// ValidateAvailability проверяет, что дни доступности — подмножество дней недели.
func ValidateAvailability(days []string) error {
	seen := make(map[string]bool)
	for _, day := range days {
		if _, ok := models.ValidWeekdays[day]; !ok {
			return fmt.Errorf("неизвестный день недели '%s'", day)
		}
		if seen[day] {
			return fmt.Errorf("день '%s' указан дважды", day)
		}
		seen[day] = true
	}
	return nil
}

// ValidateAmount проверяет сумму оплаты.
func ValidateAmount(amount float64) error {
	if amount <= MinAmount {
		return fmt.Errorf("сумма должна быть положительной")
	}
	if amount > MaxAmount {
		return fmt.Errorf("сумма не может превышать %.0f", MaxAmount)
	}
	return nil
}

// ValidateStars проверяет количество звёзд в отзыве.
func ValidateStars(stars int) error {
	if stars < MinStars || stars > MaxStars {
		return fmt.Errorf("рейтинг должен быть от %d до %d", MinStars, MaxStars)
	}
	return nil
}

// ValidateTitle проверяет заголовок проекта.
func ValidateTitle(title string) error {
	if err := ValidateNonEmpty("заголовок", title); err != nil {
		return err
	}
	return ValidateLength("заголовок", strings.TrimSpace(title), MinTitleLength, MaxTitleLength)
}

// ValidateDescription проверяет описание.
func ValidateDescription(description string) error {
	if err := ValidateNonEmpty("описание", description); err != nil {
		return err
	}
	return ValidateLength("описание", strings.TrimSpace(description), 0, MaxDescriptionLength)
}

// ValidateComment проверяет комментарий отзыва. Пустой комментарий допустим.
func ValidateComment(comment string) error {
	return ValidateLength("комментарий", comment, 0, MaxCommentLength)
}

// ValidateRole проверяет роль участника.
func ValidateRole(role string) error {
	if _, ok := models.ValidRoles[role]; !ok {
		return fmt.Errorf("неизвестная роль '%s'", role)
	}
	return nil
}
