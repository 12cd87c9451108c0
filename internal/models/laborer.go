package models

// Skill описывает навык рабочего с почасовой ставкой.
type Skill struct {
	Name       string  `json:"name" yaml:"name"`
	HourlyRate float64 `json:"hourlyRate" yaml:"hourlyRate"`
}

// Laborer описывает профиль рабочего — сторона предложения на площадке.
// Навыки хранятся в порядке добавления, имена навыков уникальны внутри профиля.
type Laborer struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Phone        string   `json:"phone" yaml:"phone"`
	Location     string   `json:"location" yaml:"location"`
	Skills       []Skill  `json:"skills" yaml:"skills"`
	Availability []string `json:"availability" yaml:"availability"`
	PhotoURLs    []string `json:"photoUrls" yaml:"photoUrls"`
	Ratings      []Rating `json:"ratings" yaml:"ratings"`
	CanDrive     bool     `json:"canDrive" yaml:"canDrive"`
}

// MinHourlyRate возвращает минимальную ставку среди навыков рабочего.
// Рабочий без навыков сортируется как ставка 0.
func (l *Laborer) MinHourlyRate() float64 {
	if len(l.Skills) == 0 {
		return 0
	}
	min := l.Skills[0].HourlyRate
	for _, s := range l.Skills[1:] {
		if s.HourlyRate < min {
			min = s.HourlyRate
		}
	}
	return min
}

// HasSkill проверяет наличие навыка по точному совпадению имени.
func (l *Laborer) HasSkill(name string) bool {
	for _, s := range l.Skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

// AvailableOn проверяет, доступен ли рабочий в указанный день недели.
func (l *Laborer) AvailableOn(day string) bool {
	for _, d := range l.Availability {
		if d == day {
			return true
		}
	}
	return false
}
