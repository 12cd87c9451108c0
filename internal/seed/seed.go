package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/hirenow/hirenow-backend/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// Dataset — стартовый набор данных, используемый когда сохранённого
// состояния ещё нет.
type Dataset struct {
	Laborers     []models.Laborer     `yaml:"laborers"`
	Contractors  []models.Contractor  `yaml:"contractors"`
	Projects     []models.Project     `yaml:"projects"`
	HireRequests []models.HireRequest `yaml:"hireRequests"`
}

// Load разбирает встроенный YAML с сид-данными.
func Load() (*Dataset, error) {
	var ds Dataset
	if err := yaml.Unmarshal(seedYAML, &ds); err != nil {
		return nil, fmt.Errorf("seed: не удалось разобрать встроенные данные: %w", err)
	}
	return &ds, nil
}

// MustLoad возвращает сид-данные или паникует. Файл встроен в бинарь,
// ошибка разбора возможна только при сломанной сборке.
func MustLoad() *Dataset {
	ds, err := Load()
	if err != nil {
		panic(err)
	}
	return ds
}
