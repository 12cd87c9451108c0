package models

// Rating — отзыв подрядчика о рабочем. Неизменяемое значение: имя подрядчика
// фиксируется на момент отзыва, записи только добавляются.
type Rating struct {
	ContractorID   string `json:"contractorId" yaml:"contractorId"`
	ContractorName string `json:"contractorName" yaml:"contractorName"`
	Stars          int    `json:"stars" yaml:"stars"`
	Comment        string `json:"comment" yaml:"comment"`
	Date           string `json:"date" yaml:"date"`
}

// ContractorRating — отзыв рабочего о подрядчике после завершения работы.
type ContractorRating struct {
	LaborerID   string `json:"laborerId" yaml:"laborerId"`
	LaborerName string `json:"laborerName" yaml:"laborerName"`
	Stars       int    `json:"stars" yaml:"stars"`
	Comment     string `json:"comment" yaml:"comment"`
	Date        string `json:"date" yaml:"date"`
}
