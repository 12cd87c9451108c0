package models

// HireRequest описывает предложение о найме: один подрядчик нанимает одного
// рабочего на один проект на конкретную дату. Запись никогда не удаляется.
// CounterAmount присутствует только во время торга (nil — нет встречного
// предложения); очистка поля — обязанность перехода, который завершает торг.
type HireRequest struct {
	ID              string   `json:"id" yaml:"id"`
	ProjectID       string   `json:"projectId" yaml:"projectId"`
	LaborerID       string   `json:"laborerId" yaml:"laborerId"`
	ContractorID    string   `json:"contractorId" yaml:"contractorId"`
	Date            string   `json:"date" yaml:"date"`
	Status          string   `json:"status" yaml:"status"`
	PickupLocation  string   `json:"pickupLocation" yaml:"pickupLocation"`
	DropoffLocation string   `json:"dropoffLocation" yaml:"dropoffLocation"`
	OfferedAmount   float64  `json:"offeredAmount" yaml:"offeredAmount"`
	CounterAmount   *float64 `json:"counterAmount,omitempty" yaml:"counterAmount,omitempty"`
	JobCompleted    bool     `json:"jobCompleted" yaml:"jobCompleted"`
}

// HireRequestUpdate содержит частичное обновление заявки. Заполненные поля
// перезаписывают текущие значения, nil-поля не трогаются. Повторное применение
// одного и того же обновления безвредно — это перезапись полей, а не дельта.
type HireRequestUpdate struct {
	Status             *string
	PickupLocation     *string
	DropoffLocation    *string
	OfferedAmount      *float64
	CounterAmount      *float64
	ClearCounterAmount bool
	JobCompleted       *bool
}
