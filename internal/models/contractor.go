package models

// Contractor описывает профиль подрядчика — сторона спроса на площадке.
// После регистрации профиль не меняется, кроме добавления отзывов.
type Contractor struct {
	ID       string             `json:"id" yaml:"id"`
	Name     string             `json:"name" yaml:"name"`
	Phone    string             `json:"phone" yaml:"phone"`
	Company  string             `json:"company" yaml:"company"`
	Location string             `json:"location" yaml:"location"`
	Ratings  []ContractorRating `json:"ratings" yaml:"ratings"`
}
