package models

// Project описывает проект подрядчика, под который нанимаются рабочие.
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	ContractorID string   `json:"contractorId" yaml:"contractorId"`
	Title        string   `json:"title" yaml:"title"`
	Description  string   `json:"description" yaml:"description"`
	Location     string   `json:"location" yaml:"location"`
	PhotoURLs    []string `json:"photoUrls" yaml:"photoUrls"`
	StartDate    string   `json:"startDate" yaml:"startDate"`
	EndDate      string   `json:"endDate" yaml:"endDate"`
	Status       string   `json:"status" yaml:"status"`
}
