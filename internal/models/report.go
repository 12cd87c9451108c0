package models

// Report — жалоба участника на другую сторону в рамках проекта.
type Report struct {
	ID           string `json:"id" yaml:"id"`
	ReporterID   string `json:"reporterId" yaml:"reporterId"`
	ReporterRole string `json:"reporterRole" yaml:"reporterRole"`
	ProjectID    string `json:"projectId" yaml:"projectId"`
	Description  string `json:"description" yaml:"description"`
	Rating       int    `json:"rating" yaml:"rating"`
	TargetType   string `json:"targetType" yaml:"targetType"`
	Date         string `json:"date" yaml:"date"`
}
