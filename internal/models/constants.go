package models

// Role константы ролей участников
const (
	RoleLaborer    = "laborer"
	RoleContractor = "contractor"
)

// HireRequestStatus константы статусов заявки на найм
const (
	HireStatusPending     = "pending"
	HireStatusAccepted    = "accepted"
	HireStatusDeclined    = "declined"
	HireStatusNegotiating = "negotiating"
	HireStatusCompleted   = "completed"
)

// ProjectStatus константы статусов проекта
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
)

// ReportTarget константы типов цели жалобы
const (
	ReportTargetLaborer    = "laborer"
	ReportTargetContractor = "contractor"
)

// ValidRoles список валидных ролей
var ValidRoles = map[string]struct{}{
	RoleLaborer:    {},
	RoleContractor: {},
}

// ValidHireStatuses список валидных статусов заявки
var ValidHireStatuses = map[string]struct{}{
	HireStatusPending:     {},
	HireStatusAccepted:    {},
	HireStatusDeclined:    {},
	HireStatusNegotiating: {},
	HireStatusCompleted:   {},
}

// ValidProjectStatuses список валидных статусов проекта
var ValidProjectStatuses = map[string]struct{}{
	ProjectStatusActive:    {},
	ProjectStatusCompleted: {},
}

// Weekdays дни недели в порядке отображения; доступность рабочего — их подмножество.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// ValidWeekdays список валидных дней недели
var ValidWeekdays = map[string]struct{}{
	"monday":    {},
	"tuesday":   {},
	"wednesday": {},
	"thursday":  {},
	"friday":    {},
	"saturday":  {},
	"sunday":    {},
}
