package dto

import "time"

// CreateAppointmentRequest entrada para criar um compromisso. AppointmentDate é ISO-8601 obrigatório.
type CreateAppointmentRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	ClientID        *int64 `json:"clientId"`
	ClientName      string `json:"clientName"`
	Representative  string `json:"representative"`
	AppointmentDate string `json:"appointmentDate"`
	Duration        *int   `json:"duration"`
	Location        string `json:"location"`
	Type            string `json:"type"`
	Status          string `json:"status"`
}

// UpdateAppointmentRequest entrada para atualizar um compromisso (somente campos presentes mudam).
type UpdateAppointmentRequest struct {
	Title           *string `json:"title"`
	Description     *string `json:"description"`
	ClientID        *int64  `json:"clientId"`
	ClientName      *string `json:"clientName"`
	Representative  *string `json:"representative"`
	AppointmentDate *string `json:"appointmentDate"`
	Duration        *int    `json:"duration"`
	Location        *string `json:"location"`
	Type            *string `json:"type"`
	Status          *string `json:"status"`
}

// AppointmentResponse saída de um compromisso.
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ClientID        *int64    `json:"clientId"`
	ClientName      string    `json:"clientName"`
	Representative  string    `json:"representative"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Duration        int       `json:"duration"`
	Location        string    `json:"location"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AppointmentStatsResponse estatísticas de compromissos.
type AppointmentStatsResponse struct {
	TotalAppointments     int64   `json:"totalAppointments"`
	ScheduledAppointments int64   `json:"scheduledAppointments"`
	CompletedAppointments int64   `json:"completedAppointments"`
	CancelledAppointments int64   `json:"cancelledAppointments"`
	TodayAppointments     int64   `json:"todayAppointments"`
	WeekAppointments      int64   `json:"weekAppointments"`
	CompletionRate        float64 `json:"completionRate"` // concluídos/total × 100
}
