package entity

import "time"

// Status válidos para Appointment.
const (
	AppointmentStatusAgendado   = "Agendado"
	AppointmentStatusConcluido  = "Concluído"
	AppointmentStatusCancelado  = "Cancelado"
	AppointmentStatusReagendado = "Reagendado"
)

// Tipos de compromisso.
const (
	AppointmentTypeReuniao      = "Reunião"
	AppointmentTypeLigacao      = "Ligação"
	AppointmentTypeVisita       = "Visita"
	AppointmentTypeApresentacao = "Apresentação"
)

// Appointment representa um compromisso de agenda de um representante.
type Appointment struct {
	ID              int64
	Title           string
	Description     string
	ClientID        *int64 // opcional: compromisso pode não ter cliente associado
	ClientName      string // snapshot desnormalizado
	Representative  string
	AppointmentDate time.Time
	Duration        int // minutos
	Location        string
	Type            string // Reunião, Ligação, Visita, Apresentação
	Status          string // Agendado, Concluído, Cancelado, Reagendado
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
