package entity

import "time"

// Status válidos para Company.
const (
	CompanyStatusAtiva    = "Ativa"
	CompanyStatusInativa  = "Inativa"
	CompanyStatusSuspensa = "Suspensa"
)

// Company representa uma empresa parceira (representada) com contrato de comissão.
type Company struct {
	ID             int64
	Name           string
	CNPJ           string
	Email          string
	Phone          string
	Website        string
	Address        string
	City           string
	State          string
	ZipCode        string
	Segment        string // segmento de atuação
	ContactPerson  string
	ContactEmail   string
	ContactPhone   string
	CommissionRate float64 // taxa de comissão em %
	Status         string  // Ativa, Inativa, Suspensa
	ContractStart  *time.Time
	ContractEnd    *time.Time
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
