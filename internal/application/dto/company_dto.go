package dto

import "time"

// CreateCompanyRequest entrada para criar uma empresa parceira.
// ContractStart/ContractEnd são ISO-8601 opcionais.
type CreateCompanyRequest struct {
	Name           string   `json:"name"`
	CNPJ           string   `json:"cnpj"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Website        string   `json:"website"`
	Address        string   `json:"address"`
	City           string   `json:"city"`
	State          string   `json:"state"`
	ZipCode        string   `json:"zipCode"`
	Segment        string   `json:"segment"`
	ContactPerson  string   `json:"contactPerson"`
	ContactEmail   string   `json:"contactEmail"`
	ContactPhone   string   `json:"contactPhone"`
	CommissionRate *float64 `json:"commissionRate"`
	Status         string   `json:"status"`
	ContractStart  string   `json:"contractStart"`
	ContractEnd    string   `json:"contractEnd"`
	Notes          string   `json:"notes"`
}

// UpdateCompanyRequest entrada para atualizar uma empresa (somente campos presentes mudam).
// ContractStart/ContractEnd com string vazia limpam a data.
type UpdateCompanyRequest struct {
	Name           *string  `json:"name"`
	CNPJ           *string  `json:"cnpj"`
	Email          *string  `json:"email"`
	Phone          *string  `json:"phone"`
	Website        *string  `json:"website"`
	Address        *string  `json:"address"`
	City           *string  `json:"city"`
	State          *string  `json:"state"`
	ZipCode        *string  `json:"zipCode"`
	Segment        *string  `json:"segment"`
	ContactPerson  *string  `json:"contactPerson"`
	ContactEmail   *string  `json:"contactEmail"`
	ContactPhone   *string  `json:"contactPhone"`
	CommissionRate *float64 `json:"commissionRate"`
	Status         *string  `json:"status"`
	ContractStart  *string  `json:"contractStart"`
	ContractEnd    *string  `json:"contractEnd"`
	Notes          *string  `json:"notes"`
}

// CompanyResponse saída de uma empresa parceira.
type CompanyResponse struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	CNPJ           string     `json:"cnpj"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Website        string     `json:"website"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	ZipCode        string     `json:"zipCode"`
	Segment        string     `json:"segment"`
	ContactPerson  string     `json:"contactPerson"`
	ContactEmail   string     `json:"contactEmail"`
	ContactPhone   string     `json:"contactPhone"`
	CommissionRate float64    `json:"commissionRate"`
	Status         string     `json:"status"`
	ContractStart  *time.Time `json:"contractStart"`
	ContractEnd    *time.Time `json:"contractEnd"`
	Notes          string     `json:"notes"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

// CompanyStatsResponse estatísticas de empresas parceiras.
type CompanyStatsResponse struct {
	TotalCompanies      int64            `json:"totalCompanies"`
	ActiveCompanies     int64            `json:"activeCompanies"`
	InactiveCompanies   int64            `json:"inactiveCompanies"`
	SuspendedCompanies  int64            `json:"suspendedCompanies"`
	AverageCommission   float64          `json:"averageCommission"`
	SegmentDistribution map[string]int64 `json:"segmentDistribution"`
	ExpiringContracts   int64            `json:"expiringContracts"`
}
