package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/proreps/crm-backend/internal/domain/entity"
)

const seedPassword = "admin123" // somente para ambientes de demonstração

// Seed popula as tabelas com dados de demonstração. Cada tabela só é
// populada se está vazia, então rodar de novo não duplica nada.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	if err := seedUsers(ctx, pool); err != nil {
		return err
	}
	if err := seedCustomers(ctx, pool); err != nil {
		return err
	}
	if err := seedLeads(ctx, pool); err != nil {
		return err
	}
	if err := seedSales(ctx, pool); err != nil {
		return err
	}
	if err := seedQuotes(ctx, pool); err != nil {
		return err
	}
	if err := seedAppointments(ctx, pool); err != nil {
		return err
	}
	return seedCompanies(ctx, pool)
}

func tableEmpty(ctx context.Context, pool *pgxpool.Pool, table string) (bool, error) {
	var count int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "users")
	if err != nil || !empty {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	repo := NewUserRepository(pool)
	now := time.Now()
	users := []*entity.User{
		{Name: "Administrador", Email: "admin@proreps.com", Role: entity.RoleAdmin, Phone: "(11) 99999-0000", Department: "Administração", IsActive: true, Status: entity.UserStatusActive},
		{Name: "Carlos Mendes", Email: "carlos@proreps.com", Role: entity.RoleRepresentante, Phone: "(11) 99999-1111", Department: "Vendas", IsActive: true, Status: entity.UserStatusActive},
		{Name: "Ana Silva", Email: "ana@proreps.com", Role: entity.RoleRepresentante, Phone: "(11) 99999-2222", Department: "Vendas", IsActive: true, Status: entity.UserStatusActive},
		{Name: "Roberto Santos", Email: "roberto@proreps.com", Role: entity.RoleRepresentante, Phone: "(11) 99999-3333", Department: "Vendas", IsActive: false, Status: entity.UserStatusInactive},
		{Name: "João da Silva", Email: "joao@proreps.com", Role: entity.RoleUsuario, Phone: "(11) 99999-4444", Department: "Suporte", IsActive: true, Status: entity.UserStatusActive},
	}
	for _, u := range users {
		u.PasswordHash = string(hash)
		u.CreatedAt = now
		u.UpdatedAt = now
		if err := repo.Create(ctx, u); err != nil {
			return err
		}
	}
	return nil
}

func seedCustomers(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "customers")
	if err != nil || !empty {
		return err
	}
	repo := NewCustomerRepository(pool)
	now := time.Now()
	customers := []*entity.Customer{
		{Name: "João Silva", Email: "joao@empresa.com", Phone: "(11) 99999-9999", Company: "Empresa ABC"},
		{Name: "Maria Santos", Email: "maria@techsolutions.com", Phone: "(11) 88888-8888", Company: "Tech Solutions"},
		{Name: "Pedro Oliveira", Email: "pedro@consultoria.com", Phone: "(11) 77777-7777", Company: "Consultoria XYZ"},
	}
	for _, c := range customers {
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := repo.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func seedLeads(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "leads")
	if err != nil || !empty {
		return err
	}
	repo := NewLeadRepository(pool)
	now := time.Now()
	leads := []*entity.Lead{
		{Name: "Carlos Ferreira", Email: "carlos@novaempresa.com", Status: entity.LeadStatusNovo, Source: "Website", AssignedTo: "Carlos Mendes"},
		{Name: "Fernanda Costa", Email: "fernanda@startup.com", Status: entity.LeadStatusContato, Source: "LinkedIn", AssignedTo: "Ana Silva"},
		{Name: "Ricardo Almeida", Email: "ricardo@industria.com", Status: entity.LeadStatusQualificado, Source: "Indicação", AssignedTo: "Carlos Mendes"},
	}
	for _, l := range leads {
		l.CreatedAt = now
		l.UpdatedAt = now
		if err := repo.Create(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

func seedSales(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "sales")
	if err != nil || !empty {
		return err
	}
	repo := NewSaleRepository(pool)
	now := time.Now()
	sales := []*entity.Sale{
		{ClientID: 1, ClientName: "João Silva", Product: "Sistema de Gestão", Value: 15000, Status: entity.SaleStatusConcluida, Representative: "Carlos Mendes", Date: now.AddDate(0, 0, -20)},
		{ClientID: 2, ClientName: "Maria Santos", Product: "Consultoria em TI", Value: 8500, Status: entity.SaleStatusConcluida, Representative: "Ana Silva", Date: now.AddDate(0, 0, -10)},
		{ClientID: 3, ClientName: "Pedro Oliveira", Product: "Licenças de Software", Value: 12000, Status: entity.SaleStatusPendente, Representative: "Carlos Mendes", Date: now.AddDate(0, 0, -3)},
	}
	for _, s := range sales {
		s.CreatedAt = now
		s.UpdatedAt = now
		if err := repo.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func seedQuotes(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "quotes")
	if err != nil || !empty {
		return err
	}
	repo := NewQuoteRepository(pool)
	now := time.Now()
	quotes := []*entity.Quote{
		{ClientID: 1, ClientName: "João Silva", Title: "Sistema de Gestão Empresarial",
			Description: "Desenvolvimento de sistema completo de gestão empresarial com módulos de vendas, estoque e financeiro.",
			Value:       25000, Status: entity.QuoteStatusPendente, Representative: "Carlos Mendes", ValidUntil: now.AddDate(0, 2, 0)},
		{ClientID: 2, ClientName: "Maria Santos", Title: "Migração para a Nuvem",
			Description: "Projeto de migração da infraestrutura local para a nuvem.",
			Value:       18000, Status: entity.QuoteStatusAprovada, Representative: "Ana Silva", ValidUntil: now.AddDate(0, 1, 0)},
	}
	for _, q := range quotes {
		q.CreatedAt = now
		q.UpdatedAt = now
		if err := repo.Create(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func seedAppointments(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "appointments")
	if err != nil || !empty {
		return err
	}
	repo := NewAppointmentRepository(pool)
	now := time.Now()
	clientID := int64(1)
	appointments := []*entity.Appointment{
		{Title: "Reunião de Apresentação - Sistema de Gestão",
			Description: "Apresentação da proposta de sistema de gestão empresarial para o cliente.",
			ClientID:    &clientID, ClientName: "João Silva", Representative: "Carlos Mendes",
			AppointmentDate: now.AddDate(0, 0, 2), Duration: 90,
			Location: "Escritório do cliente - São Paulo",
			Type:     entity.AppointmentTypeReuniao, Status: entity.AppointmentStatusAgendado},
		{Title: "Ligação de Follow-up",
			Description:    "Acompanhamento da proposta enviada na semana passada.",
			ClientName:     "Maria Santos", Representative: "Ana Silva",
			AppointmentDate: now.AddDate(0, 0, 5), Duration: 30,
			Type: entity.AppointmentTypeLigacao, Status: entity.AppointmentStatusAgendado},
	}
	for _, a := range appointments {
		a.CreatedAt = now
		a.UpdatedAt = now
		if err := repo.Create(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func seedCompanies(ctx context.Context, pool *pgxpool.Pool) error {
	empty, err := tableEmpty(ctx, pool, "companies")
	if err != nil || !empty {
		return err
	}
	repo := NewCompanyRepository(pool)
	now := time.Now()
	contractStart := now.AddDate(-1, 0, 0)
	contractEnd := now.AddDate(0, 11, 0)
	companies := []*entity.Company{
		{Name: "TechSolutions Brasil Ltda", CNPJ: "12.345.678/0001-90",
			Email: "contato@techsolutions.com.br", Phone: "(11) 3456-7890",
			Website: "https://www.techsolutions.com.br", Address: "Av. Paulista, 1000 - Conjunto 501",
			City: "São Paulo", State: "SP", ZipCode: "01310-100",
			Segment: "Tecnologia da Informação", ContactPerson: "Roberto Silva",
			ContactEmail: "roberto@techsolutions.com.br", ContactPhone: "(11) 98765-4321",
			CommissionRate: 12.5, Status: entity.CompanyStatusAtiva,
			ContractStart: &contractStart, ContractEnd: &contractEnd,
			Notes: "Parceiro estratégico no segmento de TI."},
	}
	for _, c := range companies {
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := repo.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
