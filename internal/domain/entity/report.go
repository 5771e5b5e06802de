package entity

import "time"

// Tipos de relatório suportados.
const (
	ReportTypeVendas     = "vendas"
	ReportTypeClientes   = "clientes"
	ReportTypeLeads      = "leads"
	ReportTypeFinanceiro = "financeiro"
)

// Status de geração de um Report.
const (
	ReportStatusGerado      = "Gerado"
	ReportStatusProcessando = "Processando"
	ReportStatusErro        = "Erro"
)

// Report é o snapshot persistido de um relatório gerado sobre uma janela de datas.
// Data guarda o resultado agregado como JSON.
type Report struct {
	ID          int64
	Title       string
	Type        string // vendas, clientes, leads, financeiro
	Description string
	GeneratedBy string
	PeriodStart time.Time
	PeriodEnd   time.Time
	Data        map[string]any
	Status      string // Gerado, Processando, Erro
	FilePath    string // caminho do arquivo exportado (PDF), se houver
	CreatedAt   time.Time
}
