// Package pdf implementa a exportação de relatórios em PDF.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────┐
//	│  HEADER: Título + tipo + status              │
//	│  Período e responsável                       │
//	│  ───────────────────────────────────────── │
//	│  TABELA: indicador | valor                   │
//	│  (quebras por mapa viram subseções)          │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/proreps/crm-backend/internal/application/usecase"
	"github.com/proreps/crm-backend/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator renderiza o resumo de um relatório usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// Generate gera o PDF e devolve seus bytes.
func (g *MarotoReportGenerator) Generate(report *entity.Report) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(report)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(dataRows(report.Data)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar PDF do relatório: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRows(report *entity.Report) []core.Row {
	rows := []core.Row{
		row.New(10).Add(
			col.New(8).Add(text.New(report.Title, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			})),
			col.New(4).Add(text.New(fmt.Sprintf("%s · %s", report.Type, report.Status), props.Text{
				Size: 10, Align: align.Right, Color: colorGray,
			})),
		),
		row.New(6).Add(
			col.New(8).Add(text.New(fmt.Sprintf("Período: %s a %s",
				report.PeriodStart.Format("02/01/2006"), report.PeriodEnd.Format("02/01/2006")),
				props.Text{Size: 9, Color: colorGray})),
			col.New(4).Add(text.New("Gerado por: "+report.GeneratedBy, props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			})),
		),
	}
	if report.Description != "" {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New(report.Description, props.Text{Size: 9})),
		))
	}
	return rows
}

// dataRows achata o agregado em linhas indicador/valor. Valores que são mapas
// viram subseções com uma linha por chave.
func dataRows(data map[string]any) []core.Row {
	var rows []core.Row
	for _, key := range sortedKeys(data) {
		if sub := asMap(data[key]); sub != nil {
			rows = append(rows, sectionRow(key))
			for _, k := range sortedKeys(sub) {
				rows = append(rows, valueRow("  "+k, formatValue(sub[k])))
			}
			continue
		}
		rows = append(rows, valueRow(key, formatValue(data[key])))
	}
	return rows
}

// asMap normaliza os mapas tipados do agregador e os mapas genéricos que
// voltam do JSONB para uma forma única.
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[string]int64:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out
	case map[string]float64:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out
	default:
		return nil
	}
}

func sectionRow(title string) core.Row {
	return row.New(7).Add(
		col.New(12).Add(text.New(title, props.Text{Size: 10, Style: fontstyle.Bold, Color: colorPrimary})),
	)
}

func valueRow(label, value string) core.Row {
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9})),
		col.New(4).Add(text.New(value, props.Text{Size: 9, Align: align.Right})),
	)
}

func formatValue(v any) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", n)
	case float32:
		return fmt.Sprintf("%.2f", n)
	case int64:
		return fmt.Sprintf("%d", n)
	case int:
		return fmt.Sprintf("%d", n)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
