// Package pdf implementa la representación PDF del reporte de valorización
// de inventario usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Organización  │  Título + Fecha de generación      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ítems | Valor total | Stock bajo | Movimientos    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Nombre | Cant | Unidad | Costo | Valor        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL: VALOR TOTAL DEL INVENTARIO                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

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

	"github.com/jhoicas/stocklens-api/internal/application/dto"
	"github.com/jhoicas/stocklens-api/internal/application/usecase"
	"github.com/jhoicas/stocklens-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ usecase.ValuationPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.ValuationPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateValuationPDF genera el reporte de valorización y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateValuationPDF(
	_ context.Context,
	org *entity.Organization,
	summary dto.ReportsSummaryDTO,
	lines []dto.ValuationLineDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Valorización de Inventario", true).
		WithAuthor(org.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(org, generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(summary))

	if len(summary.DataQualityIDs) > 0 {
		m.AddRows(dataQualityRow(len(summary.DataQualityIDs)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la organización (izq) y título + fecha (der).
func headerRow(org *entity.Organization, generatedAt time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(org.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(org.Description, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE VALORIZACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Inventario a costo de adquisición", props.Text{
				Size: 8, Align: align.Right, Top: 7, Color: colorGray,
			}),
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

// summaryRow: tarjetas de resumen en una sola franja.
func summaryRow(summary dto.ReportsSummaryDTO) core.Row {
	card := func(label, value string, valueColor *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: valueColor, Top: 6,
			}),
		)
	}
	lowColor := colorPrimary
	if summary.LowStockCount > 0 {
		lowColor = colorAlert
	}
	return row.New(14).Add(
		card("ÍTEMS TOTALES", strconv.Itoa(summary.TotalItems), colorPrimary),
		card("VALOR TOTAL", "$"+summary.TotalValue.StringFixed(2), colorPrimary),
		card("STOCK BAJO", strconv.Itoa(summary.LowStockCount), lowColor),
		card("MOVIMIENTOS DEL MES", strconv.Itoa(summary.MovementsThisMonth), colorPrimary),
	)
}

// tableHeaderRow: cabecera de la tabla de valorización.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Ítem", 4, align.Left),
		h("Cant.", 1, align.Right),
		h("Unidad", 1, align.Center),
		h("Costo Unit.", 2, align.Right),
		h("Valor", 2, align.Right),
	)
}

// tableLineRows: una fila por ítem; los de stock bajo van en rojo.
func tableLineRows(lines []dto.ValuationLineDTO) []core.Row {
	result := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		nameColor := (*props.Color)(nil)
		if l.LowStock {
			nameColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(l.SKU, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(4).Add(text.New(l.Name, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1, Color: nameColor,
			})),
			col.New(1).Add(text.New(strconv.FormatInt(l.Quantity, 10), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1, Color: nameColor,
			})),
			col.New(1).Add(text.New(l.Unit, props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New("$"+l.UnitCost.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
			col.New(2).Add(text.New("$"+l.Value.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

// totalRow: valor total del inventario alineado a la derecha.
func totalRow(summary dto.ReportsSummaryDTO) core.Row {
	return row.New(10).Add(
		col.New(6),
		col.New(3).Add(text.New("VALOR TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(3).Add(text.New("$"+summary.TotalValue.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Top: 2, Right: 1,
		})),
	)
}

// dataQualityRow: nota al pie cuando hay ítems con valores negativos.
func dataQualityRow(count int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"Nota: %d ítem(s) con cantidad o costo negativo. Los totales los incluyen tal cual; revise la calidad de los datos.",
			count,
		), props.Text{Size: 6.5, Color: colorAlert, Top: 2}),
	))
}
