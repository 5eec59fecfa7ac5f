// Package pdf implementa la generación del digest de distribuciones en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + título del digest + fecha de emisión      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Trabajador | Producto | Cant | P.Unit | Tot  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades entregadas / valor total                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
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
	"github.com/shopspring/decimal"

	"github.com/yourcompany/distribucion-api/internal/application/reports"
	"github.com/yourcompany/distribucion-api/internal/domain/entity"
)

var _ reports.LedgerPDFGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.LedgerPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLedgerPDF genera el PDF del digest y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateLedgerPDF(
	_ context.Context,
	companyName string,
	rows []*entity.Distribution,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Digest de distribuciones", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(companyName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	totalUnits := int64(0)
	totalValue := decimal.Zero
	for _, d := range rows {
		m.AddRows(detailRow(d))
		totalUnits += d.Quantity
		totalValue = totalValue.Add(d.TotalAmount)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totalUnits, totalValue))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de empresa (izq) y fecha de emisión (der).
func headerRow(companyName string) core.Row {
	if companyName == "" {
		companyName = "Digest de distribuciones"
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New(companyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Digest de auditoría del libro de distribuciones", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Emitido: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de entregas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Trabajador", 3, align.Left),
		h("Producto", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("P.Unit.", 1, align.Right),
		h("Total", 2, align.Right),
	)
}

// detailRow: una fila por entrega.
func detailRow(d *entity.Distribution) core.Row {
	return row.New(6).Add(
		col.New(2).Add(text.New(
			d.DistributedAt.Format("02/01/2006 15:04"),
			props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			truncate(d.WorkerName, 28),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(3).Add(text.New(
			truncate(d.ProductName, 28),
			props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
		)),
		col.New(1).Add(text.New(
			fmt.Sprintf("%d", d.Quantity),
			props.Text{Size: 8, Align: align.Center, Top: 1},
		)),
		col.New(1).Add(text.New(
			d.PricePerUnit.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
		col.New(2).Add(text.New(
			d.TotalAmount.StringFixed(2),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(units int64, value decimal.Decimal) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	val := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Unidades entregadas:"),
			label("Valor total:"),
		),
		col.New(3).Add(
			val(fmt.Sprintf("%d", units)),
			val(value.StringFixed(2)),
		),
	)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}
