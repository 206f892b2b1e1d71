// Package pdf implementa la generación del reporte de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de ventas + fecha de generación             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Libro | Autor | Precio | Órdenes | Revenue           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL GENERAL                                               │
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
	"github.com/shopspring/decimal"

	"github.com/Asforaa/eBook-Store-API/internal/application/report"
	"github.com/Asforaa/eBook-Store-API/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ report.SalesReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.SalesReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSalesReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSalesReport(
	_ context.Context,
	generatedAt time.Time,
	rows []*repository.SalesRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(rows) == 0 {
		m.AddRows(row.New(10).Add(
			col.New(12).Add(text.New("No hay datos de ventas disponibles", props.Text{
				Size: 10, Align: align.Center, Color: colorGray, Top: 3,
			})),
		))
	} else {
		m.AddRows(tableHeaderRow())
		for _, r := range rows {
			m.AddRows(salesRow(r))
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(totalRow(rows))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 4,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	headerRight := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right}
	return row.New(6).Add(
		col.New(4).Add(text.New("Libro", header)),
		col.New(3).Add(text.New("Autor", header)),
		col.New(2).Add(text.New("Precio", headerRight)),
		col.New(1).Add(text.New("Órdenes", headerRight)),
		col.New(2).Add(text.New("Revenue", headerRight)),
	)
}

func salesRow(r *repository.SalesRow) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	cellRight := props.Text{Size: 8, Top: 1, Align: align.Right}
	return row.New(5).Add(
		col.New(4).Add(text.New(r.BookTitle, cell)),
		col.New(3).Add(text.New(r.AuthorUsername, cell)),
		col.New(2).Add(text.New(r.BookPrice.StringFixed(2), cellRight)),
		col.New(1).Add(text.New(strconv.FormatInt(r.TotalOrders, 10), cellRight)),
		col.New(2).Add(text.New(r.TotalSales.StringFixed(2), cellRight)),
	)
}

func totalRow(rows []*repository.SalesRow) core.Row {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.TotalSales)
	}
	return row.New(8).Add(
		col.New(10).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		})),
		col.New(2).Add(text.New(total.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2, Color: colorPrimary,
		})),
	)
}
