// Package pdf implementa la exportación del kardex (log de movimientos
// agrupado por sesión) como documento PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Kardex de movimientos │ Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Tipo | Lotes | Cantidad           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de grupos listados                            │
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

	"github.com/tu-usuario/bodega-api/internal/application/dto"
	"github.com/tu-usuario/bodega-api/internal/application/inventory"
	"github.com/tu-usuario/bodega-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorOut     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// Ensure MarotoLogGenerator implements inventory.LogPDFGenerator.
var _ inventory.LogPDFGenerator = (*MarotoLogGenerator)(nil)

// MarotoLogGenerator implementa inventory.LogPDFGenerator usando Maroto v2.
type MarotoLogGenerator struct{}

// NewMarotoLogGenerator construye el generador.
func NewMarotoLogGenerator() *MarotoLogGenerator { return &MarotoLogGenerator{} }

// GenerateLogPDF genera el kardex y devuelve sus bytes.
func (g *MarotoLogGenerator) GenerateLogPDF(
	_ context.Context,
	entries []dto.StockLogEntryDTO,
	generatedAt time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex de movimientos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, e := range entries {
		m.AddRows(entryRow(e))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(entries)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar kardex: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("KARDEX DE MOVIMIENTOS", props.Text{
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
	header := func(label string, size int) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header("Fecha", 2),
		header("Producto", 4),
		header("Tipo", 1),
		header("Lotes", 3),
		header("Cantidad", 2),
	)
}

func entryRow(e dto.StockLogEntryDTO) core.Row {
	typeColor := colorPrimary
	if e.Type == entity.MovementTypeOUT {
		typeColor = colorOut
	}
	lots := make([]string, 0, len(e.Lots))
	for _, l := range e.Lots {
		lots = append(lots, fmt.Sprintf("%s (%s)", l.Lot, l.Quantity.String()))
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(e.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 7, Top: 1})),
		col.New(4).Add(text.New(e.ProductName, props.Text{Size: 8, Top: 1})),
		col.New(1).Add(text.New(e.Type, props.Text{Size: 8, Style: fontstyle.Bold, Color: typeColor, Top: 1})),
		col.New(3).Add(text.New(strings.Join(lots, ", "), props.Text{Size: 7, Top: 1})),
		col.New(2).Add(text.New(e.TotalQuantity.String(), props.Text{Size: 8, Align: align.Right, Top: 1})),
	)
}

func footerRow(total int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("%d grupos de movimientos listados", total), props.Text{
				Size: 8, Color: colorGray, Top: 2,
			}),
		),
	)
}
