// Package pdf implementa la generación del reporte kardex de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto + código  │  Rango + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Stock actual / mínimo / máximo / unidad            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Tipo | Cant | Previo | Resultante | Ref     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de asientos + leyenda                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/Kardex-api/internal/application/reports"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que MarotoPDFGenerator implementa el puerto.
var _ reports.KardexPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 110, Blue: 50}
)

// movementLabels etiquetas en español para la columna Tipo.
var movementLabels = map[string]string{
	entity.MovementTypeEntry:      "Entrada",
	entity.MovementTypeExit:       "Salida",
	entity.MovementTypeAdjustment: "Ajuste",
	entity.MovementTypeReturn:     "Devolución",
	entity.MovementTypeWriteOff:   "Baja",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa reports.KardexPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateKardexPDF genera el PDF del kardex y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateKardexPDF(
	_ context.Context,
	product *entity.Product,
	movements []*entity.StockMovement,
	from, to *time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex "+product.Code, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product, from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de movimientos
	m.AddRows(tableHeaderRow())
	for _, r := range tableMovementRows(movements) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(movements)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre y código del producto (izq), rango y fecha de emisión (der).
func headerRow(product *entity.Product, from, to *time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+product.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KARDEX DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rangeLabel(from, to), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// summaryRow: foto actual del stock.
func summaryRow(product *entity.Product) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN DE STOCK", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Stock actual: %d %s   |   Mínimo: %d   |   Máximo: %d",
				product.Stock,
				nonEmpty(product.Unit, "und"),
				product.MinStock,
				product.MaxStock,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Tipo", 2, align.Left),
		h("Cant.", 2, align.Right),
		h("Previo", 1, align.Right),
		h("Resultante", 2, align.Right),
		h("Referencia", 3, align.Left),
	)
}

// tableMovementRows: una fila por asiento del kardex.
func tableMovementRows(movements []*entity.StockMovement) []core.Row {
	result := make([]core.Row, 0, len(movements))
	for _, mv := range movements {
		qtyColor := colorGreen
		if mv.ResultingStock < mv.PreviousStock {
			qtyColor = colorRed
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(
				mv.CreatedAt.Format("02/01/2006 15:04"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				movementLabel(mv.Type),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				signedQuantity(mv),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: qtyColor},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", mv.PreviousStock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", mv.ResultingStock),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Style: fontstyle.Bold},
			)),
			col.New(3).Add(text.New(
				nonEmpty(mv.ReferenceNumber, "—"),
				props.Text{Size: 7.5, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
		))
	}
	if len(result) == 0 {
		result = append(result, row.New(8).Add(col.New(12).Add(
			text.New("Sin movimientos en el rango consultado.", props.Text{
				Size: 8, Align: align.Center, Top: 2, Color: colorGray,
			}),
		)))
	}
	return result
}

// footerRow: conteo de asientos + leyenda.
func footerRow(count int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de asientos: %d", count), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
			text.New(
				"El kardex es el registro histórico inmutable del producto. "+
					"Los saldos previo y resultante quedan congelados al momento de cada movimiento.",
				props.Text{Size: 6.5, Color: colorGray, Top: 6},
			),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func rangeLabel(from, to *time.Time) string {
	switch {
	case from != nil && to != nil:
		return from.Format("02/01/2006") + " — " + to.Format("02/01/2006")
	case from != nil:
		return "Desde " + from.Format("02/01/2006")
	case to != nil:
		return "Hasta " + to.Format("02/01/2006")
	}
	return "Historial completo"
}

func movementLabel(t string) string {
	if label, ok := movementLabels[t]; ok {
		return label
	}
	return t
}

// signedQuantity presenta la cantidad con el signo de su efecto sobre el stock.
// En adjustment la cantidad ya viene con signo.
func signedQuantity(mv *entity.StockMovement) string {
	delta := mv.ResultingStock - mv.PreviousStock
	if delta >= 0 {
		return fmt.Sprintf("+%d", delta)
	}
	return fmt.Sprintf("%d", delta)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
