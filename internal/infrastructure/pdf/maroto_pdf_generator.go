// Package pdf implementa la exportación PDF de facturas y cotizaciones.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  FACTURA/COTIZACIÓN + N° + Fechas        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DE: datos de la empresa                                     │
//	│  PARA: datos del cliente                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | P.Unit | Total línea            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Subtotal / Impuesto / TOTAL                        │
//	│  PAGOS: abonos + saldo pendiente (si hay)                    │
//	│  FOOTER: notas + datos de pago + QR bancario                 │
//	└─────────────────────────────────────────────────────────────┘
//
// El PDF deriva del mismo snapshot y la misma función de formato de moneda
// que la vista previa y el mensaje de texto: nunca divergen.
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	appbilling "github.com/jhoicas/Facturador-api/internal/application/billing"
	domainbilling "github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

const pdfDateLayout = "02/01/2006"

var (
	colorDefaultAccent = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray          = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa billing.DocumentPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

var _ appbilling.DocumentPDFGenerator = (*MarotoPDFGenerator)(nil)

// GenerateDocumentPDF genera el PDF del documento y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateDocumentPDF(
	_ context.Context,
	doc *entity.SavedDocument,
	format domainbilling.FormatCurrency,
) ([]byte, error) {
	accent := parseAccent(doc.AccentColor)

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(doc)+" "+doc.DocumentNumber, true).
		WithAuthor(doc.CompanyDetails.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc, accent))
	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.5}))
	m.AddRows(partyRow("DE", doc.CompanyDetails, accent))
	m.AddRows(partyRow("PARA", doc.ClientDetails, accent))
	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.3}))

	m.AddRows(tableHeaderRow(accent))
	for _, r := range tableLineRows(doc.LineItems, format) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: accent, Thickness: 0.3}))
	m.AddRows(totalsRow(doc, format, accent))

	if len(doc.Payments) > 0 {
		for _, r := range paymentRows(doc, format, accent) {
			m.AddRows(r)
		}
	}

	for _, r := range footerRows(doc, accent) {
		m.AddRows(r)
	}

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func documentTitle(doc *entity.SavedDocument) string {
	if doc.DocumentType == entity.DocumentTypeQuotation {
		return "COTIZACIÓN"
	}
	return "FACTURA"
}

// headerRow: nombre de la empresa (izq) y tipo + número + fechas (der).
func headerRow(doc *entity.SavedDocument, accent *props.Color) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(doc.CompanyDetails.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: accent, Top: 1,
			}),
			text.New(nonEmpty(doc.CompanyDetails.TaxID, ""), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(documentTitle(doc), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: accent, Top: 1,
			}),
			text.New("N° "+doc.DocumentNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 6,
			}),
			text.New("Emisión: "+doc.IssueDate.Format(pdfDateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
			text.New("Vence: "+doc.DueDate.Format(pdfDateLayout), props.Text{
				Size: 8, Align: align.Right, Top: 17, Color: colorGray,
			}),
		),
	)
}

// partyRow: bloque de contacto (empresa o cliente).
func partyRow(label string, d entity.Details, accent *props.Color) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
			}),
			text.New(d.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s   |   %s   |   %s",
				nonEmpty(d.Address, "—"),
				nonEmpty(d.Email, "—"),
				nonEmpty(d.Phone, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow(accent *props.Color) core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: accent, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableLineRows: una fila por línea del documento.
func tableLineRows(items []entity.LineItem, format domainbilling.FormatCurrency) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				format(it.Price),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				format(it.Quantity.Mul(it.Price)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(doc *entity.SavedDocument, format domainbilling.FormatCurrency, accent *props.Color) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: accent, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: accent, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Subtotal:"),
			label(fmt.Sprintf("Impuesto (%s%%):", doc.TaxRate.String())),
			grandLabel("TOTAL:"),
		),
		col.New(5).Add(
			value(format(doc.Subtotal)),
			value(format(doc.TaxAmount)),
			grandValue(format(doc.Total)),
		),
	)
}

// paymentRows: abonos registrados y saldo pendiente.
func paymentRows(doc *entity.SavedDocument, format domainbilling.FormatCurrency, accent *props.Color) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PAGOS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
			}),
		)),
	}
	for _, p := range doc.Payments {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New(fmt.Sprintf("%s  -  %s: %s",
				p.Date.Format(pdfDateLayout), p.Method, format(p.Amount),
			), props.Text{Size: 8, Color: colorGray, Top: 0.5, Left: 2}),
		)))
	}
	rows = append(rows, row.New(6).Add(col.New(12).Add(
		text.New("Saldo pendiente: "+format(doc.BalanceDue()), props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Left: 2,
		}),
	)))
	return rows
}

// footerRows: notas + datos de pago + QR bancario (si hay).
func footerRows(doc *entity.SavedDocument, accent *props.Color) []core.Row {
	rows := []core.Row{row.New(3)}

	if doc.Notes != "" {
		rows = append(rows,
			row.New(5).Add(col.New(12).Add(
				text.New("NOTAS", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
				}),
			)),
			row.New(10).Add(col.New(12).Add(
				text.New(doc.Notes, props.Text{Size: 8, Color: colorGray, Top: 1, Left: 2}),
			)),
		)
	}

	bank := doc.CompanyDetails.BankName != "" || doc.CompanyDetails.AccountNumber != ""
	if !bank && doc.BankQRCode == "" {
		return rows
	}

	rows = append(rows, row.New(5).Add(col.New(12).Add(
		text.New("DATOS DE PAGO", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: accent, Top: 1,
		}),
	)))

	info := col.New(8)
	if bank {
		info.Add(
			text.New("Banco: "+nonEmpty(doc.CompanyDetails.BankName, "—"), props.Text{
				Size: 8, Top: 2, Left: 2,
			}),
			text.New("Cuenta: "+nonEmpty(doc.CompanyDetails.AccountNumber, "—"), props.Text{
				Size: 8, Top: 7, Left: 2,
			}),
		)
	}

	if doc.BankQRCode != "" {
		rows = append(rows, row.New(36).Add(
			col.New(4).Add(code.NewQr(doc.BankQRCode, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			info,
		))
	} else {
		rows = append(rows, row.New(14).Add(col.New(4), info))
	}

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// parseAccent convierte el color de acento #RRGGBB del documento a color de
// Maroto; valores inválidos caen al azul por defecto.
func parseAccent(hex string) *props.Color {
	if len(hex) != 7 || hex[0] != '#' {
		return colorDefaultAccent
	}
	r, err1 := strconv.ParseUint(hex[1:3], 16, 8)
	g, err2 := strconv.ParseUint(hex[3:5], 16, 8)
	b, err3 := strconv.ParseUint(hex[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return colorDefaultAccent
	}
	return &props.Color{Red: int(r), Green: int(g), Blue: int(b)}
}
