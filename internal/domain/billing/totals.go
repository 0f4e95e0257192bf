// Package billing contiene la lógica pura del ciclo de vida de documentos:
// totales, derivación de estados, numeración consecutiva y el compositor del
// resumen de texto. Sin efectos secundarios; la orquestación vive en
// internal/application/billing.
package billing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// Totals resultado del cálculo de montos de un documento.
type Totals struct {
	Subtotal  decimal.Decimal
	TaxAmount decimal.Decimal
	Total     decimal.Decimal
}

// ComputeTotals calcula subtotal, impuesto y total a partir de las líneas y la
// tarifa porcentual. Se invoca en cada cambio del formulario y al guardar, así
// que es un recorrido lineal sin redondeo: el formato a 2 decimales es asunto
// de presentación, lo almacenado conserva la precisión completa.
func ComputeTotals(items []entity.LineItem, taxRatePercent decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Quantity.Mul(it.Price))
	}
	taxAmount := subtotal.Mul(taxRatePercent).Div(decimal.NewFromInt(100))
	return Totals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal.Add(taxAmount),
	}
}
