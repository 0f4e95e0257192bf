package billing

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// FormatCurrency formatea un monto para mostrar (inyectado por el caller).
type FormatCurrency func(decimal.Decimal) string

const summaryDateLayout = "02/01/2006"

// RenderDocumentSummary compone el resumen de texto plano de un documento para
// compartir por correo o chat. Es determinista para el mismo input (sin reloj
// ni aleatoriedad): la vista previa, el correo y el mensaje de WhatsApp salen
// de esta misma función y nunca divergen.
func RenderDocumentSummary(doc *entity.SavedDocument, format FormatCurrency) string {
	var b strings.Builder

	title := "FACTURA"
	if doc.DocumentType == entity.DocumentTypeQuotation {
		title = "COTIZACIÓN"
	}
	fmt.Fprintf(&b, "%s N° %s\n", title, doc.DocumentNumber)
	fmt.Fprintf(&b, "Fecha de emisión: %s\n", doc.IssueDate.Format(summaryDateLayout))
	fmt.Fprintf(&b, "Vence: %s\n\n", doc.DueDate.Format(summaryDateLayout))

	b.WriteString("DE:\n")
	writeParty(&b, doc.CompanyDetails)
	b.WriteString("\nPARA:\n")
	writeParty(&b, doc.ClientDetails)

	b.WriteString("\nDETALLE:\n")
	for _, it := range doc.LineItems {
		fmt.Fprintf(&b, "%s x %s @ %s = %s\n",
			it.Quantity.String(),
			it.Description,
			format(it.Price),
			format(it.Quantity.Mul(it.Price)),
		)
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", format(doc.Subtotal))
	fmt.Fprintf(&b, "Impuesto (%s%%): %s\n", doc.TaxRate.String(), format(doc.TaxAmount))
	fmt.Fprintf(&b, "TOTAL: %s\n", format(doc.Total))

	if len(doc.Payments) > 0 {
		b.WriteString("\nPAGOS:\n")
		for _, p := range doc.Payments {
			fmt.Fprintf(&b, "%s - %s: %s\n", p.Date.Format(summaryDateLayout), p.Method, format(p.Amount))
		}
		fmt.Fprintf(&b, "Saldo pendiente: %s\n", format(doc.BalanceDue()))
	}

	if doc.Notes != "" {
		fmt.Fprintf(&b, "\nNOTAS:\n%s\n", doc.Notes)
	}

	if doc.CompanyDetails.BankName != "" || doc.CompanyDetails.AccountNumber != "" {
		b.WriteString("\nDATOS DE PAGO:\n")
		if doc.CompanyDetails.BankName != "" {
			fmt.Fprintf(&b, "Banco: %s\n", doc.CompanyDetails.BankName)
		}
		if doc.CompanyDetails.AccountNumber != "" {
			fmt.Fprintf(&b, "Cuenta: %s\n", doc.CompanyDetails.AccountNumber)
		}
	}

	return b.String()
}

// writeParty bloque de contacto: nombre y después solo los campos presentes.
func writeParty(b *strings.Builder, d entity.Details) {
	b.WriteString(d.Name + "\n")
	if d.Address != "" {
		b.WriteString(d.Address + "\n")
	}
	if d.TaxID != "" {
		b.WriteString("NIT/ID: " + d.TaxID + "\n")
	}
	if d.Email != "" {
		b.WriteString(d.Email + "\n")
	}
	if d.Phone != "" {
		b.WriteString(d.Phone + "\n")
	}
	if d.Website != "" {
		b.WriteString(d.Website + "\n")
	}
}
