package billing_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// Formateador simple e inyectado para que el test no dependa del locale.
func formatoPlano(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func documentoCompleto() *entity.SavedDocument {
	return &entity.SavedDocument{
		DocumentNumber: "015",
		DocumentType:   entity.DocumentTypeInvoice,
		IssueDate:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		CompanyDetails: entity.Details{
			Name:          "Servicios Andinos SAS",
			Address:       "Cra 7 # 45-10, Bogotá",
			TaxID:         "900123456-7",
			BankName:      "Bancolombia",
			AccountNumber: "123-456789-00",
		},
		ClientDetails: entity.Details{
			Name:  "Constructora del Norte",
			Email: "compras@norte.co",
		},
		LineItems: []entity.LineItem{
			{Description: "Asesoría técnica", Quantity: dec("2"), Price: dec("50")},
			{Description: "Visita en sitio", Quantity: dec("1"), Price: dec("25")},
		},
		TaxRate:   dec("19"),
		Subtotal:  dec("125"),
		TaxAmount: dec("23.75"),
		Total:     dec("148.75"),
		Payments: []entity.Payment{
			{Amount: dec("50"), Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), Method: "Transferencia"},
		},
		Notes: "Pago a 15 días.",
	}
}

// Golden byte a byte: la vista previa, el correo y el chat salen de este texto.
func TestRenderDocumentSummary_Golden(t *testing.T) {
	want := strings.Join([]string{
		"FACTURA N° 015",
		"Fecha de emisión: 01/06/2025",
		"Vence: 16/06/2025",
		"",
		"DE:",
		"Servicios Andinos SAS",
		"Cra 7 # 45-10, Bogotá",
		"NIT/ID: 900123456-7",
		"",
		"PARA:",
		"Constructora del Norte",
		"compras@norte.co",
		"",
		"DETALLE:",
		"2 x Asesoría técnica @ $50.00 = $100.00",
		"1 x Visita en sitio @ $25.00 = $25.00",
		"",
		"Subtotal: $125.00",
		"Impuesto (19%): $23.75",
		"TOTAL: $148.75",
		"",
		"PAGOS:",
		"05/06/2025 - Transferencia: $50.00",
		"Saldo pendiente: $98.75",
		"",
		"NOTAS:",
		"Pago a 15 días.",
		"",
		"DATOS DE PAGO:",
		"Banco: Bancolombia",
		"Cuenta: 123-456789-00",
		"",
	}, "\n")

	got := billing.RenderDocumentSummary(documentoCompleto(), formatoPlano)
	assert.Equal(t, want, got)
}

// Mismo input, mismo output: el compositor no consulta reloj ni aleatoriedad.
func TestRenderDocumentSummary_Determinista(t *testing.T) {
	doc := documentoCompleto()
	a := billing.RenderDocumentSummary(doc, formatoPlano)
	b := billing.RenderDocumentSummary(doc, formatoPlano)
	assert.Equal(t, a, b)
}

// Secciones opcionales ausentes: sin pagos, sin notas, sin datos bancarios.
func TestRenderDocumentSummary_SeccionesOpcionales(t *testing.T) {
	doc := documentoCompleto()
	doc.DocumentType = entity.DocumentTypeQuotation
	doc.Payments = nil
	doc.Notes = ""
	doc.CompanyDetails.BankName = ""
	doc.CompanyDetails.AccountNumber = ""

	got := billing.RenderDocumentSummary(doc, formatoPlano)
	assert.True(t, strings.HasPrefix(got, "COTIZACIÓN N° 015\n"))
	assert.NotContains(t, got, "PAGOS:")
	assert.NotContains(t, got, "NOTAS:")
	assert.NotContains(t, got, "DATOS DE PAGO:")
}
