package billing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturador-api/internal/application/billing"
	"github.com/jhoicas/Facturador-api/internal/application/dto"
	"github.com/jhoicas/Facturador-api/internal/domain"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// Total de solicitudValida: 2 x 50 + 19% = 119.

// Abono parcial: PartiallyPaid con saldo pendiente.
func TestRecord_PagoParcial(t *testing.T) {
	env := newTestEnv(t)
	inv := env.guardar(t, solicitudValida(entity.DocumentTypeInvoice, "001"))

	resp, err := env.payment.Record(inv.ID, dto.RecordPaymentRequest{
		Amount: dec("40"), Date: time.Now(), Method: "Transferencia",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, resp.Document.Status)
	assert.True(t, resp.Document.AmountPaid.Equal(dec("40")))
	assert.True(t, resp.Document.BalanceDue.Equal(dec("79")))
	assert.Nil(t, resp.Document.PaidDate)
	assert.Empty(t, resp.Warning)
}

// Dos abonos que completan el total: Paid, saldo cero, fecha del último pago.
func TestRecord_PagosCompletanTotal(t *testing.T) {
	env := newTestEnv(t)
	inv := env.guardar(t, solicitudValida(entity.DocumentTypeInvoice, "001"))

	fecha1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	fecha2 := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	_, err := env.payment.Record(inv.ID, dto.RecordPaymentRequest{Amount: dec("40"), Date: fecha1, Method: "Efectivo"})
	require.NoError(t, err)

	resp, err := env.payment.Record(inv.ID, dto.RecordPaymentRequest{Amount: dec("79"), Date: fecha2, Method: "Efectivo"})
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusPaid, resp.Document.Status)
	assert.True(t, resp.Document.AmountPaid.Equal(dec("119")))
	assert.True(t, resp.Document.BalanceDue.IsZero())
	require.NotNil(t, resp.Document.PaidDate)
	assert.Equal(t, "2025-06-10", resp.Document.PaidDate.Format("2006-01-02"))
	assert.Len(t, resp.Document.Payments, 2, "los pagos solo se acumulan")
}

// Sobrepago: se registra, queda Paid y la respuesta avisa sin bloquear.
func TestRecord_SobrepagoAvisaSinBloquear(t *testing.T) {
	env := newTestEnv(t)
	inv := env.guardar(t, solicitudValida(entity.DocumentTypeInvoice, "001"))

	resp, err := env.payment.Record(inv.ID, dto.RecordPaymentRequest{
		Amount: dec("200"), Date: time.Now(), Method: "Transferencia",
	})
	require.NoError(t, err)

	assert.Equal(t, billing.WarningOverpayment, resp.Warning)
	assert.Equal(t, entity.InvoiceStatusPaid, resp.Document.Status)
	assert.True(t, resp.Document.BalanceDue.Equal(dec("-81")), "el saldo negativo conserva el exceso")
}

// Validaciones de entrada: monto positivo y método presente.
func TestRecord_RechazaEntradaInvalida(t *testing.T) {
	env := newTestEnv(t)
	inv := env.guardar(t, solicitudValida(entity.DocumentTypeInvoice, "001"))

	_, err := env.payment.Record(inv.ID, dto.RecordPaymentRequest{Amount: dec("0"), Method: "Efectivo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.payment.Record(inv.ID, dto.RecordPaymentRequest{Amount: dec("-5"), Method: "Efectivo"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = env.payment.Record(inv.ID, dto.RecordPaymentRequest{Amount: dec("10")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecord_FacturaInexistente(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.payment.Record("no-existe", dto.RecordPaymentRequest{
		Amount: dec("10"), Method: "Efectivo",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
