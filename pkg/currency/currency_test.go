package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturador-api/pkg/currency"
)

func TestFormatter_CodigoISO(t *testing.T) {
	format := currency.Formatter("USD")
	got := format(decimal.NewFromFloat(1234.5))
	assert.Contains(t, got, "$")
	assert.Contains(t, got, "1,234.50")
}

// Código desconocido: símbolo genérico con 2 decimales, nunca un error.
func TestFormatter_CodigoInvalido(t *testing.T) {
	format := currency.Formatter("???")
	assert.Equal(t, "$1234.50", format(decimal.NewFromFloat(1234.5)))
}
