package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturador-api/internal/domain/billing"
	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func line(qty, price string) entity.LineItem {
	return entity.LineItem{Quantity: dec(qty), Price: dec(price)}
}

// Caso 1: totales de un documento con varias líneas y tarifa 19%.
func TestComputeTotals_VariasLineas(t *testing.T) {
	items := []entity.LineItem{
		line("2", "10.50"),  // 21.00
		line("1", "100"),    // 100.00
		line("0.5", "8"),    // 4.00
	}
	got := billing.ComputeTotals(items, dec("19"))

	assert.True(t, got.Subtotal.Equal(dec("125")), "subtotal: %s", got.Subtotal)
	assert.True(t, got.TaxAmount.Equal(dec("23.75")), "impuesto: %s", got.TaxAmount)
	assert.True(t, got.Total.Equal(dec("148.75")), "total: %s", got.Total)
}

// Caso 2: identidad total = subtotal * (1 + tarifa/100), para varias tarifas.
func TestComputeTotals_IdentidadTotal(t *testing.T) {
	items := []entity.LineItem{line("3", "7.77"), line("11", "0.09")}
	for _, rate := range []string{"0", "5", "16", "19", "21"} {
		r := dec(rate)
		got := billing.ComputeTotals(items, r)
		want := got.Subtotal.Mul(decimal.NewFromInt(1).Add(r.Div(decimal.NewFromInt(100))))
		assert.True(t, got.Total.Equal(want), "tarifa %s: total %s != %s", rate, got.Total, want)
		assert.True(t, got.Total.Equal(got.Subtotal.Add(got.TaxAmount)),
			"total debe ser subtotal + impuesto")
	}
}

// Caso 3: el orden de las líneas no altera el resultado.
func TestComputeTotals_OrdenIndependiente(t *testing.T) {
	a := []entity.LineItem{line("2", "10"), line("3", "5"), line("1", "99.99")}
	b := []entity.LineItem{line("1", "99.99"), line("2", "10"), line("3", "5")}

	ga := billing.ComputeTotals(a, dec("19"))
	gb := billing.ComputeTotals(b, dec("19"))
	assert.True(t, ga.Total.Equal(gb.Total))
	assert.True(t, ga.TaxAmount.Equal(gb.TaxAmount))
}

// Caso 4: sin líneas todo es cero.
func TestComputeTotals_SinLineas(t *testing.T) {
	got := billing.ComputeTotals(nil, dec("19"))
	assert.True(t, got.Subtotal.IsZero())
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.Total.IsZero())
}

// Caso 5: tarifa cero no genera impuesto.
func TestComputeTotals_TarifaCero(t *testing.T) {
	got := billing.ComputeTotals([]entity.LineItem{line("4", "25")}, decimal.Zero)
	assert.True(t, got.TaxAmount.IsZero())
	assert.True(t, got.Total.Equal(dec("100")))
}
