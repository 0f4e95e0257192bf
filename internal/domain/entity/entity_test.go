package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturador-api/internal/domain/entity"
)

// IDs consecutivos nunca se repiten, ni dentro del mismo milisegundo.
func TestNewID_Monotonico(t *testing.T) {
	seen := make(map[string]bool, 1000)
	prev := ""
	for i := 0; i < 1000; i++ {
		id := entity.NewID()
		assert.False(t, seen[id], "ID repetido: %s", id)
		assert.Greater(t, id, prev, "los IDs deben crecer")
		seen[id] = true
		prev = id
	}
}

func TestClientIdentityKey_Normaliza(t *testing.T) {
	assert.Equal(t,
		entity.ClientIdentityKey("  Acme SAS ", "Ventas@Acme.CO"),
		entity.ClientIdentityKey("acme sas", "ventas@acme.co"),
	)
	assert.NotEqual(t,
		entity.ClientIdentityKey("Acme", "a@b.co"),
		entity.ClientIdentityKey("Acme", "otro@b.co"),
		"el email distingue clientes homónimos",
	)
}

func TestSavedDocument_SaldoYPagado(t *testing.T) {
	doc := &entity.SavedDocument{
		Total: decimal.NewFromInt(100),
		Payments: []entity.Payment{
			{Amount: decimal.NewFromInt(30)},
			{Amount: decimal.NewFromInt(20)},
		},
	}
	assert.True(t, doc.AmountPaid().Equal(decimal.NewFromInt(50)))
	assert.True(t, doc.BalanceDue().Equal(decimal.NewFromInt(50)))
}
