package billing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Facturador-api/internal/domain/billing"
)

func TestNextDocumentNumber_Consecutivo(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		want     string
	}{
		{"registro vacío", nil, "001"},
		{"secuencia simple", []string{"001", "002", "003"}, "004"},
		{"el máximo manda, no el último", []string{"007", "002"}, "008"},
		{"prefijo numérico con sufijo", []string{"12-A", "3"}, "013"},
		{"no numéricos cuentan como cero", []string{"Q-5", "BORRADOR"}, "001"},
		{"espacios laterales se recortan", []string{"  41  "}, "042"},
		{"sin padding extra sobre 3 dígitos", []string{"999"}, "1000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, billing.NextDocumentNumber(tc.existing))
		})
	}
}

func TestSameNumber_Normalizacion(t *testing.T) {
	assert.True(t, billing.SameNumber("FAC-001", "fac-001"))
	assert.True(t, billing.SameNumber("  005", "005  "))
	assert.False(t, billing.SameNumber("005", "0050"))
}
