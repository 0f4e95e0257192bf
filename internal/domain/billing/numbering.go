package billing

import (
	"fmt"
	"strings"
)

// NextDocumentNumber calcula el siguiente consecutivo dentro de un registro:
// max(prefijo numérico de cada número existente) + 1, con padding a 3 dígitos.
// Números no numéricos ("Q-5", "BORRADOR") cuentan como 0. Solo aplica al
// iniciar un documento nuevo; al editar, el número original queda bloqueado.
func NextDocumentNumber(existing []string) string {
	max := 0
	for _, n := range existing {
		if v := leadingInt(n); v > max {
			max = v
		}
	}
	return fmt.Sprintf("%03d", max+1)
}

// leadingInt extrae el prefijo numérico con semántica tipo parseInt:
// dígitos iniciales tras recortar espacios; sin dígitos iniciales -> 0.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	v := 0
	seen := false
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		seen = true
		v = v*10 + int(r-'0')
		if v > 1_000_000_000 { // suficiente para consecutivos reales
			break
		}
	}
	if !seen {
		return 0
	}
	return v
}

// SameNumber compara números de documento como lo hace la regla de unicidad:
// sin espacios laterales y sin distinguir mayúsculas.
func SameNumber(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
