// Package currency centraliza el formato de montos para las superficies de
// salida (mensaje de texto, PDF). El almacenamiento conserva la precisión
// completa de los decimales; el redondeo a 2 cifras ocurre solo aquí.
package currency

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
)

// FormatFunc convierte un monto decimal en su representación para mostrar.
type FormatFunc func(decimal.Decimal) string

// Formatter devuelve la función de formato para un código ISO 4217 (COP, USD, EUR...).
// Códigos no reconocidos caen al símbolo genérico "$".
func Formatter(code string) FormatFunc {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return func(d decimal.Decimal) string {
			return "$" + d.StringFixed(2)
		}
	}
	p := message.NewPrinter(language.English)
	return func(d decimal.Decimal) string {
		f, _ := d.Float64()
		return p.Sprintf("%v", currency.NarrowSymbol(unit.Amount(f)))
	}
}
