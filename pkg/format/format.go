// Package format da formato a montos y pesos con separadores en español (1.234,50).
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Spanish)

// Money "$ 1.234,50".
func Money(d decimal.Decimal) string {
	return printer.Sprintf("$ %.2f", d.Round(2).InexactFloat64())
}

// Number dos decimales con separador de miles.
func Number(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Kg peso con hasta tres decimales.
func Kg(d decimal.Decimal) string {
	return printer.Sprintf("%.3f kg", d.Round(3).InexactFloat64())
}

// Percent tasa como porcentaje: 0.105 -> "10,5 %".
func Percent(rate decimal.Decimal) string {
	return printer.Sprintf("%v %%", rate.Mul(decimal.NewFromInt(100)).InexactFloat64())
}
