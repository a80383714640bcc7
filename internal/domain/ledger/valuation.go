// Package ledger contiene el cálculo de valuación y el motor de saldos:
// funciones puras sobre una instantánea de movimientos y pagos a cuenta.
package ledger

import "github.com/shopspring/decimal"

// Alícuotas de IVA admitidas.
var (
	TaxRateExempt  = decimal.Zero
	TaxRateReduced = decimal.RequireFromString("0.105")
	TaxRateGeneral = decimal.RequireFromString("0.21")
)

// AllowedTaxRates devuelve las alícuotas admitidas en orden ascendente.
func AllowedTaxRates() []decimal.Decimal {
	return []decimal.Decimal{TaxRateExempt, TaxRateReduced, TaxRateGeneral}
}

// IsAllowedTaxRate indica si rate es 0, 0.105 o 0.21.
func IsAllowedTaxRate(rate decimal.Decimal) bool {
	for _, r := range AllowedTaxRates() {
		if r.Equal(rate) {
			return true
		}
	}
	return false
}

// Valuation resultado de valuar un movimiento.
type Valuation struct {
	Net        decimal.Decimal
	Total      decimal.Decimal
	AvgPerUnit decimal.Decimal
}

// Valuate calcula neto = precio por kg × kg, total = neto × (1 + iva) y promedio por unidad.
// Con quantity <= 0 el promedio es 0.
func Valuate(quantity int, weightKg, unitPrice, taxRate decimal.Decimal) Valuation {
	net := unitPrice.Mul(weightKg)
	total := net.Mul(decimal.NewFromInt(1).Add(taxRate))
	avg := decimal.Zero
	if quantity > 0 {
		avg = net.Div(decimal.NewFromInt(int64(quantity)))
	}
	return Valuation{Net: net, Total: total, AvgPerUnit: avg}
}
