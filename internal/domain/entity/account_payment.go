package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago a cuenta.
const (
	PaymentKindCredit = "INGRESO" // el cliente deja dinero a cuenta (suma)
	PaymentKindDebit  = "EGRESO"  // se consume saldo a cuenta (resta)
)

// AccountPayment depósito o consumo del saldo a cuenta de un cliente.
// No está asociado a ningún movimiento.
type AccountPayment struct {
	ID         string          `db:"id"`
	CreatedAt  time.Time       `db:"created_at"`
	ClientName string          `db:"client_name"`
	Amount     decimal.Decimal `db:"amount"`
	Concept    string          `db:"concept"`
	Kind       string          `db:"kind"`
	CreatedBy  string          `db:"created_by"`
}

// NormalizePaymentKind acepta "ingreso"/"credit" y "egreso"/"debit". Devuelve "" si no se reconoce.
func NormalizePaymentKind(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ingreso", "credit":
		return PaymentKindCredit
	case "egreso", "debit":
		return PaymentKindDebit
	}
	return ""
}
