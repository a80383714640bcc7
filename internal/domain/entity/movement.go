package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Dirección del movimiento.
const (
	DirectionIn  = "IN"  // ingreso (compra)
	DirectionOut = "OUT" // egreso (venta)
)

// Productos conocidos. El campo es libre; estos son los que usa el negocio.
const (
	ProductSal    = "Sal"
	ProductCueros = "Cueros"
)

// Modos de pago.
const (
	PaymentMethodCash     = "efectivo"
	PaymentMethodAccount  = "a_cuenta"
	PaymentMethodCheck    = "cheque"
	PaymentMethodProducts = "otros_productos"
)

// Estados de pago.
const (
	StatusPaid   = "PAGADO"
	StatusUnpaid = "IMPAGO"
)

// Movement representa una compra (IN) o venta (OUT) de mercadería.
// NetAmount y TotalAmount se guardan calculados; el motor de saldos confía en TotalAmount.
type Movement struct {
	ID            string          `db:"id"`
	CreatedAt     time.Time       `db:"created_at"`
	Direction     string          `db:"direction"`
	Product       string          `db:"product"`
	Counterparty  string          `db:"counterparty"`
	Quantity      int             `db:"quantity"`
	WeightKg      decimal.Decimal `db:"weight_kg"`
	UnitPrice     decimal.Decimal `db:"unit_price"` // precio por kg
	NetAmount     decimal.Decimal `db:"net_amount"`
	TaxRate       decimal.Decimal `db:"tax_rate"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	PaymentMethod string          `db:"payment_method"`
	PaymentDetail string          `db:"payment_detail"`
	DepositAmount decimal.Decimal `db:"deposit_amount"`
	PaymentStatus string          `db:"payment_status"`
	CreatedBy     string          `db:"created_by"`
}

// IsUnpaid indica si el movimiento sigue impago. Estado vacío o desconocido cuenta como pagado.
func (m *Movement) IsUnpaid() bool {
	return NormalizePaymentStatus(m.PaymentStatus) == StatusUnpaid
}

// NormalizeDirection acepta el código o las etiquetas históricas ("Ingreso (Compra)", "Egreso (Venta)").
// Devuelve "" si no se reconoce.
func NormalizeDirection(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "in", strings.HasPrefix(v, "ingreso"), v == "compra":
		return DirectionIn
	case v == "out", strings.HasPrefix(v, "egreso"), v == "venta":
		return DirectionOut
	}
	return ""
}

// NormalizePaymentStatus: "impago"/"unpaid" -> IMPAGO; cualquier otro valor (incluido vacío) -> PAGADO.
func NormalizePaymentStatus(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "impago", "unpaid":
		return StatusUnpaid
	}
	return StatusPaid
}

// ValidPaymentStatus indica si s es un estado explícito reconocido.
func ValidPaymentStatus(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pagado", "paid", "impago", "unpaid":
		return true
	}
	return false
}

// NormalizePaymentMethod acepta el código o la etiqueta ("Efectivo", "A cuenta", "Cheque", "Otros productos").
func NormalizePaymentMethod(s string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.ReplaceAll(v, " ", "_")
	switch v {
	case PaymentMethodCash, PaymentMethodAccount, PaymentMethodCheck, PaymentMethodProducts:
		return v
	}
	return ""
}
