package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest body para POST/PUT /api/movements.
type MovementRequest struct {
	Direction     string          `json:"direction"` // IN | OUT (acepta "Ingreso (Compra)" / "Egreso (Venta)")
	Product       string          `json:"product"`
	Counterparty  string          `json:"counterparty"`
	Quantity      int             `json:"quantity"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDetail string          `json:"payment_detail"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	PaymentStatus string          `json:"payment_status"` // PAGADO | IMPAGO
}

// MovementFilterRequest filtros de query para listados y resumen.
type MovementFilterRequest struct {
	PaymentStatus string `query:"status"`
	Product       string `query:"product"`
	Counterparty  string `query:"counterparty"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID            string          `json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	Direction     string          `json:"direction"`
	Product       string          `json:"product"`
	Counterparty  string          `json:"counterparty"`
	Quantity      int             `json:"quantity"`
	WeightKg      decimal.Decimal `json:"weight_kg"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	NetAmount     decimal.Decimal `json:"net_amount"`
	TaxRate       decimal.Decimal `json:"tax_rate"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDetail string          `json:"payment_detail"`
	DepositAmount decimal.Decimal `json:"deposit_amount"`
	PaymentStatus string          `json:"payment_status"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// ValuationRequest body para POST /api/valuation.
type ValuationRequest struct {
	Quantity  int             `json:"quantity"`
	WeightKg  decimal.Decimal `json:"weight_kg"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

// ValuationResponse neto, total con IVA y promedio por unidad.
type ValuationResponse struct {
	Net        decimal.Decimal `json:"net"`
	Total      decimal.Decimal `json:"total"`
	AvgPerUnit decimal.Decimal `json:"avg_per_unit"`
}
