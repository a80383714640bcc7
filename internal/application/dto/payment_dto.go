package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountPaymentRequest body para POST /api/payments.
type AccountPaymentRequest struct {
	ClientName string          `json:"client_name"`
	Amount     decimal.Decimal `json:"amount"`
	Concept    string          `json:"concept"`
	Kind       string          `json:"kind"` // INGRESO | EGRESO
}

// AccountPaymentResponse salida de un pago a cuenta.
type AccountPaymentResponse struct {
	ID         string          `json:"id"`
	CreatedAt  time.Time       `json:"created_at"`
	ClientName string          `json:"client_name"`
	Amount     decimal.Decimal `json:"amount"`
	Concept    string          `json:"concept"`
	Kind       string          `json:"kind"`
	CreatedBy  string          `json:"created_by,omitempty"`
}

// AccountBalanceResponse saldo a cuenta de un cliente.
type AccountBalanceResponse struct {
	ClientName string          `json:"client_name"`
	Balance    decimal.Decimal `json:"balance"`
}
