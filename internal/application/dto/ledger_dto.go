package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryResponse stock y caja agregados.
type SummaryResponse struct {
	StockUnits       int64           `json:"stock_units"`
	StockWeightKg    decimal.Decimal `json:"stock_weight_kg"`
	PayableUnpaid    decimal.Decimal `json:"payable_unpaid"`
	ReceivableUnpaid decimal.Decimal `json:"receivable_unpaid"`
	Collected        decimal.Decimal `json:"collected"`
	PaidOut          decimal.Decimal `json:"paid_out"`
	ExpectedCash     decimal.Decimal `json:"expected_cash"`
	AvgCostPerKg     decimal.Decimal `json:"avg_cost_per_kg"`
	// Degraded true cuando el almacén no respondió y los valores son cero.
	Degraded bool `json:"degraded,omitempty"`
}

// EntityBalanceResponse saldo de una contraparte.
type EntityBalanceResponse struct {
	Name             string          `json:"name"`
	Purchased        decimal.Decimal `json:"purchased"`
	Sold             decimal.Decimal `json:"sold"`
	PaidPurchases    decimal.Decimal `json:"paid_purchases"`
	CollectedSales   decimal.Decimal `json:"collected_sales"`
	PayableUnpaid    decimal.Decimal `json:"payable_unpaid"`
	ReceivableUnpaid decimal.Decimal `json:"receivable_unpaid"`
	AccountBalance   decimal.Decimal `json:"account_balance"`
	FinalBalance     decimal.Decimal `json:"final_balance"`
	Movements        int             `json:"movements"`
	Payments         int             `json:"payments"`
}

// StatementLineResponse línea del estado de cuenta.
type StatementLineResponse struct {
	Date     time.Time       `json:"date"`
	Kind     string          `json:"kind"`
	SourceID string          `json:"source_id"`
	Detail   string          `json:"detail"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
	Debit    decimal.Decimal `json:"debit"`
	Credit   decimal.Decimal `json:"credit"`
	Balance  decimal.Decimal `json:"balance"`
}

// StatementResponse estado de cuenta completo.
type StatementResponse struct {
	Name    string                  `json:"name"`
	Lines   []StatementLineResponse `json:"lines"`
	Total   decimal.Decimal         `json:"total"`
	Balance EntityBalanceResponse   `json:"balance"`
}

// RollupResponse resumen de todas las contrapartes.
type RollupResponse struct {
	Rows   []EntityBalanceResponse `json:"rows"`
	Totals EntityBalanceResponse   `json:"totals"`
}
