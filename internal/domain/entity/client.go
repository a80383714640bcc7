package entity

import (
	"strings"
	"time"
)

// Tipos de contraparte.
const (
	ClientKindCustomer = "CLIENTE"
	ClientKindSupplier = "PROVEEDOR"
)

// Client contraparte con nombre. Movimientos y pagos la referencian por Name, no por ID.
type Client struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Kind      string    `db:"kind"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Address   string    `db:"address"`
	Notes     string    `db:"notes"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NormalizeClientKind acepta "Cliente"/"Proveedor" en cualquier capitalización.
func NormalizeClientKind(s string) string {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case ClientKindCustomer:
		return ClientKindCustomer
	case ClientKindSupplier:
		return ClientKindSupplier
	}
	return ""
}
