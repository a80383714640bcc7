package dto

import "time"

// ClientRequest body para crear/actualizar clientes. Active nil = true al crear, sin cambio al actualizar.
type ClientRequest struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"` // CLIENTE | PROVEEDOR
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Notes   string `json:"notes"`
	Active  *bool  `json:"active,omitempty"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Notes     string    `json:"notes"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
