// Package memory implementa los repositorios en memoria (tests y STORAGE=memory).
package memory

import (
	"github.com/jhoicas/cueros-api/internal/domain/repository"
)

// NewRepositories construye un juego de repositorios vacíos.
func NewRepositories() repository.Set {
	return repository.Set{
		Movements: NewMovementRepository(),
		Clients:   NewClientRepository(),
		Payments:  NewAccountPaymentRepository(),
		Users:     NewUserRepository(),
	}
}
