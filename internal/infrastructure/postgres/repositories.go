package postgres

import "github.com/jhoicas/cueros-api/internal/domain/repository"

// NewRepositories construye todos los repositorios sobre el mismo Querier (pool o tx).
func NewRepositories(q Querier) repository.Set {
	return repository.Set{
		Movements: NewMovementRepository(q),
		Clients:   NewClientRepository(q),
		Payments:  NewAccountPaymentRepository(q),
		Users:     NewUserRepository(q),
	}
}
