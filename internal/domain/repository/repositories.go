package repository

// Set agrupa los repositorios de un backend (postgres o memoria).
type Set struct {
	Movements MovementRepository
	Clients   ClientRepository
	Payments  AccountPaymentRepository
	Users     UserRepository
}
