package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ProtectedUsername usuario administrador inicial: no se elimina ni cambia de rol.
const ProtectedUsername = "admin"

// User representa un usuario del sistema.
type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"` // bcrypt
	Role         string    `db:"role"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// IsProtected indica si es el administrador inicial.
func (u *User) IsProtected() bool {
	return u.Username == ProtectedUsername
}

// ValidRole indica si el rol es admin o user.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
