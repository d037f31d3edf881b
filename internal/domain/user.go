package domain

import "time"

// UserRole representa el rol de una cuenta
type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

// User - cuenta completa, reservada para una futura ampliación
// El acceso actual es por contraseña compartida; esta tabla se mantiene
// para no perder el camino de cuentas reales
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Nunca se devuelve en JSON
	Name         string    `json:"name"`
	Role         UserRole  `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}

// Validate comprueba la coherencia de los datos de la cuenta
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidUserData
	}
	if u.Role != RoleUser && u.Role != RoleAdmin {
		return ErrInvalidUserData
	}
	return nil
}

// Principal - identidad de la sesión actual
// Con contraseña compartida no hay más reclamaciones que "sesión válida"
type Principal struct {
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          UserRole  `json:"role"`
	Authenticated bool      `json:"authenticated"`
	IssuedAt      time.Time `json:"issued_at"`
}
