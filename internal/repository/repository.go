package repository

import (
	"context"

	"github.com/irds/vans-api/internal/domain"
)

// VanRepository define los métodos de acceso a las furgonetas
type VanRepository interface {
	// List devuelve toda la flota, la más reciente primero
	List(ctx context.Context) ([]*domain.Van, error)

	// GetByID devuelve una furgoneta por ID
	GetByID(ctx context.Context, id int64) (*domain.Van, error)

	// SearchByMatricula devuelve las furgonetas cuya matrícula contiene el texto
	// La comparación ignora mayúsculas/minúsculas
	SearchByMatricula(ctx context.Context, query string) ([]*domain.Van, error)

	// Filter devuelve las furgonetas que cumplen todos los predicados presentes
	Filter(ctx context.Context, filter *domain.VanFilter) ([]*domain.Van, error)

	// Create inserta una furgoneta nueva
	// Devuelve domain.ErrVanAlreadyExists si el VIN o la matrícula ya existen
	Create(ctx context.Context, van *domain.Van) error

	// Update aplica un parche parcial y sella updated_at
	// Solo escribe los campos presentes en patch
	Update(ctx context.Context, id int64, patch *VanPatch) error

	// Delete elimina la furgoneta; las averías caen en cascada
	Delete(ctx context.Context, id int64) error
}

// AveriaRepository define los métodos de acceso a las averías
type AveriaRepository interface {
	// List devuelve todas las averías, la más reciente primero
	List(ctx context.Context) ([]*domain.Averia, error)

	// GetByID devuelve una avería por ID
	GetByID(ctx context.Context, id int64) (*domain.Averia, error)

	// GetByVanID devuelve el historial de una furgoneta, el más reciente primero
	GetByVanID(ctx context.Context, vanID int64) ([]*domain.Averia, error)

	// Create inserta una avería nueva
	// Devuelve domain.ErrVanNotFound si la furgoneta referenciada no existe
	Create(ctx context.Context, averia *domain.Averia) error

	// Update aplica un parche parcial y sella updated_at
	// El parche nunca toca van_id
	Update(ctx context.Context, id int64, patch *AveriaPatch) error

	// Delete elimina la avería sin tocar la furgoneta
	Delete(ctx context.Context, id int64) error
}

// UserRepository define los métodos de acceso a las cuentas
// Camino de cuentas completas reservado para una futura ampliación
type UserRepository interface {
	// GetByEmail devuelve una cuenta por email
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create inserta una cuenta nueva
	Create(ctx context.Context, user *domain.User) error

	// UpdateLastSignedIn sella la hora del último acceso
	UpdateLastSignedIn(ctx context.Context, id int64) error
}
