package averia

import (
	"context"
	"errors"
	"fmt"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/repository"
)

// Service contiene la lógica de negocio de las averías
type Service struct {
	averiaRepo repository.AveriaRepository
	vanRepo    repository.VanRepository
	logger     logger.Logger
}

// NewService crea el servicio de averías
func NewService(
	averiaRepo repository.AveriaRepository,
	vanRepo repository.VanRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		averiaRepo: averiaRepo,
		vanRepo:    vanRepo,
		logger:     logger,
	}
}

// List devuelve todas las averías, la más reciente primero
func (s *Service) List(ctx context.Context) ([]*domain.Averia, error) {
	return s.averiaRepo.List(ctx)
}

// GetByID devuelve una avería por ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Averia, error) {
	return s.averiaRepo.GetByID(ctx, id)
}

// GetByVanID devuelve el historial de averías de una furgoneta
func (s *Service) GetByVanID(ctx context.Context, vanID int64) ([]*domain.Averia, error) {
	if vanID <= 0 {
		return nil, domain.ErrInvalidAveriaData
	}
	return s.averiaRepo.GetByVanID(ctx, vanID)
}

// Create da de alta una avería
// Primero comprueba que la furgoneta existe para devolver un not-found
// preciso; la comprobación y el insert no van en transacción y la FK
// del esquema cubre la ventana en la que la furgoneta pudiera borrarse
func (s *Service) Create(ctx context.Context, req *CreateAveriaRequest) (*domain.Averia, error) {
	averia, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	if _, err := s.vanRepo.GetByID(ctx, averia.VanID); err != nil {
		if errors.Is(err, domain.ErrVanNotFound) {
			s.logger.Warn("Averia rejected: van not found", map[string]interface{}{
				"van_id": averia.VanID,
			})
			return nil, domain.ErrVanNotFound
		}
		return nil, fmt.Errorf("failed to check van: %w", err)
	}

	if err := s.averiaRepo.Create(ctx, averia); err != nil {
		if errors.Is(err, domain.ErrVanNotFound) {
			return nil, err
		}
		s.logger.Error("Failed to create averia", map[string]interface{}{
			"van_id": averia.VanID,
			"error":  err.Error(),
		})
		return nil, fmt.Errorf("failed to create averia: %w", err)
	}

	s.logger.Info("Averia created", map[string]interface{}{
		"averia_id": averia.ID,
		"van_id":    averia.VanID,
	})

	return averia, nil
}

// Update aplica un parche parcial a una avería
func (s *Service) Update(ctx context.Context, id int64, req *UpdateAveriaRequest) error {
	if id <= 0 {
		return domain.ErrInvalidAveriaData
	}

	patch, err := req.ToPatch()
	if err != nil {
		return err
	}

	// Un parche vacío no escribe nada; solo comprobamos que existe
	if patch.IsEmpty() {
		_, err := s.averiaRepo.GetByID(ctx, id)
		return err
	}

	if err := s.averiaRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, domain.ErrAveriaNotFound) {
			return err
		}
		s.logger.Error("Failed to update averia", map[string]interface{}{
			"averia_id": id,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to update averia: %w", err)
	}

	return nil
}

// Delete elimina una avería sin tocar la furgoneta
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidAveriaData
	}

	if err := s.averiaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrAveriaNotFound) {
			return err
		}
		s.logger.Error("Failed to delete averia", map[string]interface{}{
			"averia_id": id,
			"error":     err.Error(),
		})
		return fmt.Errorf("failed to delete averia: %w", err)
	}

	return nil
}
