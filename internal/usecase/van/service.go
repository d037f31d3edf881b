package van

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/repository"
)

// Service contiene la lógica de negocio de la flota
type Service struct {
	vanRepo repository.VanRepository
	logger  logger.Logger
}

// NewService crea el servicio de furgonetas
func NewService(vanRepo repository.VanRepository, logger logger.Logger) *Service {
	return &Service{
		vanRepo: vanRepo,
		logger:  logger,
	}
}

// List devuelve toda la flota, la más reciente primero
func (s *Service) List(ctx context.Context) ([]*domain.Van, error) {
	return s.vanRepo.List(ctx)
}

// GetByID devuelve una furgoneta por ID
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Van, error) {
	return s.vanRepo.GetByID(ctx, id)
}

// Search busca furgonetas por subcadena de matrícula (sin distinguir mayúsculas)
// El límite de 1 a 100 se mide en caracteres, no en bytes
func (s *Service) Search(ctx context.Context, query string) ([]*domain.Van, error) {
	if n := utf8.RuneCountInString(query); n < 1 || n > 100 {
		return nil, domain.ErrInvalidSearchQuery
	}
	return s.vanRepo.SearchByMatricula(ctx, query)
}

// Filter devuelve las furgonetas que cumplen todos los predicados presentes
// Un filtro vacío devuelve la flota completa en el orden de List
func (s *Service) Filter(ctx context.Context, filter *domain.VanFilter) ([]*domain.Van, error) {
	if filter == nil {
		filter = &domain.VanFilter{}
	}
	return s.vanRepo.Filter(ctx, filter)
}

// Create da de alta una furgoneta
func (s *Service) Create(ctx context.Context, req *CreateVanRequest) (*domain.Van, error) {
	van, err := req.ToDomain()
	if err != nil {
		return nil, err
	}

	s.logger.Info("Creating new van", map[string]interface{}{
		"vin":       van.VIN,
		"matricula": van.Matricula,
	})

	if err := s.vanRepo.Create(ctx, van); err != nil {
		if errors.Is(err, domain.ErrVanAlreadyExists) {
			s.logger.Warn("Van already exists", map[string]interface{}{
				"vin":       van.VIN,
				"matricula": van.Matricula,
			})
			return nil, err
		}
		s.logger.Error("Failed to create van", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("failed to create van: %w", err)
	}

	s.logger.Info("Van created successfully", map[string]interface{}{
		"van_id": van.ID,
	})

	return van, nil
}

// Update aplica un parche parcial a una furgoneta
func (s *Service) Update(ctx context.Context, id int64, req *UpdateVanRequest) error {
	if id <= 0 {
		return domain.ErrInvalidVanData
	}

	patch, err := req.ToPatch()
	if err != nil {
		return err
	}

	// Un parche vacío no escribe nada; solo comprobamos que existe
	if patch.IsEmpty() {
		_, err := s.vanRepo.GetByID(ctx, id)
		return err
	}

	if err := s.vanRepo.Update(ctx, id, patch); err != nil {
		if errors.Is(err, domain.ErrVanAlreadyExists) || errors.Is(err, domain.ErrVanNotFound) {
			return err
		}
		s.logger.Error("Failed to update van", map[string]interface{}{
			"van_id": id,
			"error":  err.Error(),
		})
		return fmt.Errorf("failed to update van: %w", err)
	}

	return nil
}

// Delete elimina una furgoneta y, en cascada, todo su historial de averías
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidVanData
	}

	if err := s.vanRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrVanNotFound) {
			return err
		}
		s.logger.Error("Failed to delete van", map[string]interface{}{
			"van_id": id,
			"error":  err.Error(),
		})
		return fmt.Errorf("failed to delete van: %w", err)
	}

	s.logger.Info("Van deleted", map[string]interface{}{
		"van_id": id,
	})

	return nil
}
