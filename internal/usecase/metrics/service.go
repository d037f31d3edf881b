package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/repository"
)

// Service calcula la instantánea de salud de la flota
// Sin caché: cada llamada recorre las dos colecciones completas; es una
// consulta poco frecuente, no un camino caliente
type Service struct {
	vanRepo    repository.VanRepository
	averiaRepo repository.AveriaRepository
	logger     logger.Logger

	// now se puede sustituir en tests para fijar el instante
	now func() time.Time
}

// NewService crea el agregador de métricas
func NewService(
	vanRepo repository.VanRepository,
	averiaRepo repository.AveriaRepository,
	logger logger.Logger,
) *Service {
	return &Service{
		vanRepo:    vanRepo,
		averiaRepo: averiaRepo,
		logger:     logger,
		now:        time.Now,
	}
}

// Dashboard calcula la instantánea del panel
// Una sola carga de cada colección; nada de consultas por furgoneta
func (s *Service) Dashboard(ctx context.Context) (*domain.DashboardMetrics, error) {
	vans, err := s.vanRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vans: %w", err)
	}

	averias, err := s.averiaRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load averias: %w", err)
	}

	now := s.now()
	today := domain.Today(now)
	windowEnd := today.AddDate(0, 0, domain.ITVExpiryWindowDays)

	m := &domain.DashboardMetrics{
		TotalVans:     len(vans),
		CompanyCounts: make(map[string]int),
		TypeCounts:    make(map[string]int),
	}

	for _, van := range vans {
		if van.Activa {
			m.ActivaVans++
		} else {
			m.InactivaVans++
		}
		if van.Averia {
			m.VansWithAveria++
		}

		// Sin fecha de ITV la furgoneta queda fuera de ambos conjuntos.
		// La ITV es una fecha de calendario guardada como medianoche UTC;
		// se reinterpreta en la zona del servidor para comparar días, no
		// instantes de zonas distintas
		if van.FechaITV != nil {
			itv := domain.DateIn(*van.FechaITV, now.Location())
			switch {
			case itv.Before(today):
				m.ITVExpiredVans++
			case !itv.After(windowEnd):
				// hoy <= itv <= hoy+30d, ambos extremos incluidos
				m.ITVExpiringVans++
			}
		}

		m.CompanyCounts[van.Empresa]++
		m.TypeCounts[van.Tipo]++
	}

	// "En taller" se deriva de la ausencia de fecha de salida,
	// no del flag AVERIA de la furgoneta; ambas señales pueden divergir
	for _, averia := range averias {
		if averia.EnTaller() {
			m.VansInWorkshop++
		}
	}

	return m, nil
}
