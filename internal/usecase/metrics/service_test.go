package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/repository"
	"github.com/stretchr/testify/assert"
)

// El panel sólo lee las listas completas; los stubs devuelven colecciones
// fijas y el resto de métodos no se usa
type stubVanRepo struct {
	vans []*domain.Van
	err  error
}

func (s *stubVanRepo) List(ctx context.Context) ([]*domain.Van, error) { return s.vans, s.err }
func (s *stubVanRepo) GetByID(ctx context.Context, id int64) (*domain.Van, error) {
	return nil, domain.ErrVanNotFound
}
func (s *stubVanRepo) SearchByMatricula(ctx context.Context, query string) ([]*domain.Van, error) {
	return nil, nil
}
func (s *stubVanRepo) Filter(ctx context.Context, filter *domain.VanFilter) ([]*domain.Van, error) {
	return nil, nil
}
func (s *stubVanRepo) Create(ctx context.Context, van *domain.Van) error { return nil }
func (s *stubVanRepo) Update(ctx context.Context, id int64, patch *repository.VanPatch) error {
	return nil
}
func (s *stubVanRepo) Delete(ctx context.Context, id int64) error { return nil }

type stubAveriaRepo struct {
	averias []*domain.Averia
	err     error
}

func (s *stubAveriaRepo) List(ctx context.Context) ([]*domain.Averia, error) {
	return s.averias, s.err
}
func (s *stubAveriaRepo) GetByID(ctx context.Context, id int64) (*domain.Averia, error) {
	return nil, domain.ErrAveriaNotFound
}
func (s *stubAveriaRepo) GetByVanID(ctx context.Context, vanID int64) ([]*domain.Averia, error) {
	return nil, nil
}
func (s *stubAveriaRepo) Create(ctx context.Context, averia *domain.Averia) error { return nil }
func (s *stubAveriaRepo) Update(ctx context.Context, id int64, patch *repository.AveriaPatch) error {
	return nil
}
func (s *stubAveriaRepo) Delete(ctx context.Context, id int64) error { return nil }

func newTestService(vans []*domain.Van, averias []*domain.Averia, now time.Time) *Service {
	svc := NewService(&stubVanRepo{vans: vans}, &stubAveriaRepo{averias: averias}, logger.NewNoop())
	svc.now = func() time.Time { return now }
	return svc
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestDashboardCounts(t *testing.T) {
	now := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)

	vans := []*domain.Van{
		{ID: 1, Activa: true, Averia: true, Empresa: "Acme", Tipo: "L2H2"},
		{ID: 2, Activa: true, Empresa: "Acme", Tipo: "L3H2"},
		{ID: 3, Activa: false, Empresa: "Beta", Tipo: "L2H2"},
	}

	svc := newTestService(vans, nil, now)
	m, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 3, m.TotalVans)
	assert.Equal(t, 2, m.ActivaVans)
	assert.Equal(t, 1, m.InactivaVans)
	assert.Equal(t, 1, m.VansWithAveria)
	assert.Equal(t, map[string]int{"Acme": 2, "Beta": 1}, m.CompanyCounts)
	assert.Equal(t, map[string]int{"L2H2": 2, "L3H2": 1}, m.TypeCounts)
}

func TestDashboardITVWindow(t *testing.T) {
	// Hoy es 2026-02-10; la ventana de aviso llega hasta 2026-03-12 incluido
	now := time.Date(2026, 2, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name         string
		fechaITV     *time.Time
		wantExpiring int
		wantExpired  int
	}{
		{"caduca hoy", datePtr(2026, 2, 10), 1, 0},
		{"caducó ayer", datePtr(2026, 2, 9), 0, 1},
		{"caduca en el límite de la ventana", datePtr(2026, 3, 12), 1, 0},
		{"caduca un día después de la ventana", datePtr(2026, 3, 13), 0, 0},
		{"sin fecha de itv", nil, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vans := []*domain.Van{
				{ID: 1, Activa: true, Empresa: "Acme", Tipo: "L2H2", FechaITV: tt.fechaITV},
			}

			svc := newTestService(vans, nil, now)
			m, err := svc.Dashboard(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.wantExpiring, m.ITVExpiringVans)
			assert.Equal(t, tt.wantExpired, m.ITVExpiredVans)
		})
	}
}

func TestDashboardITVAcrossTimezones(t *testing.T) {
	// Las columnas DATE llegan del almacén como medianoche UTC; la
	// clasificación compara días de calendario, así que la zona horaria
	// del servidor no debe mover ninguna furgoneta de conjunto

	t.Run("el límite de la ventana se respeta con desfase positivo", func(t *testing.T) {
		madrid := time.FixedZone("UTC+1", 3600)
		now := time.Date(2026, 2, 10, 14, 30, 0, 0, madrid)
		itv := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC) // hoy+30d

		vans := []*domain.Van{{ID: 1, Empresa: "Acme", Tipo: "L2H2", FechaITV: &itv}}

		svc := newTestService(vans, nil, now)
		m, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, m.ITVExpiringVans)
		assert.Equal(t, 0, m.ITVExpiredVans)
	})

	t.Run("caducar hoy no cuenta como caducada con desfase negativo", func(t *testing.T) {
		bogota := time.FixedZone("UTC-5", -5*3600)
		now := time.Date(2026, 2, 10, 14, 30, 0, 0, bogota)
		itv := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC) // mismo día

		vans := []*domain.Van{{ID: 1, Empresa: "Acme", Tipo: "L2H2", FechaITV: &itv}}

		svc := newTestService(vans, nil, now)
		m, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, m.ITVExpiringVans)
		assert.Equal(t, 0, m.ITVExpiredVans)
	})

	t.Run("ayer sigue siendo caducada con desfase negativo", func(t *testing.T) {
		bogota := time.FixedZone("UTC-5", -5*3600)
		now := time.Date(2026, 2, 10, 14, 30, 0, 0, bogota)
		itv := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)

		vans := []*domain.Van{{ID: 1, Empresa: "Acme", Tipo: "L2H2", FechaITV: &itv}}

		svc := newTestService(vans, nil, now)
		m, err := svc.Dashboard(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, m.ITVExpiringVans)
		assert.Equal(t, 1, m.ITVExpiredVans)
	})
}

func TestDashboardITVIgnoresTimeOfDay(t *testing.T) {
	// Una ITV que caduca hoy a medianoche sigue contando como "caduca hoy"
	// aunque la consulta llegue por la tarde
	now := time.Date(2026, 2, 10, 23, 59, 0, 0, time.UTC)
	itv := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	vans := []*domain.Van{{ID: 1, Empresa: "Acme", Tipo: "L2H2", FechaITV: &itv}}

	svc := newTestService(vans, nil, now)
	m, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, m.ITVExpiringVans)
	assert.Equal(t, 0, m.ITVExpiredVans)
}

func TestDashboardVansInWorkshop(t *testing.T) {
	now := time.Date(2026, 2, 10, 10, 0, 0, 0, time.UTC)
	salida := time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC)

	averias := []*domain.Averia{
		{ID: 1, VanID: 1, Causa: "motor", FechaAveria: now},                            // abierta
		{ID: 2, VanID: 2, Causa: "frenos", FechaAveria: now, FechaSalidaTaller: &salida}, // cerrada
		{ID: 3, VanID: 3, Causa: "embrague", FechaAveria: now},                         // abierta
	}

	// El flag AVERIA de la furgoneta y la fecha de salida pueden divergir:
	// el taller cuenta por fechas, el flag cuenta por sí mismo
	vans := []*domain.Van{
		{ID: 1, Empresa: "Acme", Tipo: "L2H2", Averia: true},
		{ID: 2, Empresa: "Acme", Tipo: "L2H2", Averia: true},
		{ID: 3, Empresa: "Acme", Tipo: "L2H2", Averia: false},
	}

	svc := newTestService(vans, averias, now)
	m, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 2, m.VansInWorkshop)
	assert.Equal(t, 2, m.VansWithAveria)
}

func TestDashboardEmptyFleet(t *testing.T) {
	svc := newTestService(nil, nil, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))
	m, err := svc.Dashboard(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 0, m.TotalVans)
	assert.NotNil(t, m.CompanyCounts)
	assert.NotNil(t, m.TypeCounts)
	assert.Empty(t, m.CompanyCounts)
}

func TestDashboardRepositoryError(t *testing.T) {
	svc := NewService(&stubVanRepo{err: domain.ErrUnavailable}, &stubAveriaRepo{}, logger.NewNoop())
	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}
