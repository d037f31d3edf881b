package van

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVanRepository - mock del repositorio de furgonetas
type MockVanRepository struct {
	mock.Mock
}

func (m *MockVanRepository) List(ctx context.Context) ([]*domain.Van, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanRepository) GetByID(ctx context.Context, id int64) (*domain.Van, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanRepository) SearchByMatricula(ctx context.Context, query string) ([]*domain.Van, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanRepository) Filter(ctx context.Context, filter *domain.VanFilter) ([]*domain.Van, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanRepository) Create(ctx context.Context, van *domain.Van) error {
	args := m.Called(ctx, van)
	return args.Error(0)
}

func (m *MockVanRepository) Update(ctx context.Context, id int64, patch *repository.VanPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockVanRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validCreateRequest() *CreateVanRequest {
	return &CreateVanRequest{
		VIN:       "1FTBW2CM5HKA12345",
		Modelo:    "Ford Transit",
		Matricula: "1234-ABC",
		Tipo:      "L2H2",
		Empresa:   "Acme",
		Estado:    "OPERATIVA",
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("aplica los valores por defecto", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Van")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Van).ID = 7
			}).
			Return(nil)

		svc := NewService(repo, logger.NewNoop())
		v, err := svc.Create(ctx, validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, int64(7), v.ID)
		assert.True(t, v.Activa)
		assert.True(t, v.EstadoITV)
		assert.False(t, v.Averia)
		repo.AssertExpectations(t)
	})

	t.Run("normaliza el vin y la matrícula", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.Van) bool {
			return v.VIN == "1FTBW2CM5HKA12345" && v.Matricula == "1234-ABC"
		})).Return(nil)

		req := validCreateRequest()
		req.VIN = "1ftbw2cm5hka12345"
		req.Matricula = " 1234-abc "

		svc := NewService(repo, logger.NewNoop())
		_, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("parsea las fechas", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Van")).Return(nil)

		req := validCreateRequest()
		itv := "2026-03-15"
		req.FechaITV = &itv

		svc := NewService(repo, logger.NewNoop())
		v, err := svc.Create(ctx, req)

		assert.NoError(t, err)
		assert.NotNil(t, v.FechaITV)
		assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *v.FechaITV)
	})

	t.Run("fecha inválida no llega al almacén", func(t *testing.T) {
		repo := new(MockVanRepository)

		req := validCreateRequest()
		bad := "15/03/2026"
		req.FechaITV = &bad

		svc := NewService(repo, logger.NewNoop())
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, domain.ErrInvalidFecha)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("vin inválido no llega al almacén", func(t *testing.T) {
		repo := new(MockVanRepository)

		req := validCreateRequest()
		req.VIN = "ABC123"

		svc := NewService(repo, logger.NewNoop())
		_, err := svc.Create(ctx, req)

		assert.ErrorIs(t, err, domain.ErrInvalidVIN)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("clave natural duplicada devuelve conflicto", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrVanAlreadyExists)

		svc := NewService(repo, logger.NewNoop())
		_, err := svc.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, domain.ErrVanAlreadyExists)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("construye el parche con los campos presentes", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(p *repository.VanPatch) bool {
			return p.Matricula != nil && *p.Matricula == "5678-XYZ" &&
				p.Activa != nil && !*p.Activa &&
				p.VIN == nil && p.Modelo == nil
		})).Return(nil)

		matricula := " 5678-xyz "
		activa := false
		req := &UpdateVanRequest{Matricula: &matricula, Activa: &activa}

		svc := NewService(repo, logger.NewNoop())
		err := svc.Update(ctx, 3, req)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("vin inválido en el parche", func(t *testing.T) {
		repo := new(MockVanRepository)

		vin := "corto"
		req := &UpdateVanRequest{VIN: &vin}

		svc := NewService(repo, logger.NewNoop())
		err := svc.Update(ctx, 3, req)

		assert.ErrorIs(t, err, domain.ErrInvalidVIN)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("un null explícito vacía la fecha de ITV", func(t *testing.T) {
		var req UpdateVanRequest
		err := json.Unmarshal([]byte(`{"fecha_itv": null, "estado_itv": false}`), &req)
		assert.NoError(t, err)

		repo := new(MockVanRepository)
		repo.On("Update", mock.Anything, int64(3), mock.MatchedBy(func(p *repository.VanPatch) bool {
			return p.FechaITV.IsNull() &&
				p.EstadoITV != nil && !*p.EstadoITV &&
				!p.Observaciones.Present
		})).Return(nil)

		svc := NewService(repo, logger.NewNoop())
		assert.NoError(t, svc.Update(ctx, 3, &req))
		repo.AssertExpectations(t)
	})

	t.Run("parche vacío no escribe", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("GetByID", mock.Anything, int64(3)).Return(&domain.Van{ID: 3}, nil)

		svc := NewService(repo, logger.NewNoop())
		err := svc.Update(ctx, 3, &UpdateVanRequest{})

		assert.NoError(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("parche vacío sobre furgoneta inexistente", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("GetByID", mock.Anything, int64(3)).Return(nil, domain.ErrVanNotFound)

		svc := NewService(repo, logger.NewNoop())
		err := svc.Update(ctx, 3, &UpdateVanRequest{})

		assert.ErrorIs(t, err, domain.ErrVanNotFound)
	})

	t.Run("id inválido", func(t *testing.T) {
		svc := NewService(new(MockVanRepository), logger.NewNoop())
		err := svc.Update(ctx, 0, &UpdateVanRequest{})
		assert.ErrorIs(t, err, domain.ErrInvalidVanData)
	})

	t.Run("conflicto del almacén se propaga", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Update", mock.Anything, int64(3), mock.Anything).Return(domain.ErrVanAlreadyExists)

		matricula := "5678-XYZ"
		svc := NewService(repo, logger.NewNoop())
		err := svc.Update(ctx, 3, &UpdateVanRequest{Matricula: &matricula})

		assert.ErrorIs(t, err, domain.ErrVanAlreadyExists)
	})
}

func TestServiceSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("consulta válida", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("SearchByMatricula", mock.Anything, "ABC").Return([]*domain.Van{{ID: 1}}, nil)

		svc := NewService(repo, logger.NewNoop())
		vans, err := svc.Search(ctx, "ABC")

		assert.NoError(t, err)
		assert.Len(t, vans, 1)
	})

	t.Run("consulta vacía", func(t *testing.T) {
		svc := NewService(new(MockVanRepository), logger.NewNoop())
		_, err := svc.Search(ctx, "")
		assert.ErrorIs(t, err, domain.ErrInvalidSearchQuery)
	})

	t.Run("consulta demasiado larga", func(t *testing.T) {
		svc := NewService(new(MockVanRepository), logger.NewNoop())
		_, err := svc.Search(ctx, strings.Repeat("a", 101))
		assert.ErrorIs(t, err, domain.ErrInvalidSearchQuery)
	})

	t.Run("el límite cuenta caracteres, no bytes", func(t *testing.T) {
		// 100 caracteres multibyte son una consulta válida
		query := strings.Repeat("ñ", 100)

		repo := new(MockVanRepository)
		repo.On("SearchByMatricula", mock.Anything, query).Return([]*domain.Van{}, nil)

		svc := NewService(repo, logger.NewNoop())
		_, err := svc.Search(ctx, query)

		assert.NoError(t, err)
		repo.AssertExpectations(t)

		_, err = svc.Search(ctx, strings.Repeat("ñ", 101))
		assert.ErrorIs(t, err, domain.ErrInvalidSearchQuery)
	})
}

func TestServiceFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("filtro nil pasa como filtro vacío", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Filter", mock.Anything, mock.MatchedBy(func(f *domain.VanFilter) bool {
			return f.IsEmpty()
		})).Return([]*domain.Van{{ID: 1}, {ID: 2}}, nil)

		svc := NewService(repo, logger.NewNoop())
		vans, err := svc.Filter(ctx, nil)

		assert.NoError(t, err)
		assert.Len(t, vans, 2)
		repo.AssertExpectations(t)
	})

	t.Run("los predicados llegan al repositorio", func(t *testing.T) {
		empresa := "Acme"
		filter := &domain.VanFilter{Empresa: &empresa}

		repo := new(MockVanRepository)
		repo.On("Filter", mock.Anything, filter).Return([]*domain.Van{}, nil)

		svc := NewService(repo, logger.NewNoop())
		_, err := svc.Filter(ctx, filter)

		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("borrado correcto", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Delete", mock.Anything, int64(5)).Return(nil)

		svc := NewService(repo, logger.NewNoop())
		assert.NoError(t, svc.Delete(ctx, 5))
	})

	t.Run("furgoneta inexistente", func(t *testing.T) {
		repo := new(MockVanRepository)
		repo.On("Delete", mock.Anything, int64(5)).Return(domain.ErrVanNotFound)

		svc := NewService(repo, logger.NewNoop())
		assert.ErrorIs(t, svc.Delete(ctx, 5), domain.ErrVanNotFound)
	})
}
