package http

import (
	"context"
	"time"

	"github.com/irds/vans-api/internal/domain"
	"github.com/irds/vans-api/internal/pkg/session"
	"github.com/irds/vans-api/internal/usecase/auth"
	"github.com/irds/vans-api/internal/usecase/averia"
	"github.com/irds/vans-api/internal/usecase/van"
	"github.com/stretchr/testify/mock"
)

// MockVanService - mock del servicio de furgonetas
type MockVanService struct {
	mock.Mock
}

func (m *MockVanService) List(ctx context.Context) ([]*domain.Van, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanService) GetByID(ctx context.Context, id int64) (*domain.Van, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanService) Search(ctx context.Context, query string) ([]*domain.Van, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanService) Filter(ctx context.Context, filter *domain.VanFilter) ([]*domain.Van, error) {
	args := m.Called(ctx, filter)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanService) Create(ctx context.Context, req *van.CreateVanRequest) (*domain.Van, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*domain.Van), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVanService) Update(ctx context.Context, id int64, req *van.UpdateVanRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockVanService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAveriaService - mock del servicio de averías
type MockAveriaService struct {
	mock.Mock
}

func (m *MockAveriaService) List(ctx context.Context) ([]*domain.Averia, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Averia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAveriaService) GetByID(ctx context.Context, id int64) (*domain.Averia, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Averia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAveriaService) GetByVanID(ctx context.Context, vanID int64) ([]*domain.Averia, error) {
	args := m.Called(ctx, vanID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Averia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAveriaService) Create(ctx context.Context, req *averia.CreateAveriaRequest) (*domain.Averia, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*domain.Averia), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAveriaService) Update(ctx context.Context, id int64, req *averia.UpdateAveriaRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockAveriaService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMetricsService - mock del agregador de métricas
type MockMetricsService struct {
	mock.Mock
}

func (m *MockMetricsService) Dashboard(ctx context.Context) (*domain.DashboardMetrics, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.DashboardMetrics), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockAuthService - mock del servicio de autenticación
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*auth.LoginResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Verify(ctx context.Context, token string) (*session.Claims, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.(*session.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAuthService) Principal(ctx context.Context, claims *session.Claims) *domain.Principal {
	args := m.Called(ctx, claims)
	if v := args.Get(0); v != nil {
		return v.(*domain.Principal)
	}
	return nil
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) SessionTTL() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}
