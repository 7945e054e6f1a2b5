package flights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lmonteiro91/aeroportal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListByOrigin(ctx context.Context, airportID int64) ([]domain.Flight, error) {
	args := m.Called(ctx, airportID)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListByDestination(ctx context.Context, airportID int64) ([]domain.Flight, error) {
	args := m.Called(ctx, airportID)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListByDepartureDate(ctx context.Context, day time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, day)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) ListWithDetails(ctx context.Context) ([]domain.FlightDetails, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightDetails), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFlightRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	args := m.Called(ctx, id, status)
	return args.Bool(0), args.Error(1)
}

func (m *MockFlightRepository) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.FlightDetails, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.FlightDetails), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.FlightDetails) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func sampleFlights() []domain.FlightDetails {
	return []domain.FlightDetails{
		{
			Flight: domain.Flight{
				ID:                   4,
				OriginAirportID:      1,
				DestinationAirportID: 2,
				AircraftID:           3,
				DepartureTime:        time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
				ArrivalTime:          time.Date(2025, 3, 10, 10, 30, 0, 0, time.UTC),
				Status:               "Programado",
			},
			OriginAirport:      "Guarulhos",
			OriginIATA:         "GRU",
			DestinationAirport: "Galeão",
			DestinationIATA:    "GIG",
			AircraftModel:      "A320",
			AirlineName:        "Azul",
		},
	}
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(([]domain.FlightDetails)(nil), nil).Once()
	mockRepo.On("ListWithDetails", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(flights, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)

	mockCache.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "ListWithDetails")
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestFlightService_List_CacheError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	flights := sampleFlights()

	mockCache.On("GetFlights", ctx).Return(([]domain.FlightDetails)(nil), errors.New("cache error")).Once()
	mockRepo.On("ListWithDetails", ctx).Return(flights, nil).Once()
	mockCache.On("SetFlights", ctx, flights).Return(nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
}

func TestFlightService_List_RepositoryError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}

	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	expectedErr := errors.New("database error")

	mockCache.On("GetFlights", ctx).Return(([]domain.FlightDetails)(nil), nil).Once()
	mockRepo.On("ListWithDetails", ctx).Return([]domain.FlightDetails{}, expectedErr).Once()

	result, err := service.List(ctx)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, expectedErr, err)
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestFlightService_List_NoCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	flights := sampleFlights()

	mockRepo.On("ListWithDetails", ctx).Return(flights, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockRepo.AssertExpectations(t)
}

func TestFlightService_GetByID(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	flight := &domain.Flight{ID: 4, Status: "Programado"}

	mockRepo.On("GetByID", ctx, int64(4)).Return(flight, nil).Once()

	result, err := service.GetByID(ctx, 4)

	assert.NoError(t, err)
	assert.Equal(t, flight, result)
}

func TestFlightService_GetByID_NotFound(t *testing.T) {
	mockRepo := &MockFlightRepository{}

	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(999)).Return(nil, nil).Once()

	result, err := service.GetByID(ctx, 999)

	assert.NoError(t, err)
	assert.Nil(t, result)
}
