package flights

import (
	"context"

	"github.com/lmonteiro91/aeroportal/internal/domain"
	"github.com/lmonteiro91/aeroportal/internal/repository"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.FlightDetails, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

// Cache holds a TTL'd snapshot of the detailed listing. A nil cache
// means every request goes to the database.
type Cache interface {
	GetFlights(ctx context.Context) ([]domain.FlightDetails, error)
	SetFlights(ctx context.Context, flights []domain.FlightDetails) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache Cache
}

func NewFlightService(repo repository.FlightRepository, cache Cache) *FlightService {
	return &FlightService{repo: repo, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.FlightDetails, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.ListWithDetails(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetFlights(ctx, flights)
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
