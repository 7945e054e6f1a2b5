package baggage

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/lmonteiro91/aeroportal/internal/domain"
	"github.com/lmonteiro91/aeroportal/internal/kafka"
	"github.com/lmonteiro91/aeroportal/internal/repository"
)

type BaggageUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Baggage, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type RegisterInput struct {
	PassengerID int64   `json:"idPassageiro"`
	FlightID    int64   `json:"idVoo"`
	Weight      float64 `json:"peso"`
}

type BaggageService struct {
	baggage            repository.BaggageRepository
	passengers         repository.PassengerRepository
	flights            repository.FlightRepository
	producer           Producer
	baggageTopic       string
	notificationsTopic string
}

type BaggageServiceOption func(*BaggageService)

func WithNotificationsTopic(topic string) BaggageServiceOption {
	return func(s *BaggageService) {
		s.notificationsTopic = topic
	}
}

func NewBaggageService(
	baggage repository.BaggageRepository,
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	producer Producer,
	baggageTopic string,
	opts ...BaggageServiceOption,
) *BaggageService {
	service := &BaggageService{
		baggage:      baggage,
		passengers:   passengers,
		flights:      flights,
		producer:     producer,
		baggageTopic: baggageTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Register checks in a bag for an existing passenger on an existing
// flight. Duplicate registrations for the same pair are allowed: a
// passenger may check any number of bags.
func (s *BaggageService) Register(ctx context.Context, input RegisterInput) (*domain.Baggage, error) {
	passenger, err := s.passengers.GetByID(ctx, input.PassengerID)
	if err != nil {
		return nil, err
	}
	if passenger == nil {
		return nil, domain.ErrPassengerNotFound
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, domain.ErrFlightNotFound
	}

	bag := &domain.Baggage{
		PassengerID: input.PassengerID,
		FlightID:    input.FlightID,
		Weight:      input.Weight,
		Status:      domain.BaggageStatusRegistered,
	}
	if err := s.baggage.Create(ctx, bag); err != nil {
		return nil, err
	}

	s.publish(ctx, "baggage_registered", bag, passenger.Email)
	return bag, nil
}

// UpdateStatus applies an arbitrary status string to an existing bag.
func (s *BaggageService) UpdateStatus(ctx context.Context, id int64, status string) error {
	bag, err := s.baggage.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if bag == nil {
		return domain.ErrBaggageNotFound
	}

	updated, err := s.baggage.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	if !updated {
		// The bag was deleted between the existence check and the update.
		return domain.ErrUpdateFailed
	}

	bag.Status = status
	if s.producer != nil && s.baggageTopic != "" {
		email := ""
		if passenger, err := s.passengers.GetByID(ctx, bag.PassengerID); err == nil && passenger != nil {
			email = passenger.Email
		}
		s.publish(ctx, "baggage_status_updated", bag, email)
	}
	return nil
}

// publish is best-effort: a broker fault must never fail the request
// that triggered the event.
func (s *BaggageService) publish(ctx context.Context, eventType string, bag *domain.Baggage, email string) {
	if s.producer == nil || s.baggageTopic == "" {
		return
	}
	event := kafka.BaggageEvent{
		EventID:     uuid.NewString(),
		Type:        eventType,
		BaggageID:   bag.ID,
		PassengerID: bag.PassengerID,
		FlightID:    bag.FlightID,
		Weight:      bag.Weight,
		Status:      bag.Status,
		Email:       email,
		OccurredAt:  time.Now(),
	}
	if err := s.producer.Publish(ctx, s.baggageTopic, event.EventID, event); err != nil {
		log.Printf("failed to publish %s event for baggage %d: %v", eventType, bag.ID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.EventID, event); err != nil {
			log.Printf("failed to publish %s notification for baggage %d: %v", eventType, bag.ID, err)
		}
	}
}

var _ BaggageUseCase = (*BaggageService)(nil)
