package lookup

import (
	"context"
	"sort"
	"strconv"

	"github.com/lmonteiro91/aeroportal/internal/domain"
	"github.com/lmonteiro91/aeroportal/internal/repository"
)

// Lookup modes accepted by the portal. Reservation, purchase and
// e-ticket codes are all ticket IDs, so the three modes resolve the
// same way.
const (
	ModeDocument    = "documento"
	ModeReservation = "reserva"
	ModePurchase    = "compra"
	ModeETicket     = "eticket"

	DefaultMode = ModeReservation
)

type LookupUseCase interface {
	Search(ctx context.Context, mode, code string) (*Result, error)
}

// Result is the composite view served to the portal. Flight and Ticket
// may be nil; Baggage is always present, possibly empty.
type Result struct {
	Passenger *domain.Passenger     `json:"passageiro"`
	Flight    *domain.Flight        `json:"voo"`
	Ticket    *domain.TicketDetails `json:"bilhete"`
	Baggage   []domain.Baggage      `json:"bagagens"`
}

type LookupService struct {
	passengers repository.PassengerRepository
	flights    repository.FlightRepository
	tickets    repository.TicketRepository
	baggage    repository.BaggageRepository
}

func NewLookupService(
	passengers repository.PassengerRepository,
	flights repository.FlightRepository,
	tickets repository.TicketRepository,
	baggage repository.BaggageRepository,
) *LookupService {
	return &LookupService{
		passengers: passengers,
		flights:    flights,
		tickets:    tickets,
		baggage:    baggage,
	}
}

func (s *LookupService) Search(ctx context.Context, mode, code string) (*Result, error) {
	if code == "" {
		return nil, domain.ErrCodeRequired
	}
	if mode == "" {
		mode = DefaultMode
	}

	var (
		passenger *domain.Passenger
		flight    *domain.Flight
		ticket    *domain.TicketDetails
		err       error
	)

	switch mode {
	case ModeDocument:
		passenger, flight, ticket, err = s.searchByDocument(ctx, code)
	case ModeReservation, ModePurchase, ModeETicket:
		passenger, flight, ticket, err = s.searchByTicketCode(ctx, code)
	default:
		return nil, domain.ErrInvalidLookupType
	}
	if err != nil {
		return nil, err
	}

	if passenger == nil {
		return nil, domain.ErrPassengerNotFound
	}

	// Bags are fetched for the whole passenger, not just the resolved
	// flight. The portal has always shown them that way.
	bags := make([]domain.Baggage, 0)
	if flight != nil {
		bags, err = s.baggage.ListByPassenger(ctx, passenger.ID)
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		Passenger: passenger,
		Flight:    flight,
		Ticket:    ticket,
		Baggage:   bags,
	}, nil
}

// searchByDocument treats the code as a CPF and resolves the
// passenger's most recent ticket, i.e. the one with the largest ID.
func (s *LookupService) searchByDocument(ctx context.Context, cpf string) (*domain.Passenger, *domain.Flight, *domain.TicketDetails, error) {
	passenger, err := s.passengers.GetByCPF(ctx, cpf)
	if err != nil || passenger == nil {
		return nil, nil, nil, err
	}

	tickets, err := s.tickets.ListByPassenger(ctx, passenger.ID)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(tickets) == 0 {
		return passenger, nil, nil, nil
	}

	sort.Slice(tickets, func(i, j int) bool { return tickets[i].ID > tickets[j].ID })

	ticket, err := s.tickets.GetByIDWithDetails(ctx, tickets[0].ID)
	if err != nil || ticket == nil {
		return passenger, nil, nil, err
	}

	flight, err := s.flights.GetByID(ctx, ticket.FlightID)
	if err != nil {
		return nil, nil, nil, err
	}
	return passenger, flight, ticket, nil
}

// searchByTicketCode treats the code as a ticket ID. A code that is
// not a number matches no ticket, same as an ID that does not exist.
func (s *LookupService) searchByTicketCode(ctx context.Context, code string) (*domain.Passenger, *domain.Flight, *domain.TicketDetails, error) {
	id, err := strconv.ParseInt(code, 10, 64)
	if err != nil {
		return nil, nil, nil, nil
	}

	ticket, err := s.tickets.GetByIDWithDetails(ctx, id)
	if err != nil || ticket == nil {
		return nil, nil, nil, err
	}

	passenger, err := s.passengers.GetByID(ctx, ticket.PassengerID)
	if err != nil {
		return nil, nil, nil, err
	}

	flight, err := s.flights.GetByID(ctx, ticket.FlightID)
	if err != nil {
		return nil, nil, nil, err
	}
	return passenger, flight, ticket, nil
}

var _ LookupUseCase = (*LookupService)(nil)
