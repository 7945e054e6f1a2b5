package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmonteiro91/aeroportal/internal/domain"
)

type TicketRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	GetByIDWithDetails(ctx context.Context, id int64) (*domain.TicketDetails, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Ticket, error)
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Ticket, error)
	Create(ctx context.Context, t *domain.Ticket) error
	Update(ctx context.Context, t *domain.Ticket) error
	UpdatePaymentStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

const ticketColumns = `id, id_passageiro, id_voo, classe, assento, status_pagamento`

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM bilhete WHERE id=$1`, id)
	var t domain.Ticket
	if err := row.Scan(&t.ID, &t.PassengerID, &t.FlightID, &t.Class, &t.Seat, &t.PaymentStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGTicketRepository) GetByIDWithDetails(ctx context.Context, id int64) (*domain.TicketDetails, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, b.id_passageiro, b.id_voo, b.classe, b.assento, b.status_pagamento,
		       p.nome, p.cpf, p.email,
		       v.data_hora_partida, v.data_hora_chegada, v.status,
		       ao.nome, ao.codigo_iata,
		       ad.nome, ad.codigo_iata
		FROM bilhete b
		JOIN passageiro p ON b.id_passageiro = p.id
		JOIN voo v ON b.id_voo = v.id
		JOIN aeroporto ao ON v.id_aeroporto_origem = ao.id
		JOIN aeroporto ad ON v.id_aeroporto_destino = ad.id
		WHERE b.id=$1`, id)

	var d domain.TicketDetails
	if err := row.Scan(
		&d.ID, &d.PassengerID, &d.FlightID, &d.Class, &d.Seat, &d.PaymentStatus,
		&d.PassengerName, &d.PassengerCPF, &d.PassengerEmail,
		&d.DepartureTime, &d.ArrivalTime, &d.FlightStatus,
		&d.OriginAirport, &d.OriginIATA,
		&d.DestinationAirport, &d.DestinationIATA,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	return r.listWhere(ctx, `SELECT `+ticketColumns+` FROM bilhete ORDER BY id`)
}

func (r *PGTicketRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Ticket, error) {
	return r.listWhere(ctx, `SELECT `+ticketColumns+` FROM bilhete WHERE id_passageiro=$1`, passengerID)
}

func (r *PGTicketRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.Ticket, error) {
	return r.listWhere(ctx, `SELECT `+ticketColumns+` FROM bilhete WHERE id_voo=$1`, flightID)
}

func (r *PGTicketRepository) listWhere(ctx context.Context, query string, args ...any) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := rows.Scan(&t.ID, &t.PassengerID, &t.FlightID, &t.Class, &t.Seat, &t.PaymentStatus); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

func (r *PGTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	return r.db.QueryRow(ctx, `INSERT INTO bilhete (id_passageiro, id_voo, classe, assento, status_pagamento)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, t.PassengerID, t.FlightID, t.Class, t.Seat, t.PaymentStatus).Scan(&t.ID)
}

func (r *PGTicketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	_, err := r.db.Exec(ctx, `UPDATE bilhete SET classe=$1, assento=$2, status_pagamento=$3 WHERE id=$4`,
		t.Class, t.Seat, t.PaymentStatus, t.ID)
	return err
}

func (r *PGTicketRepository) UpdatePaymentStatus(ctx context.Context, id int64, status string) (bool, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE bilhete SET status_pagamento=$1 WHERE id=$2`, status, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGTicketRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bilhete WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

var _ TicketRepository = (*PGTicketRepository)(nil)
