package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmonteiro91/aeroportal/internal/domain"
)

type BaggageRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Baggage, error)
	GetByIDWithDetails(ctx context.Context, id int64) (*domain.BaggageDetails, error)
	List(ctx context.Context) ([]domain.Baggage, error)
	ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Baggage, error)
	ListByFlight(ctx context.Context, flightID int64) ([]domain.Baggage, error)
	Create(ctx context.Context, b *domain.Baggage) error
	Update(ctx context.Context, b *domain.Baggage) error
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGBaggageRepository struct {
	db *pgxpool.Pool
}

func NewBaggageRepository(db *pgxpool.Pool) BaggageRepository {
	return &PGBaggageRepository{db: db}
}

const baggageColumns = `id, id_passageiro, id_voo, peso, status`

func (r *PGBaggageRepository) GetByID(ctx context.Context, id int64) (*domain.Baggage, error) {
	row := r.db.QueryRow(ctx, `SELECT `+baggageColumns+` FROM bagagem WHERE id=$1`, id)
	var b domain.Baggage
	if err := row.Scan(&b.ID, &b.PassengerID, &b.FlightID, &b.Weight, &b.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBaggageRepository) GetByIDWithDetails(ctx context.Context, id int64) (*domain.BaggageDetails, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, b.id_passageiro, b.id_voo, b.peso, b.status,
		       p.nome, p.cpf,
		       v.data_hora_partida, v.status,
		       ao.nome, ao.codigo_iata,
		       ad.nome, ad.codigo_iata
		FROM bagagem b
		JOIN passageiro p ON b.id_passageiro = p.id
		JOIN voo v ON b.id_voo = v.id
		JOIN aeroporto ao ON v.id_aeroporto_origem = ao.id
		JOIN aeroporto ad ON v.id_aeroporto_destino = ad.id
		WHERE b.id=$1`, id)

	var d domain.BaggageDetails
	if err := row.Scan(
		&d.ID, &d.PassengerID, &d.FlightID, &d.Weight, &d.Status,
		&d.PassengerName, &d.PassengerCPF,
		&d.DepartureTime, &d.FlightStatus,
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

func (r *PGBaggageRepository) List(ctx context.Context) ([]domain.Baggage, error) {
	return r.listWhere(ctx, `SELECT `+baggageColumns+` FROM bagagem ORDER BY id`)
}

func (r *PGBaggageRepository) ListByPassenger(ctx context.Context, passengerID int64) ([]domain.Baggage, error) {
	return r.listWhere(ctx, `SELECT `+baggageColumns+` FROM bagagem WHERE id_passageiro=$1`, passengerID)
}

func (r *PGBaggageRepository) ListByFlight(ctx context.Context, flightID int64) ([]domain.Baggage, error) {
	return r.listWhere(ctx, `SELECT `+baggageColumns+` FROM bagagem WHERE id_voo=$1`, flightID)
}

func (r *PGBaggageRepository) listWhere(ctx context.Context, query string, args ...any) ([]domain.Baggage, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bags := make([]domain.Baggage, 0)
	for rows.Next() {
		var b domain.Baggage
		if err := rows.Scan(&b.ID, &b.PassengerID, &b.FlightID, &b.Weight, &b.Status); err != nil {
			return nil, err
		}
		bags = append(bags, b)
	}
	return bags, rows.Err()
}

func (r *PGBaggageRepository) Create(ctx context.Context, b *domain.Baggage) error {
	return r.db.QueryRow(ctx, `INSERT INTO bagagem (id_passageiro, id_voo, peso, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`, b.PassengerID, b.FlightID, b.Weight, b.Status).Scan(&b.ID)
}

func (r *PGBaggageRepository) Update(ctx context.Context, b *domain.Baggage) error {
	_, err := r.db.Exec(ctx, `UPDATE bagagem SET peso=$1, status=$2 WHERE id=$3`, b.Weight, b.Status, b.ID)
	return err
}

func (r *PGBaggageRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE bagagem SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGBaggageRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bagagem WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

var _ BaggageRepository = (*PGBaggageRepository)(nil)
