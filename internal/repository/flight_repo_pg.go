package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmonteiro91/aeroportal/internal/domain"
)

type FlightRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	ListByOrigin(ctx context.Context, airportID int64) ([]domain.Flight, error)
	ListByDestination(ctx context.Context, airportID int64) ([]domain.Flight, error)
	ListByDepartureDate(ctx context.Context, day time.Time) ([]domain.Flight, error)
	ListWithDetails(ctx context.Context) ([]domain.FlightDetails, error)
	Create(ctx context.Context, f *domain.Flight) error
	Update(ctx context.Context, f *domain.Flight) error
	UpdateStatus(ctx context.Context, id int64, status string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

const flightColumns = `id, id_aeroporto_origem, id_aeroporto_destino, id_aeronave, data_hora_partida, data_hora_chegada, status`

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM voo WHERE id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.OriginAirportID, &f.DestinationAirportID, &f.AircraftID, &f.DepartureTime, &f.ArrivalTime, &f.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	return r.listWhere(ctx, `SELECT `+flightColumns+` FROM voo ORDER BY data_hora_partida`)
}

func (r *PGFlightRepository) ListByOrigin(ctx context.Context, airportID int64) ([]domain.Flight, error) {
	return r.listWhere(ctx, `SELECT `+flightColumns+` FROM voo WHERE id_aeroporto_origem=$1`, airportID)
}

func (r *PGFlightRepository) ListByDestination(ctx context.Context, airportID int64) ([]domain.Flight, error) {
	return r.listWhere(ctx, `SELECT `+flightColumns+` FROM voo WHERE id_aeroporto_destino=$1`, airportID)
}

func (r *PGFlightRepository) ListByDepartureDate(ctx context.Context, day time.Time) ([]domain.Flight, error) {
	return r.listWhere(ctx, `SELECT `+flightColumns+` FROM voo WHERE data_hora_partida::date=$1::date`, day)
}

func (r *PGFlightRepository) listWhere(ctx context.Context, query string, args ...any) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.OriginAirportID, &f.DestinationAirportID, &f.AircraftID, &f.DepartureTime, &f.ArrivalTime, &f.Status); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) ListWithDetails(ctx context.Context) ([]domain.FlightDetails, error) {
	rows, err := r.db.Query(ctx, `
		SELECT v.id, v.id_aeroporto_origem, v.id_aeroporto_destino, v.id_aeronave, v.data_hora_partida, v.data_hora_chegada, v.status,
		       ao.nome, ao.cidade, ao.pais, ao.codigo_iata,
		       ad.nome, ad.cidade, ad.pais, ad.codigo_iata,
		       a.modelo, ca.nome
		FROM voo v
		JOIN aeroporto ao ON v.id_aeroporto_origem = ao.id
		JOIN aeroporto ad ON v.id_aeroporto_destino = ad.id
		JOIN aeronave a ON v.id_aeronave = a.id
		JOIN companhia_aerea ca ON a.id_companhia = ca.id
		ORDER BY v.data_hora_partida`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.FlightDetails, 0)
	for rows.Next() {
		var d domain.FlightDetails
		if err := rows.Scan(
			&d.ID, &d.OriginAirportID, &d.DestinationAirportID, &d.AircraftID, &d.DepartureTime, &d.ArrivalTime, &d.Status,
			&d.OriginAirport, &d.OriginCity, &d.OriginCountry, &d.OriginIATA,
			&d.DestinationAirport, &d.DestinationCity, &d.DestinationCountry, &d.DestinationIATA,
			&d.AircraftModel, &d.AirlineName,
		); err != nil {
			return nil, err
		}
		flights = append(flights, d)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) Create(ctx context.Context, f *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO voo (id_aeroporto_origem, id_aeroporto_destino, id_aeronave, data_hora_partida, data_hora_chegada, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`, f.OriginAirportID, f.DestinationAirportID, f.AircraftID, f.DepartureTime, f.ArrivalTime, f.Status).Scan(&f.ID)
}

// Update rewrites the schedule fields only; the route and aircraft of
// an existing flight do not change.
func (r *PGFlightRepository) Update(ctx context.Context, f *domain.Flight) error {
	_, err := r.db.Exec(ctx, `UPDATE voo SET data_hora_partida=$1, data_hora_chegada=$2, status=$3 WHERE id=$4`,
		f.DepartureTime, f.ArrivalTime, f.Status, f.ID)
	return err
}

func (r *PGFlightRepository) UpdateStatus(ctx context.Context, id int64, status string) (bool, error) {
	cmd, err := r.db.Exec(ctx, `UPDATE voo SET status=$1 WHERE id=$2`, status, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGFlightRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM voo WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

var _ FlightRepository = (*PGFlightRepository)(nil)
