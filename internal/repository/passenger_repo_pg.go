package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmonteiro91/aeroportal/internal/domain"
)

type PassengerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Passenger, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Passenger, error)
	GetByEmail(ctx context.Context, email string) (*domain.Passenger, error)
	List(ctx context.Context) ([]domain.Passenger, error)
	Create(ctx context.Context, p *domain.Passenger) error
	Update(ctx context.Context, p *domain.Passenger) error
	Delete(ctx context.Context, id int64) (bool, error)
}

type PGPassengerRepository struct {
	db *pgxpool.Pool
}

func NewPassengerRepository(db *pgxpool.Pool) PassengerRepository {
	return &PGPassengerRepository{db: db}
}

const passengerColumns = `id, nome, cpf, passaporte, telefone, email`

func (r *PGPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passageiro WHERE id=$1`, id)
	return scanPassenger(row)
}

func (r *PGPassengerRepository) GetByCPF(ctx context.Context, cpf string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passageiro WHERE cpf=$1`, cpf)
	return scanPassenger(row)
}

func (r *PGPassengerRepository) GetByEmail(ctx context.Context, email string) (*domain.Passenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+passengerColumns+` FROM passageiro WHERE email=$1`, email)
	return scanPassenger(row)
}

func (r *PGPassengerRepository) List(ctx context.Context) ([]domain.Passenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+passengerColumns+` FROM passageiro ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	passengers := make([]domain.Passenger, 0)
	for rows.Next() {
		var p domain.Passenger
		if err := rows.Scan(&p.ID, &p.Name, &p.CPF, &p.Passport, &p.Phone, &p.Email); err != nil {
			return nil, err
		}
		passengers = append(passengers, p)
	}
	return passengers, rows.Err()
}

func (r *PGPassengerRepository) Create(ctx context.Context, p *domain.Passenger) error {
	return r.db.QueryRow(ctx, `INSERT INTO passageiro (nome, cpf, passaporte, telefone, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`, p.Name, p.CPF, p.Passport, p.Phone, p.Email).Scan(&p.ID)
}

// Update replaces every field except the CPF, which is immutable once
// the passenger exists.
func (r *PGPassengerRepository) Update(ctx context.Context, p *domain.Passenger) error {
	_, err := r.db.Exec(ctx, `UPDATE passageiro SET nome=$1, passaporte=$2, telefone=$3, email=$4 WHERE id=$5`,
		p.Name, p.Passport, p.Phone, p.Email, p.ID)
	return err
}

func (r *PGPassengerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM passageiro WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func scanPassenger(row pgx.Row) (*domain.Passenger, error) {
	var p domain.Passenger
	if err := row.Scan(&p.ID, &p.Name, &p.CPF, &p.Passport, &p.Phone, &p.Email); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

var _ PassengerRepository = (*PGPassengerRepository)(nil)
