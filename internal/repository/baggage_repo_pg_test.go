package repository

import (
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
)

func TestNewBaggageRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewBaggageRepository(pool)
	assert.NotNil(t, repo)
}
