package repository

import (
	"context"
	"database/sql"

	"htcpcp/internal/models"
)

// PotRegistry owns the canonical in-memory pot collection. Lookup and ListAll
// are pure reads; Update is the only mutator and runs its callback inside the
// pot's critical section.
type PotRegistry interface {
	Lookup(id string) (models.Pot, error)
	ListAll() []models.Pot
	Update(id string, fn func(*models.Pot) error) error
}

// HistoryRepo is the append-only brew audit log.
type HistoryRepo interface {
	Append(ctx context.Context, rec models.BrewRecord) error
	ListForPot(ctx context.Context, potID string) ([]models.BrewRecord, error)
	CountForPot(ctx context.Context, potID string) (int, error)
}

type Repository struct {
	Pots    PotRegistry
	History HistoryRepo
}

func NewRepository(db *sql.DB, seed []models.Pot) *Repository {
	return &Repository{
		Pots:    NewPotMemory(seed),
		History: NewHistorySQLite(db),
	}
}
