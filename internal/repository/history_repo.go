package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"htcpcp/internal/models"

	"github.com/google/uuid"
)

// HistorySQLite keeps brew records in sqlite. The default deployment points
// it at an in-memory database, so history lives exactly as long as the
// process.
type HistorySQLite struct {
	db *sql.DB
}

func NewHistorySQLite(db *sql.DB) *HistorySQLite { return &HistorySQLite{db: db} }

const (
	insertRecordSQL = `
		INSERT INTO brew_records (id, pot_id, occurred_at, additions, status_code, resulting_state)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	// rowid breaks ties between records in the same timestamp tick, keeping
	// per-pot order strictly chronological.
	selectRecordsSQL = `
		SELECT id, pot_id, occurred_at, additions, status_code, resulting_state
		FROM brew_records WHERE pot_id = ? ORDER BY occurred_at ASC, rowid ASC
	`

	countRecordsSQL = `SELECT COUNT(*) FROM brew_records WHERE pot_id = ?`
)

// Append inserts a record. Missing ID or OccurredAt are filled in.
func (r *HistorySQLite) Append(ctx context.Context, rec models.BrewRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.OccurredAt.IsZero() {
		rec.OccurredAt = time.Now().UTC()
	} else {
		rec.OccurredAt = rec.OccurredAt.UTC()
	}

	var additionsPtr *string
	if len(rec.Additions) > 0 {
		if b, err := json.Marshal(rec.Additions); err == nil {
			s := string(b)
			additionsPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertRecordSQL,
		rec.ID,
		rec.PotID,
		rec.OccurredAt,
		additionsPtr,
		rec.StatusCode,
		string(rec.ResultingState),
	)
	return err
}

// ListForPot returns the pot's records in chronological order. An unknown pot
// simply has no records here; existence checks belong to the registry.
func (r *HistorySQLite) ListForPot(ctx context.Context, potID string) ([]models.BrewRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectRecordsSQL, potID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.BrewRecord, 0, 16)
	for rows.Next() {
		var rec models.BrewRecord
		var state string
		var additionsStr sql.NullString
		if err := rows.Scan(&rec.ID, &rec.PotID, &rec.OccurredAt, &additionsStr, &rec.StatusCode, &state); err != nil {
			return nil, err
		}
		rec.OccurredAt = rec.OccurredAt.UTC()
		rec.ResultingState = models.PotState(state)
		if additionsStr.Valid && additionsStr.String != "" {
			var adds models.Additions
			if err := json.Unmarshal([]byte(additionsStr.String), &adds); err == nil {
				rec.Additions = adds
			}
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// CountForPot returns how many brew attempts the pot has seen.
func (r *HistorySQLite) CountForPot(ctx context.Context, potID string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, countRecordsSQL, potID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
