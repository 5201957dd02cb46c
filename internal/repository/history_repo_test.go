package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"htcpcp/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestHistoryAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewHistorySQLite(db)

	// Generated id and timestamp are unknown; match args by position.
	mock.ExpectExec(regexp.QuoteMeta(`
		INSERT INTO brew_records (id, pot_id, occurred_at, additions, status_code, resulting_state)
		VALUES (?, ?, ?, ?, ?, ?)
	`)).
		WithArgs(sqlmock.AnyArg(), "pot-1", sqlmock.AnyArg(), sqlmock.AnyArg(), 200, "ready").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.BrewRecord{
		// ID empty -> repo generates
		// OccurredAt zero -> repo sets UTC now
		PotID:          "pot-1",
		Additions:      models.Additions{"milk-type": "Whole-milk"},
		StatusCode:     200,
		ResultingState: models.StateReady,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryAppend_NoAdditions_InsertsNull(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewHistorySQLite(db)

	mock.ExpectExec("INSERT INTO brew_records").
		WithArgs(sqlmock.AnyArg(), "kettle-1", sqlmock.AnyArg(), nil, 418, "idle").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.BrewRecord{
		PotID:          "kettle-1",
		StatusCode:     418,
		ResultingState: models.StateIdle,
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryAppend_DBError(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewHistorySQLite(db)

	mock.ExpectExec("INSERT INTO brew_records").
		WillReturnError(errors.New("down"))

	err := repo.Append(ctx(t), models.BrewRecord{PotID: "pot-1", StatusCode: 200, ResultingState: models.StateReady})
	if err == nil || !strings.Contains(err.Error(), "down") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryListForPot_ParsesAdditionsAndKeepsOrder(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewHistorySQLite(db)

	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	js, _ := json.Marshal(models.Additions{"milk-type": "Whole-milk"})

	rows := sqlmock.NewRows([]string{"id", "pot_id", "occurred_at", "additions", "status_code", "resulting_state"}).
		AddRow("r1", "pot-1", now, string(js), 200, "ready").
		AddRow("r2", "pot-1", now.Add(time.Minute), nil, 406, "ready")

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, pot_id, occurred_at, additions, status_code, resulting_state
		FROM brew_records WHERE pot_id = ? ORDER BY occurred_at ASC, rowid ASC
	`)).
		WithArgs("pot-1").
		WillReturnRows(rows)

	got, err := repo.ListForPot(ctx(t), "pot-1")
	if err != nil {
		t.Fatalf("ListForPot: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[0].ID != "r1" || got[1].ID != "r2" {
		t.Fatalf("unexpected order: %v, %v", got[0].ID, got[1].ID)
	}
	if got[0].Additions["milk-type"] != "Whole-milk" {
		t.Fatalf("additions not parsed: %#v", got[0].Additions)
	}
	if got[1].Additions != nil {
		t.Fatalf("expected nil additions, got %#v", got[1].Additions)
	}
	if got[0].StatusCode != 200 || got[1].StatusCode != 406 {
		t.Fatalf("unexpected status codes: %d, %d", got[0].StatusCode, got[1].StatusCode)
	}
	if got[0].ResultingState != models.StateReady {
		t.Fatalf("unexpected state: %s", got[0].ResultingState)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryListForPot_ScanError(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewHistorySQLite(db)

	rows := sqlmock.NewRows([]string{"id", "pot_id", "occurred_at", "additions", "status_code", "resulting_state"}).
		// occurred_at wrong type to force scan error
		AddRow("r1", "pot-1", 123, nil, 200, "ready")

	mock.ExpectQuery("SELECT id, pot_id, occurred_at").
		WillReturnRows(rows)

	if _, err := repo.ListForPot(ctx(t), "pot-1"); err == nil {
		t.Fatalf("expected scan error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryCountForPot(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)
	repo := NewHistorySQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM brew_records WHERE pot_id = ?`)).
		WithArgs("pot-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	n, err := repo.CountForPot(ctx(t), "pot-1")
	if err != nil {
		t.Fatalf("CountForPot: %v", err)
	}
	if n != 3 {
		t.Fatalf("want 3, got %d", n)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
