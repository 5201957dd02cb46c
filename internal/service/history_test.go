package service

import (
	"context"
	"errors"
	"testing"

	"htcpcp/internal/models"
)

func TestHistoryForPot(t *testing.T) {
	reg := newFakeRegistry(coffeePot("pot-1", 8))
	hist := &fakeHistory{records: []models.BrewRecord{
		{ID: "r1", PotID: "pot-1", StatusCode: 200},
		{ID: "r2", PotID: "kettle-1", StatusCode: 418},
	}}
	svc := NewHistoryService(reg, hist)

	got, err := svc.ForPot(context.Background(), "pot-1")
	if err != nil {
		t.Fatalf("ForPot: %v", err)
	}
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestHistoryForPot_UnknownPot(t *testing.T) {
	svc := NewHistoryService(newFakeRegistry(), &fakeHistory{})

	_, err := svc.ForPot(context.Background(), "percolator-9")
	if !errors.Is(err, models.ErrPotNotFound) {
		t.Fatalf("expected ErrPotNotFound, got %v", err)
	}
}

func TestHistoryForPot_EmptyIsNotAnError(t *testing.T) {
	reg := newFakeRegistry(coffeePot("pot-1", 8))
	svc := NewHistoryService(reg, &fakeHistory{})

	got, err := svc.ForPot(context.Background(), "pot-1")
	if err != nil {
		t.Fatalf("ForPot: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %+v", got)
	}
}
