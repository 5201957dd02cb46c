package service

import (
	"context"
	"time"

	"htcpcp/internal/models"
	"htcpcp/internal/repository"

	"github.com/google/uuid"
)

// BrewService is the brew state machine: the authoritative decision procedure
// for a BREW command.
type BrewService struct {
	pots      repository.PotRegistry
	history   repository.HistoryRepo
	validator *AdditionValidator
}

func NewBrewService(pots repository.PotRegistry, history repository.HistoryRepo, validator *AdditionValidator) *BrewService {
	if validator == nil {
		validator = NewAdditionValidator(nil)
	}
	return &BrewService{pots: pots, history: history, validator: validator}
}

// Brew runs the whole read-decide-mutate-record sequence inside the pot's
// critical section. Check order is fixed: wrong appliance (418) beats
// addition refusal (406) beats depletion (503) beats success (200) — a decaf
// request to a teapot is a teapot problem first.
//
// Every attempt is recorded, refusals included. An unknown pot id surfaces as
// ErrPotNotFound rather than a protocol outcome.
func (s *BrewService) Brew(ctx context.Context, potID string, cmd models.BrewCommand, additions models.Additions) (models.Outcome, error) {
	var out models.Outcome
	err := s.pots.Update(potID, func(p *models.Pot) error {
		out = s.decide(p, cmd, additions)
		rec := models.BrewRecord{
			ID:             uuid.NewString(),
			PotID:          p.ID,
			OccurredAt:     time.Now().UTC(),
			Additions:      additions,
			StatusCode:     out.StatusCode,
			ResultingState: p.State,
		}
		out.RecordID = rec.ID
		return s.history.Append(ctx, rec)
	})
	if err != nil {
		return models.Outcome{}, err
	}
	return out, nil
}

// decide applies the transition table to the pot. It mutates p only on
// success; every refusal leaves the pot exactly as it found it.
func (s *BrewService) decide(p *models.Pot, cmd models.BrewCommand, additions models.Additions) models.Outcome {
	// RFC 2324 §2.3.2 — a coffee command at a teapot is 418, unconditionally
	// and before anything else is inspected.
	if p.Kind == models.KindTeapot && cmd == models.CommandBrewCoffee {
		return models.Outcome{
			Kind:           models.OutcomeWrongAppliance,
			StatusCode:     StatusForOutcome(models.OutcomeWrongAppliance),
			Message:        "I'm a teapot",
			ResultingState: p.State,
		}
	}
	if p.Kind == models.KindCoffeePot && cmd == models.CommandBrewTea {
		rej := &models.Rejection{
			Reason: models.ReasonWrongBeverage,
			Detail: "a coffee pot cannot steep tea",
		}
		return models.Outcome{
			Kind:           models.OutcomeRefused,
			StatusCode:     StatusForOutcome(models.OutcomeRefused),
			Message:        rej.Detail,
			ResultingState: p.State,
			Rejection:      rej,
		}
	}

	if rej := s.validator.Validate(additions); rej != nil {
		return models.Outcome{
			Kind:           models.OutcomeRefused,
			StatusCode:     StatusForOutcome(models.OutcomeRefused),
			Message:        rej.Detail,
			ResultingState: p.State,
			Rejection:      rej,
		}
	}

	// An empty coffee pot is still a coffee pot; this check only runs once
	// kind and additions have confirmed the appliance would brew.
	if p.State == models.StateEmpty {
		return models.Outcome{
			Kind:           models.OutcomeDepleted,
			StatusCode:     StatusForOutcome(models.OutcomeDepleted),
			Message:        "Pot is empty. Please refill before brewing.",
			ResultingState: p.State,
		}
	}

	// Brew. The brewing phase is synchronous and collapses to ready within
	// this request; taking the last cup depletes the pot instead.
	p.Level--
	p.MilkPouring = additions.HasMilk()
	if p.Level <= 0 {
		p.Level = 0
		p.State = models.StateEmpty
	} else {
		p.State = models.StateReady
	}
	p.UpdatedAt = time.Now().UTC()

	msg := "Coffee is brewing."
	if cmd == models.CommandBrewTea {
		msg = "Tea is steeping."
	}
	return models.Outcome{
		Kind:           models.OutcomeBrewed,
		StatusCode:     StatusForOutcome(models.OutcomeBrewed),
		Message:        msg,
		ResultingState: p.State,
		MilkPouring:    p.MilkPouring,
	}
}

// StopMilk services WHEN (RFC 2324 §2.1.3): on a ready pot with milk still
// pouring it clears the flag; anything else is a graceful no-op. It never
// touches the transition table.
func (s *BrewService) StopMilk(ctx context.Context, potID string) (bool, models.PotState, error) {
	var (
		stopped bool
		state   models.PotState
	)
	err := s.pots.Update(potID, func(p *models.Pot) error {
		if p.State == models.StateReady && p.MilkPouring {
			p.MilkPouring = false
			p.UpdatedAt = time.Now().UTC()
			stopped = true
		}
		state = p.State
		return nil
	})
	if err != nil {
		return false, "", err
	}
	return stopped, state, nil
}
