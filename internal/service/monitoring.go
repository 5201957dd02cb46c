package service

import (
	"context"
	"fmt"

	"htcpcp/internal/models"
	"htcpcp/internal/repository"
)

// MonitoringService serves the read side: per-pot status and the full
// registry view. Pure reads, no transitions.
type MonitoringService struct {
	pots    repository.PotRegistry
	history repository.HistoryRepo
}

func NewMonitoringService(pots repository.PotRegistry, history repository.HistoryRepo) *MonitoringService {
	return &MonitoringService{pots: pots, history: history}
}

// Status returns the pot snapshot including its brew count.
func (s *MonitoringService) Status(ctx context.Context, potID string) (models.PotSnapshot, error) {
	pot, err := s.pots.Lookup(potID)
	if err != nil {
		return models.PotSnapshot{}, err
	}
	count, err := s.history.CountForPot(ctx, potID)
	if err != nil {
		return models.PotSnapshot{}, err
	}
	return snapshotOf(pot, count), nil
}

// Registry lists every pot in insertion order.
func (s *MonitoringService) Registry(ctx context.Context) ([]models.PotSnapshot, error) {
	pots := s.pots.ListAll()
	out := make([]models.PotSnapshot, 0, len(pots))
	for _, p := range pots {
		count, err := s.history.CountForPot(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, snapshotOf(p, count))
	}
	return out, nil
}

func snapshotOf(p models.Pot, brews int) models.PotSnapshot {
	return models.PotSnapshot{
		Pot:          p,
		LevelDisplay: fmt.Sprintf("%d/%d cups", p.Level, p.Capacity),
		BrewCount:    brews,
	}
}
