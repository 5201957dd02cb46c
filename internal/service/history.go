package service

import (
	"context"

	"htcpcp/internal/models"
	"htcpcp/internal/repository"
)

// HistoryService answers history queries. The registry gates existence: an
// unknown pot is ErrPotNotFound, a known pot with no brews is an empty list.
type HistoryService struct {
	pots    repository.PotRegistry
	history repository.HistoryRepo
}

func NewHistoryService(pots repository.PotRegistry, history repository.HistoryRepo) *HistoryService {
	return &HistoryService{pots: pots, history: history}
}

func (s *HistoryService) ForPot(ctx context.Context, potID string) ([]models.BrewRecord, error) {
	if _, err := s.pots.Lookup(potID); err != nil {
		return nil, err
	}
	return s.history.ListForPot(ctx, potID)
}
