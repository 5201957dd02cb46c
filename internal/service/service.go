package service

import (
	"context"
	"time"

	"htcpcp/internal/logger"
	"htcpcp/internal/models"
	"htcpcp/internal/repository"
)

// Brewer runs the brew state machine and the WHEN milk stop.
type Brewer interface {
	Brew(ctx context.Context, potID string, cmd models.BrewCommand, additions models.Additions) (models.Outcome, error)
	StopMilk(ctx context.Context, potID string) (stopped bool, state models.PotState, err error)
}

// Monitoring exposes read-only pot state.
type Monitoring interface {
	Status(ctx context.Context, potID string) (models.PotSnapshot, error)
	Registry(ctx context.Context) ([]models.PotSnapshot, error)
}

// History exposes the per-pot brew audit trail.
type History interface {
	ForPot(ctx context.Context, potID string) ([]models.BrewRecord, error)
}

// Additions exposes the accepted addition vocabulary.
type Additions interface {
	Vocabulary(potID string) (models.AdditionVocabulary, error)
	Keys() []string
}

// Monitor runs the background registry sweep. Stop via context cancellation
// in main() for graceful shutdown.
type Monitor interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services behind one wiring point.
type Service struct {
	Brewer
	Monitoring
	History
	Additions
	Monitor
}

func NewService(repos *repository.Repository, vocab models.AdditionVocabulary, log *logger.Logger) *Service {
	if vocab == nil {
		vocab = models.DefaultVocabulary()
	}
	validator := NewAdditionValidator(vocab)
	return &Service{
		Brewer:     NewBrewService(repos.Pots, repos.History, validator),
		Monitoring: NewMonitoringService(repos.Pots, repos.History),
		History:    NewHistoryService(repos.Pots, repos.History),
		Additions:  NewAdditionsService(repos.Pots, vocab),
		Monitor:    NewMonitorService(repos.Pots, log),
	}
}
