package service

import (
	"context"
	"time"

	"htcpcp/internal/logger"
	"htcpcp/internal/models"
	"htcpcp/internal/repository"
)

// MonitorService periodically logs a registry sweep: how many pots exist, how
// many have run dry and how many are still pouring milk. Purely
// observational; it never mutates a pot.
type MonitorService struct {
	pots repository.PotRegistry
	log  *logger.Logger
}

func NewMonitorService(pots repository.PotRegistry, log *logger.Logger) *MonitorService {
	return &MonitorService{pots: pots, log: log}
}

// Run ticks at the given interval until ctx is canceled.
func (s *MonitorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			total, empty, pouring := s.sweep()
			if s.log != nil {
				s.log.Infow("registry_sweep",
					"pots", total,
					"empty", empty,
					"milk_pouring", pouring,
				)
			}
		}
	}
}

// sweep counts the registry's current condition.
func (s *MonitorService) sweep() (total, empty, pouring int) {
	pots := s.pots.ListAll()
	for _, p := range pots {
		if p.State == models.StateEmpty {
			empty++
		}
		if p.MilkPouring {
			pouring++
		}
	}
	return len(pots), empty, pouring
}
