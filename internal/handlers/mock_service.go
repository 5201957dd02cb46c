package handlers

import (
	"context"
	"time"

	"htcpcp/internal/models"
	"htcpcp/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockBrewer struct {
	out models.Outcome
	err error

	stopStopped bool
	stopState   models.PotState
	stopErr     error

	brewCalls     int
	lastPotID     string
	lastCmd       models.BrewCommand
	lastAdditions models.Additions
	stopCalls     int
}

func (m *mockBrewer) Brew(ctx context.Context, potID string, cmd models.BrewCommand, additions models.Additions) (models.Outcome, error) {
	m.brewCalls++
	m.lastPotID = potID
	m.lastCmd = cmd
	m.lastAdditions = additions
	return m.out, m.err
}

func (m *mockBrewer) StopMilk(ctx context.Context, potID string) (bool, models.PotState, error) {
	m.stopCalls++
	m.lastPotID = potID
	return m.stopStopped, m.stopState, m.stopErr
}

type mockMonitoring struct {
	snap     models.PotSnapshot
	snapErr  error
	registry []models.PotSnapshot
	regErr   error
}

func (m *mockMonitoring) Status(ctx context.Context, potID string) (models.PotSnapshot, error) {
	return m.snap, m.snapErr
}

func (m *mockMonitoring) Registry(ctx context.Context) ([]models.PotSnapshot, error) {
	return m.registry, m.regErr
}

type mockHistory struct {
	records []models.BrewRecord
	err     error
}

func (m *mockHistory) ForPot(ctx context.Context, potID string) ([]models.BrewRecord, error) {
	return m.records, m.err
}

type mockAdditions struct {
	vocab models.AdditionVocabulary
	err   error
}

func (m *mockAdditions) Vocabulary(potID string) (models.AdditionVocabulary, error) {
	return m.vocab, m.err
}

func (m *mockAdditions) Keys() []string {
	keys := make([]string, 0, len(m.vocab))
	for k := range m.vocab {
		keys = append(keys, k)
	}
	return keys
}

type mockMonitor struct{}

func (m *mockMonitor) Run(ctx context.Context, tick time.Duration) {}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	if s.Monitor == nil {
		s.Monitor = &mockMonitor{}
	}
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
