package service

import (
	"context"
	"testing"
	"time"

	"htcpcp/internal/models"
)

func TestMonitorSweep_Counts(t *testing.T) {
	empty := coffeePot("pot-2", 0)
	empty.State = models.StateEmpty
	pouring := coffeePot("pot-3", 5)
	pouring.State = models.StateReady
	pouring.MilkPouring = true

	m := NewMonitorService(newFakeRegistry(coffeePot("pot-1", 8), empty, pouring), nil)

	total, emptied, milk := m.sweep()
	if total != 3 || emptied != 1 || milk != 1 {
		t.Fatalf("sweep() = (%d, %d, %d), want (3, 1, 1)", total, emptied, milk)
	}
}

func TestMonitorRun_StopsOnCancel(t *testing.T) {
	m := NewMonitorService(newFakeRegistry(coffeePot("pot-1", 8)), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}
