package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"htcpcp/internal/models"
	"htcpcp/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

func dialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestWS_StreamsRegistrySnapshots(t *testing.T) {
	mon := &mockMonitoring{registry: []models.PotSnapshot{
		{Pot: models.Pot{ID: "pot-1", Kind: models.KindCoffeePot, Capacity: 12, Level: 8, State: models.StateIdle}, LevelDisplay: "8/12 cups"},
		{Pot: models.Pot{ID: "kettle-1", Kind: models.KindTeapot, Capacity: 8, Level: 6, State: models.StateIdle}, LevelDisplay: "6/8 cups"},
	}}
	router := newTestRouter(&service.Service{Monitoring: mon})

	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?interval=5s"
	conn := dialWS(t, url)

	// The first snapshot arrives immediately, before any tick.
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var env wsEnvelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read: %v", err)
	}
	if env.Type != "registry" {
		t.Fatalf("envelope type = %q, want registry", env.Type)
	}

	raw, err := json.Marshal(env.Data)
	if err != nil {
		t.Fatalf("remarshal: %v", err)
	}
	var snaps []models.PotSnapshot
	if err := json.Unmarshal(raw, &snaps); err != nil {
		t.Fatalf("decode snapshots: %v", err)
	}
	if len(snaps) != 2 || snaps[0].ID != "pot-1" || snaps[1].ID != "kettle-1" {
		t.Fatalf("unexpected snapshots: %+v", snaps)
	}
}

func TestWS_PeriodicUpdates(t *testing.T) {
	mon := &mockMonitoring{registry: []models.PotSnapshot{
		{Pot: models.Pot{ID: "pot-1", Kind: models.KindCoffeePot, Capacity: 12, Level: 8, State: models.StateIdle}},
	}}
	router := newTestRouter(&service.Service{Monitoring: mon})

	srv := httptest.NewServer(router)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws?interval_ms=50"
	conn := dialWS(t, url)

	// Initial snapshot plus at least one ticker-driven update.
	for i := 0; i < 2; i++ {
		_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var env wsEnvelope
		if err := conn.ReadJSON(&env); err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if env.Type != "registry" {
			t.Fatalf("envelope %d type = %q, want registry", i, env.Type)
		}
	}
}

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		want  time.Duration
	}{
		{"", defaultInterval},
		{"?interval=2s", 2 * time.Second},
		{"?interval=0s", defaultInterval},
		{"?interval=11s", defaultInterval}, // above the cap
		{"?interval=nonsense", defaultInterval},
		{"?interval_ms=250", 250 * time.Millisecond},
		{"?interval_ms=99999", defaultInterval}, // above the cap
		{"?interval_ms=-5", defaultInterval},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/ws"+tc.query, nil)
		if got := h.parseInterval(c); got != tc.want {
			t.Errorf("parseInterval(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}
