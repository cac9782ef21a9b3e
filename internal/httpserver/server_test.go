package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akyairhashvil/slotgrid/internal/models"
	"github.com/akyairhashvil/slotgrid/internal/schedule"
	"github.com/akyairhashvil/slotgrid/internal/testutil"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// Slots at 06:00, 06:15, 06:30; the clock starts at 06:10.
func newTestServer(t *testing.T) (*Server, *testutil.FakeClock, http.Handler) {
	t.Helper()
	clk := testutil.NewFakeClock(time.Date(2026, 10, 18, 6, 10, 0, 0, time.UTC))
	sched := schedule.Config{
		Start:    models.TimeOfDay{Hour: 6},
		End:      models.TimeOfDay{Hour: 6, Minute: 30},
		Interval: 15 * time.Minute,
	}
	srv := NewServer("", sched, clk)
	srv.startTime = clk.Now()
	return srv, clk, srv.Handler()
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	_, clk, h := newTestServer(t)
	clk.Advance(90 * time.Second)

	w := get(t, h, "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want %d", w.Code, http.StatusOK)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health: %v", err)
	}
	if body["status"] != "ok" || body["uptime"] != "1m30s" {
		t.Fatalf("unexpected health body: %v", body)
	}
}

func TestSlotsEndpoint(t *testing.T) {
	_, _, h := newTestServer(t)

	w := get(t, h, "/api/slots")
	if w.Code != http.StatusOK {
		t.Fatalf("slots status = %d", w.Code)
	}
	var body struct {
		Count int        `json:"count"`
		Slots []slotJSON `json:"slots"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal slots: %v", err)
	}
	if body.Count != 3 || len(body.Slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", body.Count)
	}
	first, second := body.Slots[0], body.Slots[1]
	if !first.Expired || first.Target != "" || first.Display != "00:00:00" {
		t.Fatalf("expected first slot expired without target: %+v", first)
	}
	if second.Expired || second.Target != "/page2" || second.Remaining != 300 {
		t.Fatalf("unexpected second slot: %+v", second)
	}
}

func slotsOf(t *testing.T, h http.Handler) []slotJSON {
	t.Helper()
	var body struct {
		Slots []slotJSON `json:"slots"`
	}
	if err := json.Unmarshal(get(t, h, "/api/slots").Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal slots: %v", err)
	}
	return body.Slots
}

func TestPageGateServesAdvertisedTargets(t *testing.T) {
	_, clk, h := newTestServer(t)

	slots := slotsOf(t, h)
	for _, slot := range slots[1:] {
		w := get(t, h, slot.Target)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want %d", slot.Target, w.Code, http.StatusOK)
		}
		var page map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &page); err != nil {
			t.Fatalf("unmarshal page: %v", err)
		}
		if page["card"] != slot.Title {
			t.Fatalf("GET %s served %v, want %s", slot.Target, page["card"], slot.Title)
		}
	}

	target := slots[1].Target
	clk.Advance(5 * time.Minute)
	if w := get(t, h, target); w.Code != http.StatusGone {
		t.Fatalf("expected %s to expire at 06:15, got %d", target, w.Code)
	}
}

func TestPageGateStatuses(t *testing.T) {
	_, _, h := newTestServer(t)

	tests := []struct {
		path string
		want int
	}{
		{schedule.Target(1), http.StatusGone},
		{schedule.Target(2), http.StatusOK},
		{schedule.Target(3), http.StatusOK},
		{schedule.Target(4), http.StatusNotFound},
		{"/page0", http.StatusNotFound},
		{"/pagex", http.StatusNotFound},
		{"/page/2", http.StatusNotFound},
		{"/api/health", http.StatusOK},
	}
	for _, tt := range tests {
		if w := get(t, h, tt.path); w.Code != tt.want {
			t.Fatalf("GET %s = %d, want %d", tt.path, w.Code, tt.want)
		}
	}
}

func TestStartStop(t *testing.T) {
	clk := testutil.NewFakeClock(testutil.Epoch)
	srv := NewServer("127.0.0.1:0", schedule.Config{
		Start:    models.TimeOfDay{Hour: 6},
		End:      models.TimeOfDay{Hour: 7},
		Interval: time.Hour,
	}, clk)
	if err := srv.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	if err != nil {
		t.Fatalf("GET health failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}
	if err := srv.Stop(); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
}
