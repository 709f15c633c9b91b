package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s%v not found", name, labels)
	return 0
}

func TestRecordRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRequest("patients.list", 200, 120*time.Millisecond)
	c.RecordRequest("patients.list", 200, 80*time.Millisecond)
	c.RecordRequest("patients.update", 401, 15*time.Millisecond)
	c.RecordRequest("patients.update", 0, time.Second) // network failure

	if got := counterValue(t, reg, "clinidash_api_requests_total", map[string]string{"op": "patients.list", "code": "200"}); got != 2 {
		t.Errorf("patients.list 200 count = %v, want 2", got)
	}
	if got := counterValue(t, reg, "clinidash_api_requests_total", map[string]string{"op": "patients.update", "code": "401"}); got != 1 {
		t.Errorf("patients.update 401 count = %v, want 1", got)
	}
	if got := counterValue(t, reg, "clinidash_api_requests_total", map[string]string{"op": "patients.update", "code": "error"}); got != 1 {
		t.Errorf("patients.update error count = %v, want 1", got)
	}
}

func TestRecordLogin(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin(true)
	c.RecordLogin(false)
	c.RecordLogin(false)

	if got := counterValue(t, reg, "clinidash_logins_total", map[string]string{"outcome": "success"}); got != 1 {
		t.Errorf("success logins = %v, want 1", got)
	}
	if got := counterValue(t, reg, "clinidash_logins_total", map[string]string{"outcome": "failure"}); got != 2 {
		t.Errorf("failed logins = %v, want 2", got)
	}
}

func TestRecordSessionsReaped(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordSessionsReaped(3)
	c.RecordSessionsReaped(2)

	if got := counterValue(t, reg, "clinidash_sessions_reaped_total", nil); got != 5 {
		t.Errorf("sessions reaped = %v, want 5", got)
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordRequest("patients.list", 200, 10*time.Millisecond)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(string(body), "clinidash_api_requests_total") {
		t.Error("scrape output missing clinidash_api_requests_total")
	}
}
