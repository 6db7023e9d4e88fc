package metrics

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func scrape(t *testing.T, h http.Handler) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	res := httptest.NewRecorder()
	h.ServeHTTP(res, req)
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	return string(body)
}

func TestMiddlewareNormalizesPathLabels(t *testing.T) {
	m := NewHTTPServerMetrics("api")
	handler := m.Middleware("api", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	for _, p := range []string{"/api/note-info/C", "/api/note-info/Db"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, p, nil))
	}

	got := testutil.ToFloat64(m.requestTotal.WithLabelValues("api", http.MethodGet, "/api/note-info/{note}", "404"))
	if got != 2 {
		t.Fatalf("expected 2 requests on normalized path, got %v", got)
	}
}

func TestRecordRecognition(t *testing.T) {
	m := NewHTTPServerMetrics("api")
	m.RecordRecognition("api", "ok", 4, true)
	m.RecordRecognition("api", "ok", 0, false)
	m.RecordRecognition("api", "rejected", 0, false)

	if got := testutil.ToFloat64(m.recognitionTotal.WithLabelValues("api", "ok")); got != 2 {
		t.Fatalf("expected 2 ok recognitions, got %v", got)
	}
	if got := testutil.ToFloat64(m.recognitionExactTotal.WithLabelValues("api")); got != 1 {
		t.Fatalf("expected 1 exact recognition, got %v", got)
	}
	body := scrape(t, m.Handler())
	if !strings.Contains(body, `fretboard_recognition_requests_total{outcome="rejected",service="api"} 1`) {
		t.Fatalf("rejected counter missing from exposition:\n%s", body)
	}
}

func TestWorkerMetrics(t *testing.T) {
	m := NewWorkerMetrics("worker")
	m.ObserveTopChord("worker", "minor", true)
	m.ObserveTopChord("worker", "", false)
	m.FinishEvent("worker", time.Millisecond, nil)
	m.FinishEvent("worker", time.Millisecond, errors.New("bad payload"))
	m.ObserveEventLag("worker", -time.Second)

	if got := testutil.ToFloat64(m.chordsTotal.WithLabelValues("worker", "none", "false")); got != 1 {
		t.Fatalf("expected empty category counted as none, got %v", got)
	}
	if got := testutil.ToFloat64(m.eventsTotal.WithLabelValues("worker", "error")); got != 1 {
		t.Fatalf("expected 1 failed event, got %v", got)
	}
	if n := testutil.CollectAndCount(m.eventLag); n != 0 {
		t.Fatalf("negative lag must not be observed, got %d series", n)
	}
}
