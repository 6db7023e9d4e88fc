package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/oapi-codegen/runtime"

	"github.com/kirillkom/fretboard-chords/internal/config"
	"github.com/kirillkom/fretboard-chords/internal/core/domain"
	"github.com/kirillkom/fretboard-chords/internal/core/ports"
	"github.com/kirillkom/fretboard-chords/internal/observability/metrics"
)

const (
	maxRequestBodyBytes = 64 << 10
	healthProbeTimeout  = 2 * time.Second
)

// HealthProbes reports optional dependencies on /api/health. Nil fields mean
// the dependency is not configured.
type HealthProbes struct {
	Mirror          ports.CatalogMirror
	EventsConnected func() bool
}

type Router struct {
	cfg        config.Config
	recognizer ports.ChordRecognizer
	browser    ports.ChordBrowser
	notes      ports.NoteService
	probes     HealthProbes
	metrics    *metrics.HTTPServerMetrics
}

func NewRouter(
	cfg config.Config,
	recognizer ports.ChordRecognizer,
	browser ports.ChordBrowser,
	notes ports.NoteService,
	probes HealthProbes,
	httpMetrics *metrics.HTTPServerMetrics,
) *Router {
	return &Router{
		cfg:        cfg,
		recognizer: recognizer,
		browser:    browser,
		notes:      notes,
		probes:     probes,
		metrics:    httpMetrics,
	}
}

func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", rt.healthz)
	mux.HandleFunc("GET /api/{$}", rt.root)
	mux.HandleFunc("POST /api/recognize-chord", rt.recognizeChord)
	mux.HandleFunc("POST /api/play-note", rt.playNote)
	mux.HandleFunc("GET /api/note-info/{note}", rt.noteInfo)
	mux.HandleFunc("GET /api/chords", rt.listChords)
	mux.HandleFunc("GET /api/chords/{id}", rt.getChord)
	mux.HandleFunc("GET /api/health", rt.health)
	mux.HandleFunc("GET /api/openapi.yaml", rt.openAPI)
	if rt.metrics != nil {
		mux.Handle("GET /metrics", rt.metrics.Handler())
	}

	var handler http.Handler = mux
	handler = backpressureMiddleware(handler, rt.cfg.APIMaxInFlight, time.Duration(rt.cfg.APIBackpressureWaitMS)*time.Millisecond)
	handler = rateLimitMiddleware(handler, rt.cfg.APIRateLimitRPS, rt.cfg.APIRateLimitBurst)
	handler = corsMiddleware(handler, rt.cfg.CORSAllowedOrigins)
	if rt.metrics != nil {
		handler = rt.metrics.Middleware(rt.serviceName(), handler)
	}
	handler = accessLogMiddleware(handler)
	return requestIDMiddleware(handler)
}

func (rt *Router) serviceName() string {
	if rt.cfg.ServiceName == "" {
		return "fretboard-chords"
	}
	return rt.cfg.ServiceName
}

func (rt *Router) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (rt *Router) root(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Fretboard chord recognition API is running"})
}

type recognizeChordRequest struct {
	Notes             []string              `json:"notes"`
	SelectedPositions []domain.NotePosition `json:"selected_positions"`
}

func (rt *Router) recognizeChord(w http.ResponseWriter, r *http.Request) {
	var req recognizeChordRequest
	if err := readValidated(w, r, "RecognizeChordRequest", &req); err != nil {
		rt.recordRecognition("rejected", nil)
		writeError(w, r, err)
		return
	}

	report, err := rt.recognizer.Recognize(r.Context(), req.Notes)
	if err != nil {
		rt.recordRecognition("rejected", nil)
		writeError(w, r, err)
		return
	}
	rt.recordRecognition("ok", report)

	writeJSON(w, http.StatusOK, report)
}

func (rt *Router) recordRecognition(outcome string, report *domain.RecognitionReport) {
	if rt.metrics == nil {
		return
	}
	candidates, exact := 0, false
	if report != nil {
		candidates = len(report.RecognizedChords)
		exact = candidates > 0 && report.RecognizedChords[0].IsExactMatch
	}
	rt.metrics.RecordRecognition(rt.serviceName(), outcome, candidates, exact)
}

func (rt *Router) playNote(w http.ResponseWriter, r *http.Request) {
	var req domain.PlayNoteRequest
	if err := readValidated(w, r, "PlayNoteRequest", &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := rt.notes.PlayNote(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (rt *Router) noteInfo(w http.ResponseWriter, r *http.Request) {
	var note string
	err := runtime.BindStyledParameterWithOptions("simple", "note", r.PathValue("note"), &note, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		writeError(w, r, domain.WrapError(domain.ErrInvalidInput, "bind note", err))
		return
	}

	octave := domain.DefaultOctave
	if err := runtime.BindQueryParameter("form", true, false, "octave", r.URL.Query(), &octave); err != nil {
		writeError(w, r, domain.WrapError(domain.ErrInvalidInput, "bind octave", err))
		return
	}

	info, err := rt.notes.NoteInfo(r.Context(), note, octave)
	if rt.metrics != nil {
		rt.metrics.RecordNoteLookup(rt.serviceName(), err == nil)
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, info)
}

func (rt *Router) listChords(w http.ResponseWriter, r *http.Request) {
	chords, err := rt.browser.ListChords(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"chords": chords,
		"count":  len(chords),
	})
}

func (rt *Router) getChord(w http.ResponseWriter, r *http.Request) {
	chord, err := rt.browser.GetChord(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, chord)
}

func (rt *Router) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
	defer cancel()

	status := "healthy"
	database := "disabled"
	if rt.probes.Mirror != nil {
		database = "connected"
		if err := rt.probes.Mirror.Ping(ctx); err != nil {
			slog.Warn("health_database_unreachable", "error", err)
			database = "disconnected"
			status = "degraded"
		}
	}

	events := "disabled"
	if rt.probes.EventsConnected != nil {
		events = "connected"
		if !rt.probes.EventsConnected() {
			events = "disconnected"
			status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       status,
		"chord_engine": "initialized",
		"catalog_size": rt.recognizer.CatalogSize(),
		"midi_service": "initialized",
		"database":     database,
		"events":       events,
	})
}

func (rt *Router) openAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(openAPIDocument)
}

func readValidated(w http.ResponseWriter, r *http.Request, schemaName string, dst any) error {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return domain.WrapError(domain.ErrInvalidInput, "read request", fmt.Errorf("body exceeds %d bytes", tooLarge.Limit))
		}
		return domain.WrapError(domain.ErrInvalidInput, "read request", err)
	}
	return decodeValidated(schemaName, raw, dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := mapErrorToHTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request_failed",
			"request_id", requestIDFromContext(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
		message = "internal server error"
	}
	writeJSON(w, status, map[string]string{"error": message})
}
