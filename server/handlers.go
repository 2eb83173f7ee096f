package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/kubuskotak/ulid/tracer"
	"github.com/kubuskotak/ulid/ulid"
)

// GenerateRequest is the query of GET /v1/ulids.
type GenerateRequest struct {
	Count int `schema:"count" validate:"gte=0"`
}

// GenerateResponse lists IDs of one stream in generation order.
type GenerateResponse struct {
	IDs []ulid.ID `json:"ids"`
}

// InspectResponse describes one ID.
type InspectResponse struct {
	ID        ulid.ID   `json:"id"`
	Timestamp uint64    `json:"timestamp"`
	Time      time.Time `json:"time"`
	Hex       string    `json:"hex"`
	UUID      string    `json:"uuid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	ctx, span, l := tracer.StartSpanLogTrace(r.Context(), "ulid.generate")
	defer span.End()

	var req GenerateRequest
	if err := s.decoder.Decode(&req, r.URL.Query()); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.validate.StructCtx(ctx, req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	lim := s.limits.Load()
	if req.Count == 0 {
		req.Count = lim.def
	}
	if req.Count > lim.max {
		writeError(w, http.StatusBadRequest, errors.New("count exceeds the batch limit"))
		return
	}

	start := time.Now()
	g := s.opts.NewGenerator()
	resp := GenerateResponse{IDs: make([]ulid.ID, 0, req.Count)}
	for i := 0; i < req.Count; i++ {
		id, err := g.New()
		if err != nil {
			l.Error().Err(err).Msg("generate ulid")
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		resp.IDs = append(resp.IDs, id)
	}
	s.opts.Metrics.RecordGenerate(ctx, "http", req.Count, time.Since(start))
	l.Debug().Int("count", req.Count).Msg("generated ulids")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) inspect(w http.ResponseWriter, r *http.Request) {
	_, span, l := tracer.StartSpanLogTrace(r.Context(), "ulid.inspect")
	defer span.End()

	id, err := ulid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		l.Debug().Err(err).Msg("parse ulid")
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, InspectResponse{
		ID:        id,
		Timestamp: id.Timestamp(),
		Time:      id.Time(),
		Hex:       id.Hex(),
		UUID:      id.UUID().String(),
	})
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write response")
	}
}
