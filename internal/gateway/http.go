// Package gateway holds the outer-layer adapters: the HTTP transport, the
// score store implementations and the identifier generator.
package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"receipt-processor/internal/domain"
	"receipt-processor/internal/metrics"
	"receipt-processor/internal/usecase"
)

// Client-facing error messages. Internal failure detail never leaves the
// process; it is logged instead.
const (
	msgInvalidReceipt = "The receipt is invalid"
	msgNotFound       = "No receipt found for that id"
	msgInternal       = "Internal server error"
)

// maxReceiptBytes bounds the request body accepted by the submit endpoint.
const maxReceiptBytes = 1 << 20

// Server exposes the receipt use case over HTTP.
type Server struct {
	uc      *usecase.ReceiptUseCase
	log     *logrus.Logger
	metrics *metrics.Metrics
	router  *mux.Router
}

// NewServer wires the routes and middleware.
func NewServer(uc *usecase.ReceiptUseCase, log *logrus.Logger, m *metrics.Metrics) *Server {
	s := &Server{uc: uc, log: log, metrics: m}

	r := mux.NewRouter()
	r.Use(s.instrument)
	r.HandleFunc("/receipts/process", s.handleProcess).Methods(http.MethodPost)
	r.HandleFunc("/receipts/{id}/points", s.handlePoints).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	s.router = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleProcess accepts a receipt document, scores it and responds with the
// identifier minted for it.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxReceiptBytes))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, msgInvalidReceipt)
		return
	}

	scored, err := s.uc.Process(r.Context(), body)
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		s.log.WithField("reasons", vErr.Reasons).Debug("rejected receipt")
		s.metrics.ReceiptRejected()
		s.writeError(w, http.StatusBadRequest, msgInvalidReceipt)
		return
	case err != nil:
		s.log.WithError(err).Error("process receipt")
		s.writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	s.metrics.ReceiptProcessed(scored.Points)
	s.writeJSON(w, http.StatusOK, map[string]string{"id": scored.ID})
}

// handlePoints responds with the points bound to the identifier in the path.
func (s *Server) handlePoints(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	points, err := s.uc.Points(r.Context(), id)
	switch {
	case errors.Is(err, domain.ErrReceiptNotFound):
		s.writeError(w, http.StatusNotFound, msgNotFound)
		return
	case err != nil:
		s.log.WithError(err).Error("look up receipt")
		s.writeError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]int64{"points": points})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.WithError(err).Error("write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
