// Package server exposes a profile Store on a local JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/agent"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// maxBody is the largest request body accepted, CSV statements included.
const maxBody = 10 << 20

// Server serves the API of one Store.
type Server struct {
	store  *chaucha.Store
	mentor agent.Sender // nil when no model is configured
	log    *zap.Logger
	router *mux.Router
}

// New returns a Server for store. mentor can be nil, chat requests then fail.
func New(store *chaucha.Store, mentor agent.Sender, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{store: store, mentor: mentor, log: log, router: mux.NewRouter()}
	s.routes()
	return s
}

func (s *Server) routes() {
	r := s.router.PathPrefix("/api").Subrouter()
	r.Use(s.logRequests)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	r.HandleFunc("/profile", s.getProfile).Methods(http.MethodGet)
	r.HandleFunc("/profile", s.patchProfile).Methods(http.MethodPatch)
	r.HandleFunc("/onboarding", s.postOnboarding).Methods(http.MethodPost)

	r.HandleFunc("/expenses", s.postExpense).Methods(http.MethodPost)
	r.HandleFunc("/expenses/{id}", s.deleteExpense).Methods(http.MethodDelete)
	r.HandleFunc("/expenses/{id}/toggle", s.toggleExpense).Methods(http.MethodPost)

	r.HandleFunc("/goals", s.postGoal).Methods(http.MethodPost)
	r.HandleFunc("/goals/{id}", s.deleteGoal).Methods(http.MethodDelete)
	r.HandleFunc("/goals/{id}/amount", s.postGoalAmount).Methods(http.MethodPost)

	r.HandleFunc("/variable-expenses", s.getVariableExpenses).Methods(http.MethodGet)
	r.HandleFunc("/budget", s.getBudget).Methods(http.MethodGet)
	r.HandleFunc("/dashboard", s.getDashboard).Methods(http.MethodGet)
	r.HandleFunc("/transactions/import", s.postImport).Methods(http.MethodPost)
	r.HandleFunc("/query", s.getQuery).Methods(http.MethodGet)
	r.HandleFunc("/reset", s.postReset).Methods(http.MethodPost)
	r.HandleFunc("/chat", s.postChat).Methods(http.MethodPost)
	r.HandleFunc(eventsPath, s.getEvents).Methods(http.MethodGet)
}

// eventsPath is the change feed. Its requests last as long as the client
// listens, so they are not logged.
const eventsPath = "/events"

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": r.Method + " is not allowed on " + r.URL.Path})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// statusRecorder records the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api"+eventsPath {
			next.ServeHTTP(w, r)
			return
		}
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// errBadRequest marks client errors that are not validation errors of the store.
var errBadRequest = errors.New("bad request")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps err to a status code: 400 for invalid requests, 500 otherwise.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, chaucha.ErrInvalid) || errors.Is(err, errBadRequest) {
		status = http.StatusBadRequest
	} else {
		s.log.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decode decodes the JSON body of r into v.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: cannot decode body: %v", errBadRequest, err)
	}
	return nil
}
