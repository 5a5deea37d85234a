package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/etnz/chaucha"
	"go.uber.org/zap"
)

// getEvents streams the profile as server-sent events: the current one on
// connection, then one per change.
func (s *Server) getEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	updates := make(chan chaucha.UserData, 16)
	cancel := s.store.Subscribe(func(u chaucha.UserData) {
		select {
		case updates <- u:
		default:
			s.log.Warn("events listener is too slow, dropping a change")
		}
	})
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	s.log.Debug("events listener connected", zap.String("remote", r.RemoteAddr))
	defer s.log.Debug("events listener disconnected", zap.String("remote", r.RemoteAddr))

	u := s.store.Snapshot()
	for {
		data, err := json.Marshal(u)
		if err != nil {
			s.log.Error("cannot encode profile", zap.Error(err))
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return
		}
		flusher.Flush()

		select {
		case u = <-updates:
		case <-r.Context().Done():
			return
		}
	}
}
