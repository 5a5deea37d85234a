package server

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/etnz/chaucha"
	"github.com/etnz/chaucha/agent"
	"github.com/gorilla/mux"
)

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) patchProfile(w http.ResponseWriter, r *http.Request) {
	var p chaucha.Patch
	if err := decode(r, &p); err != nil {
		s.writeError(w, err)
		return
	}
	u, err := s.store.Update(p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) postOnboarding(w http.ResponseWriter, r *http.Request) {
	var o chaucha.Onboarding
	if err := decode(r, &o); err != nil {
		s.writeError(w, err)
		return
	}
	for i, e := range o.FixedExpenses {
		if e.ID == "" {
			o.FixedExpenses[i].ID = chaucha.NewID()
		}
	}
	if err := s.store.CompleteOnboarding(o); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) postExpense(w http.ResponseWriter, r *http.Request) {
	var e chaucha.FixedExpense
	if err := decode(r, &e); err != nil {
		s.writeError(w, err)
		return
	}
	if e.ID == "" {
		e.ID = chaucha.NewID()
	}
	if e.Icon == "" {
		e.Icon = chaucha.IconBudgetExpense
	}
	if err := s.store.AddExpense(e); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (s *Server) deleteExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveExpense(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toggleExpense(w http.ResponseWriter, r *http.Request) {
	if err := s.store.ToggleExpensePaid(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Snapshot().FixedExpenses)
}

func (s *Server) postGoal(w http.ResponseWriter, r *http.Request) {
	var body chaucha.Goal
	if err := decode(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	g := chaucha.NewGoal(body.Name, body.TargetAmount)
	g.CurrentAmount = body.CurrentAmount
	g.Deadline = body.Deadline
	if body.ID != "" {
		g.ID = body.ID
	}
	if body.Type != "" {
		g.Type = body.Type
	}
	if body.Icon != "" {
		g.Icon = body.Icon
	}
	if body.Color != "" {
		g.Color = body.Color
	}
	if err := s.store.AddGoal(g); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) deleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.store.RemoveGoal(mux.Vars(r)["id"]); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) postGoalAmount(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Delta chaucha.Amount `json:"delta"`
	}
	if err := decode(r, &body); err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.UpdateGoalAmount(mux.Vars(r)["id"], body.Delta); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Snapshot().Goals)
}

func (s *Server) getVariableExpenses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.VariableExpenses())
}

func (s *Server) getBudget(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Budget())
}

func (s *Server) getDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Dashboard())
}

func (s *Server) postImport(w http.ResponseWriter, r *http.Request) {
	txs, err := chaucha.ImportCSV(io.LimitReader(r.Body, maxBody))
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if err := s.store.ImportTransactions(txs); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"imported": len(txs)})
}

func (s *Server) getQuery(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if strings.TrimSpace(path) == "" {
		s.writeError(w, fmt.Errorf("%w: missing path parameter", errBadRequest))
		return
	}
	v, err := chaucha.Query(s.store.Snapshot(), path)
	if err != nil {
		s.writeError(w, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) postReset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Reset(); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// chatRequest is a new message after a prior conversation, the way the
// mentor is asked: the server keeps no conversation.
type chatRequest struct {
	History []agent.Message `json:"history"`
	Text    string          `json:"text"`
}

func (s *Server) postChat(w http.ResponseWriter, r *http.Request) {
	if s.mentor == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "the mentor is not configured"})
		return
	}
	var req chatRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		s.writeError(w, fmt.Errorf("%w: %v", errBadRequest, agent.ErrEmptyMessage))
		return
	}
	reply := agent.NewMessage(agent.RoleModel, s.mentor.Send(r.Context(), req.History, req.Text))
	writeJSON(w, http.StatusOK, map[string]agent.Message{"message": reply})
}
