package session

import (
	"time"

	"github.com/petetru/careermap-backend/internal/careers"
)

// Session is one browser session's state: the current graph, the filters
// that produced it, and the running cost/token estimates. Counters only ever
// grow; Clear resets everything.
type Session struct {
	ID            string               `json:"id"`
	Graph         *careers.CareerGraph `json:"graph,omitempty"`
	Filters       careers.FilterRecord `json:"filters"`
	PendingFetch  bool                 `json:"pending_fetch"`
	TokenEstimate float64              `json:"token_estimate"`
	CostEstimate  float64              `json:"cost_estimate"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

func New(id string) Session {
	now := time.Now().UTC()
	return Session{ID: id, CreatedAt: now, UpdatedAt: now}
}

func (s *Session) AddUsage(u careers.Usage) {
	s.TokenEstimate += u.Tokens
	s.CostEstimate += u.Cost
	s.UpdatedAt = time.Now().UTC()
}

// SetGraph replaces the current graph wholesale along with the filters that
// produced it.
func (s *Session) SetGraph(g *careers.CareerGraph, f careers.FilterRecord) {
	s.Graph = g
	s.Filters = f
	s.UpdatedAt = time.Now().UTC()
}

// Clear is the "Clear Map" action: drops the graph and resets the counters.
func (s *Session) Clear() {
	s.Graph = nil
	s.Filters = careers.FilterRecord{}
	s.PendingFetch = false
	s.TokenEstimate = 0
	s.CostEstimate = 0
	s.UpdatedAt = time.Now().UTC()
}
