package careers

import (
	"context"
	"fmt"

	"github.com/petetru/careermap-backend/internal/platform/logger"
)

// CompletionClient is the uniform surface of the external text-completion
// service: one instruction in, one text response out.
type CompletionClient interface {
	GenerateText(ctx context.Context, apiKey string, instruction string) (string, error)
}

// CredentialSource yields the completion-service credential at fetch time.
type CredentialSource interface {
	Lookup(name string) (string, error)
}

// FetchState names the phases of one fetch cycle.
type FetchState string

const (
	StateIdle               FetchState = "idle"
	StatePrompting          FetchState = "prompting"
	StateAwaitingCompletion FetchState = "awaiting_completion"
	StateParsing            FetchState = "parsing"
	StateReady              FetchState = "ready"
	StateFailed             FetchState = "failed"
)

const (
	// Coarse 4-characters-per-token heuristic. An estimate, not a count.
	charsPerToken = 4
	// Flat per-call rate for the sidebar spend display, not derived from
	// actual token counts.
	costPerCall = 0.003

	credentialName = "GEMINI_API_KEY"
)

// Usage is what one fetch cycle added to the session counters. Zero unless a
// completion round trip actually happened.
type Usage struct {
	Tokens float64 `json:"tokens"`
	Cost   float64 `json:"cost"`
}

// Service runs the prompt-to-graph pipeline: build the instruction, call the
// completion service, parse the response into a CareerGraph.
type Service struct {
	log         *logger.Logger
	catalog     *Catalog
	creds       CredentialSource
	completions CompletionClient
}

func NewService(log *logger.Logger, catalog *Catalog, creds CredentialSource, completions CompletionClient) (*Service, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if creds == nil {
		return nil, fmt.Errorf("credential source required")
	}
	if completions == nil {
		return nil, fmt.Errorf("completion client required")
	}
	return &Service{
		log:         log.With("service", "CareerService"),
		catalog:     catalog,
		creds:       creds,
		completions: completions,
	}, nil
}

func (s *Service) Catalog() *Catalog { return s.catalog }

// Generate runs one full fetch cycle for the given filters. On failure the
// returned graph is nil and the caller's current graph stays whatever it was;
// the Usage is still meaningful when the failure happened after the
// completion call (a malformed response was paid for).
func (s *Service) Generate(ctx context.Context, f FilterRecord) (*CareerGraph, Usage, error) {
	if err := s.catalog.ValidateFilters(f); err != nil {
		return nil, Usage{}, err
	}
	tr, _ := s.catalog.TrackByName(f.Track)

	s.logState(StatePrompting, f)
	prompt := BuildPrompt(tr, f)

	key, err := s.creds.Lookup(credentialName)
	if err != nil {
		s.logState(StateFailed, f)
		return nil, Usage{}, &MissingCredentialError{Err: err}
	}

	s.logState(StateAwaitingCompletion, f)
	raw, err := s.completions.GenerateText(ctx, key, prompt)
	if err != nil {
		s.logState(StateFailed, f)
		return nil, Usage{}, &CompletionServiceError{Err: err}
	}
	usage := Usage{
		Tokens: float64(len(prompt)+len(raw)) / charsPerToken,
		Cost:   costPerCall,
	}

	s.logState(StateParsing, f)
	g, err := ParseGraph(raw)
	if err != nil {
		s.logState(StateFailed, f)
		return nil, usage, err
	}

	s.logState(StateReady, f)
	s.log.Info("career graph generated",
		"track", f.Track,
		"industry", f.Industry,
		"role_function", f.RoleFunction,
		"jobs", len(g.Jobs),
		"nodes", g.NodeCount(),
		"token_estimate", usage.Tokens,
	)
	return g, usage, nil
}

func (s *Service) logState(st FetchState, f FilterRecord) {
	s.log.Debug("fetch state", "state", string(st), "track", f.Track)
}
