package careers

import (
	"context"
	"errors"
	"testing"

	"github.com/petetru/careermap-backend/internal/platform/logger"
)

type fakeCreds struct {
	key string
	err error
}

func (f fakeCreds) Lookup(string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.key, nil
}

type fakeCompletion struct {
	resp       string
	err        error
	calls      int
	lastKey    string
	lastPrompt string
}

func (f *fakeCompletion) GenerateText(_ context.Context, apiKey, instruction string) (string, error) {
	f.calls++
	f.lastKey = apiKey
	f.lastPrompt = instruction
	if f.err != nil {
		return "", f.err
	}
	return f.resp, nil
}

func newTestService(t *testing.T, creds CredentialSource, completions CompletionClient) *Service {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	catalog, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	svc, err := NewService(log, catalog, creds, completions)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func validFilters() FilterRecord {
	return FilterRecord{
		Track:        "AI Management & Policy",
		Industry:     "Big Tech (FAANG)",
		RoleFunction: "Product & Strategy",
	}
}

func fencedGraphJSON(t *testing.T) string {
	t.Helper()
	raw, err := fullGraph().Serialize()
	if err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	return "```json\n" + string(raw) + "\n```"
}

func TestGenerateSuccess(t *testing.T) {
	comp := &fakeCompletion{resp: fencedGraphJSON(t)}
	svc := newTestService(t, fakeCreds{key: "test-key"}, comp)

	g, usage, err := svc.Generate(context.Background(), validFilters())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if g.NodeCount() != 16 || g.EdgeCount() != 15 {
		t.Fatalf("nodes=%d edges=%d, want 16/15", g.NodeCount(), g.EdgeCount())
	}
	if comp.calls != 1 {
		t.Fatalf("completion calls=%d, want 1", comp.calls)
	}
	if comp.lastKey != "test-key" {
		t.Fatalf("key=%q", comp.lastKey)
	}

	wantTokens := float64(len(comp.lastPrompt)+len(comp.resp)) / 4
	if usage.Tokens != wantTokens {
		t.Fatalf("tokens=%v, want %v", usage.Tokens, wantTokens)
	}
	if usage.Cost != 0.003 {
		t.Fatalf("cost=%v, want flat 0.003", usage.Cost)
	}
}

func TestGenerateMissingCredential(t *testing.T) {
	comp := &fakeCompletion{resp: fencedGraphJSON(t)}
	svc := newTestService(t, fakeCreds{err: errors.New("nothing in file or env")}, comp)

	g, usage, err := svc.Generate(context.Background(), validFilters())
	var missing *MissingCredentialError
	if !errors.As(err, &missing) {
		t.Fatalf("want MissingCredentialError, got %v", err)
	}
	if g != nil {
		t.Fatalf("graph should be nil on failure")
	}
	if comp.calls != 0 {
		t.Fatalf("completion service reached without a credential")
	}
	if usage.Tokens != 0 || usage.Cost != 0 {
		t.Fatalf("usage=%+v, want zero when no call went out", usage)
	}
}

func TestGenerateCompletionFailure(t *testing.T) {
	comp := &fakeCompletion{err: errors.New("upstream 429")}
	svc := newTestService(t, fakeCreds{key: "k"}, comp)

	g, usage, err := svc.Generate(context.Background(), validFilters())
	var svcErr *CompletionServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("want CompletionServiceError, got %v", err)
	}
	if g != nil {
		t.Fatalf("graph should be nil on failure")
	}
	if comp.calls != 1 {
		t.Fatalf("calls=%d, want exactly 1 (no retries)", comp.calls)
	}
	if usage.Tokens != 0 || usage.Cost != 0 {
		t.Fatalf("usage=%+v, want zero without a response", usage)
	}
}

func TestGenerateMalformedResponseStillCosts(t *testing.T) {
	comp := &fakeCompletion{resp: "no JSON here, just an apology"}
	svc := newTestService(t, fakeCreds{key: "k"}, comp)

	g, usage, err := svc.Generate(context.Background(), validFilters())
	var malformed *MalformedGraphError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedGraphError, got %v", err)
	}
	if g != nil {
		t.Fatalf("graph should be nil on failure")
	}
	if usage.Tokens == 0 || usage.Cost != 0.003 {
		t.Fatalf("usage=%+v; the round trip happened and should be counted", usage)
	}
}

func TestGenerateRejectsUnknownFilters(t *testing.T) {
	comp := &fakeCompletion{resp: fencedGraphJSON(t)}
	svc := newTestService(t, fakeCreds{key: "k"}, comp)

	f := validFilters()
	f.Industry = "Cryptozoology"
	if _, _, err := svc.Generate(context.Background(), f); err == nil {
		t.Fatalf("unknown industry accepted")
	}
	if comp.calls != 0 {
		t.Fatalf("invalid filters should never reach the completion service")
	}
}
