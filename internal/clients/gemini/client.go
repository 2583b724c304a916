package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/petetru/careermap-backend/internal/platform/envutil"
	"github.com/petetru/careermap-backend/internal/platform/logger"
)

// Client is the Gemini API client used by the career service. One operation:
// a single instruction string in, a single text response out.
type Client interface {
	GenerateText(ctx context.Context, apiKey string, instruction string) (string, error)
}

type client struct {
	log        *logger.Logger
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	timeoutSec := envutil.Int("GEMINI_TIMEOUT_SECONDS", 120)
	return NewClientWithHTTP(log, &http.Client{Timeout: time.Duration(timeoutSec) * time.Second})
}

func NewClientWithHTTP(log *logger.Logger, httpClient *http.Client) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if httpClient == nil {
		return nil, fmt.Errorf("http client required")
	}
	baseURL := strings.TrimRight(envutil.Str("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"), "/")
	model := envutil.Str("GEMINI_MODEL", "gemini-flash-latest")
	return &client{
		log:        log.With("service", "GeminiClient"),
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
	}, nil
}

type geminiHTTPError struct {
	StatusCode int
	Body       string
}

func (e *geminiHTTPError) Error() string {
	return fmt.Sprintf("gemini http %d: %s", e.StatusCode, e.Body)
}

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason string `json:"finishReason,omitempty"`
	} `json:"candidates"`
	PromptFeedback struct {
		BlockReason string `json:"blockReason,omitempty"`
	} `json:"promptFeedback"`
}

// GenerateText issues one generateContent call. No retries: one user action
// maps to exactly one upstream request, and a failure is reported, not
// retried.
func (c *client) GenerateText(ctx context.Context, apiKey string, instruction string) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", fmt.Errorf("api key required")
	}

	body := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: instruction}}},
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", err
	}

	path := "/v1beta/models/" + c.model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &geminiHTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out generateContentResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("gemini decode error: %w; raw=%s", err, string(raw))
	}
	if out.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("gemini blocked prompt: %s", out.PromptFeedback.BlockReason)
	}

	var text strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", fmt.Errorf("no text in gemini response")
	}

	c.log.Debug("gemini completion finished",
		"model", c.model,
		"duration_ms", time.Since(start).Milliseconds(),
		"response_chars", text.Len(),
	)
	return text.String(), nil
}
