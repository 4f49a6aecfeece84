package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/netx"
)

const (
	DefaultTemperature = 0.7
	DefaultNumPredict  = 200

	// statusTimeout bounds the /api/tags probe.
	statusTimeout = 5 * time.Second
)

// ErrEmptyResponse means the model answered with no text, usually because it
// is still loading.
var ErrEmptyResponse = errors.New("Ollama returned an empty response")

// OllamaAdvisor calls a local Ollama server.
type OllamaAdvisor struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllamaAdvisor returns an advisor for model at baseURL. timeout bounds
// each generate call; zero means no limit.
func NewOllamaAdvisor(baseURL, model string, timeout time.Duration) *OllamaAdvisor {
	return &OllamaAdvisor{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// Generate posts prompt to /api/generate with streaming disabled. Failures
// are wrapped so their message names Ollama.
func (a *OllamaAdvisor) Generate(ctx context.Context, prompt string) (string, error) {
	req := generateRequest{
		Model:   a.model,
		Prompt:  prompt,
		Stream:  false,
		Options: generateOptions{Temperature: DefaultTemperature, NumPredict: DefaultNumPredict},
	}

	var resp generateResponse
	if err := netx.PostJSON(ctx, a.client, a.baseURL+"/api/generate", req, &resp); err != nil {
		return "", fmt.Errorf("Ollama request failed: %w", err)
	}

	text := strings.TrimSpace(resp.Response)
	if text == "" {
		if resp.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrEmptyResponse, resp.Error)
		}
		return "", ErrEmptyResponse
	}
	return text, nil
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// Status lists installed models via /api/tags.
func (a *OllamaAdvisor) Status(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, statusTimeout)
	defer cancel()

	st := Status{Model: a.model}

	var tags tagsResponse
	if err := netx.GetJSON(ctx, a.client, a.baseURL+"/api/tags", &tags); err != nil {
		st.Error = err.Error()
		return st
	}

	st.Available = true
	for _, m := range tags.Models {
		st.Models = append(st.Models, m.Name)
		if strings.Contains(m.Name, a.model) {
			st.ModelAvailable = true
		}
	}
	return st
}
