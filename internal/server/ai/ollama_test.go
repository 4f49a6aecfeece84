package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	var got generateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(generateResponse{Response: "  Keep writing.  "})
	}))
	defer ts.Close()

	a := NewOllamaAdvisor(ts.URL+"/", "llama3.2:1b", time.Second)
	text, err := a.Generate(context.Background(), "hello")
	require.NoError(t, err)

	assert.Equal(t, "Keep writing.", text)
	assert.Equal(t, "llama3.2:1b", got.Model)
	assert.Equal(t, "hello", got.Prompt)
	assert.False(t, got.Stream)
	assert.Equal(t, DefaultTemperature, got.Options.Temperature)
	assert.Equal(t, DefaultNumPredict, got.Options.NumPredict)
}

func TestGenerate_EmptyResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{Error: "model is loading"})
	}))
	defer ts.Close()

	_, err := NewOllamaAdvisor(ts.URL, "m", time.Second).Generate(context.Background(), "p")
	require.ErrorIs(t, err, ErrEmptyResponse)
	assert.Contains(t, err.Error(), "model is loading")
	assert.Contains(t, err.Error(), "Ollama")
}

func TestGenerate_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := NewOllamaAdvisor(ts.URL, "m", time.Second).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ollama request failed")
	assert.Contains(t, err.Error(), "500")
}

func TestGenerate_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	_, err := NewOllamaAdvisor(url, "m", time.Second).Generate(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Ollama")
	assert.False(t, errors.Is(err, ErrEmptyResponse))
}

func TestStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		_, _ = w.Write([]byte(`{"models":[{"name":"mistral:latest"},{"name":"llama3.2:1b"}]}`))
	}))
	defer ts.Close()

	st := NewOllamaAdvisor(ts.URL, "llama3.2:1b", 0).Status(context.Background())
	assert.True(t, st.Available)
	assert.True(t, st.ModelAvailable)
	assert.Equal(t, "llama3.2:1b", st.Model)
	assert.Equal(t, []string{"mistral:latest", "llama3.2:1b"}, st.Models)
	assert.Empty(t, st.Error)
}

func TestStatus_ModelMissing(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"models":[{"name":"mistral:latest"}]}`))
	}))
	defer ts.Close()

	st := NewOllamaAdvisor(ts.URL, "llama3.2:1b", 0).Status(context.Background())
	assert.True(t, st.Available)
	assert.False(t, st.ModelAvailable)
}

func TestStatus_Offline(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	st := NewOllamaAdvisor(url, "m", 0).Status(context.Background())
	assert.False(t, st.Available)
	assert.NotEmpty(t, st.Error)
}
