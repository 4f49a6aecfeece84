package netx

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

type payload struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestPostJSON(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotCT string
		var gotBody payload

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(payload{Name: "pong", N: gotBody.N + 1})
		}))
		defer ts.Close()

		var out payload
		err := PostJSON(context.Background(), ts.Client(), ts.URL+"/api", payload{Name: "ping", N: 1}, &out)
		require.NoError(t, err)

		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/json", gotCT)
		assert.Equal(t, payload{Name: "ping", N: 1}, gotBody)
		assert.Equal(t, payload{Name: "pong", N: 2}, out)
	})

	t.Run("non-2xx returns StatusError with body", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "model not found", http.StatusNotFound)
		}))
		defer ts.Close()

		err := PostJSON(context.Background(), ts.Client(), ts.URL, payload{}, nil)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.StatusCode)
		assert.Equal(t, "model not found", se.Body)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("bad JSON response", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}))
		defer ts.Close()

		var out payload
		err := PostJSON(context.Background(), ts.Client(), ts.URL, payload{}, &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decoding response")
	})

	t.Run("unencodable request", func(t *testing.T) {
		err := PostJSON(context.Background(), nil, "http://127.0.0.1:0", make(chan int), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "encoding request")
	})

	t.Run("context deadline", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := PostJSON(ctx, ts.Client(), ts.URL, payload{}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestGetJSON(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/tags", r.URL.Path)
		_ = json.NewEncoder(w).Encode(payload{Name: "tags"})
	}))
	defer ts.Close()

	var out payload
	require.NoError(t, GetJSON(context.Background(), ts.Client(), ts.URL+"/api/tags", &out))
	assert.Equal(t, "tags", out.Name)
}

func TestStatusError_NoBody(t *testing.T) {
	err := &StatusError{StatusCode: 502, Status: "502 Bad Gateway"}
	assert.Equal(t, "unexpected status: 502 Bad Gateway", err.Error())
}
