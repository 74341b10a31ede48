package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/models"
)

func newTestServerAdapter(t *testing.T, handler http.HandlerFunc) ServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientConfig{ServerURL: srv.URL + "/", RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:1411", want: "http://localhost:1411"},
		{name: "with scheme and slash", raw: " https://hub.example.com/ ", want: "https://hub.example.com"},
		{name: "empty", raw: "  ", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientConfig{}, logger.Nop())
	assert.Error(t, err)
}

func TestHTTPServerAdapter_Chat(t *testing.T) {
	var got models.ChatRequest
	a := newTestServerAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/chat", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"reply":"hello","source":"inference"}`))
	})

	reply, err := a.Chat(context.Background(), "hi there")

	require.NoError(t, err)
	assert.Equal(t, "hi there", got.Message)
	assert.Equal(t, models.ChatReply{Reply: "hello", Source: models.ReplySourceInference}, reply)
}

func TestHTTPServerAdapter_Chat_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"Invalid request"}`, wantErr: ErrBadRequest, wantMsg: "Invalid request"},
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":"too many requests"}`, wantErr: ErrTooManyRequests},
		{name: "upstream down", status: http.StatusBadGateway, body: `{"error":"AI service unavailable"}`, wantErr: ErrBadGateway, wantMsg: "AI service unavailable"},
		{name: "not found", status: http.StatusNotFound, body: `{"error":"endpoint does not exist"}`, wantErr: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, body: `oops`, wantErr: ErrInternalServerError, wantMsg: "oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestServerAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := a.Chat(context.Background(), "hi")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestHTTPServerAdapter_Chat_UnexpectedStatus(t *testing.T) {
	a := newTestServerAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	_, err := a.Chat(context.Background(), "hi")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestHTTPServerAdapter_Version(t *testing.T) {
	a := newTestServerAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("v1.4.0\n"))
	})

	version, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", version)
}
