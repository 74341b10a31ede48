package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		wantNextCalled bool
		wantStatus     int
	}{
		{name: "preflight short-circuits", method: http.MethodOptions, wantNextCalled: false, wantStatus: http.StatusOK},
		{name: "GET passes through", method: http.MethodGet, wantNextCalled: true, wantStatus: http.StatusTeapot},
		{name: "POST passes through", method: http.MethodPost, wantNextCalled: true, wantStatus: http.StatusTeapot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			rr := httptest.NewRecorder()
			withCORS(next).ServeHTTP(rr, httptest.NewRequest(tt.method, "/anything", nil))

			assert.Equal(t, tt.wantNextCalled, nextCalled)
			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}
