// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/mock"
	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/internal/store"
	"github.com/MKhiriev/go-mission-hub/models"
)

// newTestRouter serves the real services over a seeded in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := store.NewMemoryUserRepository(logger.Nop())
	require.NoError(t, store.Seed(context.Background(), repo, logger.Nop()))

	services, err := service.NewServices(
		&store.Storages{UserRepository: repo},
		nil,
		config.StructuredConfig{App: config.App{Version: "test-version"}},
		logger.Nop(),
	)
	require.NoError(t, err)

	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

func do(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeAccount(t *testing.T, rr *httptest.ResponseRecorder) models.AccountResponse {
	t.Helper()

	var resp models.AccountResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp
}

// ── signup ───────────────────────────────────────────────────────────────────

func TestSignup_NewUserGetsIncrementingUID(t *testing.T) {
	router := newTestRouter(t)

	first := do(t, router, http.MethodPost, PathSignup, `{"userUID": 50, "userPassword": "pw"}`)
	second := do(t, router, http.MethodPost, PathSignup, `{"userPassword": "pw2"}`)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	firstResp := decodeAccount(t, first)
	secondResp := decodeAccount(t, second)

	assert.Empty(t, firstResp.Error)
	assert.Equal(t, msgSignupSucceeded, firstResp.Message)
	require.NotNil(t, firstResp.UserUID)
	assert.Equal(t, int64(2), *firstResp.UserUID)

	require.NotNil(t, secondResp.UserUID)
	assert.Equal(t, int64(3), *secondResp.UserUID)
}

func TestSignup_ExistingUID(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "numeric uid", body: `{"userUID": 1, "userPassword": "x"}`},
		{name: "string uid", body: `{"userUID": "1", "userPassword": "x"}`},
		{name: "numeric password", body: `{"userUID": 1, "userPassword": 123456}`},
		{name: "object password", body: `{"userUID": 1, "userPassword": {"plain": "x"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			rr := do(t, router, http.MethodPost, PathSignup, tt.body)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"error":"user already exists","message":"user already exists","userUID":null}`, rr.Body.String())
		})
	}
}

func TestSignup_MalformedBodyIsTreatedAsEmpty(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodPost, PathSignup, `{"userUID": 1,`)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeAccount(t, rr)
	assert.Empty(t, resp.Error)
	require.NotNil(t, resp.UserUID)
	assert.Equal(t, int64(2), *resp.UserUID)
}

func TestSignup_WithoutUIDCreatesAccount(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no uid", body: `{"userPassword": "pw"}`},
		{name: "null uid", body: `{"userUID": null, "userPassword": "pw"}`},
		{name: "empty object", body: `{}`},
		{name: "not an object", body: `[1, 2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			rr := do(t, router, http.MethodPost, PathSignup, tt.body)

			require.Equal(t, http.StatusOK, rr.Code)
			resp := decodeAccount(t, rr)
			assert.Empty(t, resp.Error)
			assert.Equal(t, msgSignupSucceeded, resp.Message)
			require.NotNil(t, resp.UserUID)
			assert.Equal(t, int64(2), *resp.UserUID)

			got := do(t, router, http.MethodGet, PathGetUser+"?uid=2", "")
			assert.Equal(t, http.StatusOK, got.Code)
		})
	}
}

func TestSignup_AssignedUIDConflictIsInternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	router := NewHandler(&service.Services{AccountService: accounts}, config.Server{}, logger.Nop()).Init()

	accounts.EXPECT().Signup(gomock.Any(), models.Credentials{UserPassword: "pw"}).
		Return(models.User{}, fmt.Errorf("user creation ended with error: %w: 2", store.ErrUIDAssignmentConflict))

	rr := do(t, router, http.MethodPost, PathSignup, `{"userPassword": "pw"}`)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
}

// ── signin ───────────────────────────────────────────────────────────────────

func TestSignin(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantUID *int64
		wantErr string
		wantMsg string
	}{
		{name: "correct credentials", body: `{"userUID": 1, "userPassword": "123456"}`, wantUID: ptr(int64(1)), wantMsg: msgSigninSucceeded},
		{name: "string uid", body: `{"userUID": "1", "userPassword": "123456"}`, wantUID: ptr(int64(1)), wantMsg: msgSigninSucceeded},
		{name: "wrong password", body: `{"userUID": 1, "userPassword": "654321"}`, wantErr: msgWrongCredentials, wantMsg: msgWrongCredentials},
		{name: "unknown uid", body: `{"userUID": 9, "userPassword": "123456"}`, wantErr: msgWrongCredentials, wantMsg: msgWrongCredentials},
		{name: "empty body", body: ``, wantErr: msgWrongCredentials, wantMsg: msgWrongCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			rr := do(t, router, http.MethodPost, PathSignin, tt.body)

			require.Equal(t, http.StatusOK, rr.Code)
			resp := decodeAccount(t, rr)
			assert.Equal(t, tt.wantErr, resp.Error)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.Equal(t, tt.wantUID, resp.UserUID)
		})
	}
}

// ── get ──────────────────────────────────────────────────────────────────────

func TestGetUser_Fixture(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodGet, PathGetUser+"?uid=1", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"user":{
		"userUID":1,
		"teamsBelong":[{"teamUID":1,"score":85,"percentComplete":75}],
		"score":85,
		"missions":[1],
		"teamsOwn":[1]
	}}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "123456")
}

func TestGetUser_NewUserHasEmptyListsAndZeroScore(t *testing.T) {
	router := newTestRouter(t)
	do(t, router, http.MethodPost, PathSignup, `{"userPassword": "pw"}`)

	rr := do(t, router, http.MethodGet, PathGetUser+"?uid=2", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"user":{"userUID":2,"teamsBelong":[],"score":0,"missions":[],"teamsOwn":[]}}`, rr.Body.String())
}

func TestGetUser_Unknown(t *testing.T) {
	for _, target := range []string{PathGetUser + "?uid=42", PathGetUser + "?uid=abc", PathGetUser} {
		t.Run(target, func(t *testing.T) {
			rr := do(t, newTestRouter(t), http.MethodGet, target, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"user does not exist"}`, rr.Body.String())
		})
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func TestUpdate_MergesOnlyProvidedFields(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodPost, PathUpdate, `{"userUID": 1, "missions": [7, 8], "teamsOwn": null}`)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := decodeAccount(t, rr)
	assert.Empty(t, resp.Error)
	assert.Equal(t, msgUpdateSucceeded, resp.Message)
	require.NotNil(t, resp.UserUID)
	assert.Equal(t, int64(1), *resp.UserUID)

	got := do(t, router, http.MethodGet, PathGetUser+"?uid=1", "")
	assert.JSONEq(t, `{"user":{
		"userUID":1,
		"teamsBelong":[{"teamUID":1,"score":85,"percentComplete":75}],
		"score":85,
		"missions":[7,8],
		"teamsOwn":[1]
	}}`, got.Body.String())

	// password untouched
	signin := decodeAccount(t, do(t, router, http.MethodPost, PathSignin, `{"userUID": 1, "userPassword": "123456"}`))
	assert.Empty(t, signin.Error)
}

func TestUpdate_EmptyArrayReplacesAndPasswordChanges(t *testing.T) {
	router := newTestRouter(t)

	rr := do(t, router, http.MethodPost, PathUpdate, `{"userUID": "1", "teamsBelong": [], "userPassword": "new"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	got := do(t, router, http.MethodGet, PathGetUser+"?uid=1", "")
	assert.JSONEq(t, `{"user":{"userUID":1,"teamsBelong":[],"score":0,"missions":[1],"teamsOwn":[1]}}`, got.Body.String())

	old := decodeAccount(t, do(t, router, http.MethodPost, PathSignin, `{"userUID": 1, "userPassword": "123456"}`))
	assert.Equal(t, msgWrongCredentials, old.Error)

	updated := decodeAccount(t, do(t, router, http.MethodPost, PathSignin, `{"userUID": 1, "userPassword": "new"}`))
	assert.Empty(t, updated.Error)
}

func TestUpdate_WronglyTypedFieldIsIgnored(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "string missions",
			body: `{"userUID": 1, "missions": ["m-7"], "teamsOwn": [4]}`,
			want: `{"user":{"userUID":1,"teamsBelong":[{"teamUID":1,"score":85,"percentComplete":75}],"score":85,"missions":[1],"teamsOwn":[4]}}`,
		},
		{
			name: "fractional missions",
			body: `{"userUID": 1, "missions": [1.5], "teamsBelong": []}`,
			want: `{"user":{"userUID":1,"teamsBelong":[],"score":0,"missions":[1],"teamsOwn":[1]}}`,
		},
		{
			name: "only a bad field",
			body: `{"userUID": 1, "teamsOwn": "all"}`,
			want: `{"user":{"userUID":1,"teamsBelong":[{"teamUID":1,"score":85,"percentComplete":75}],"score":85,"missions":[1],"teamsOwn":[1]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(t)

			rr := do(t, router, http.MethodPost, PathUpdate, tt.body)

			require.Equal(t, http.StatusOK, rr.Code)
			resp := decodeAccount(t, rr)
			assert.Empty(t, resp.Error)
			assert.Equal(t, msgUpdateSucceeded, resp.Message)

			got := do(t, router, http.MethodGet, PathGetUser+"?uid=1", "")
			assert.JSONEq(t, tt.want, got.Body.String())
		})
	}
}

func TestUpdate_UnknownUser(t *testing.T) {
	for _, body := range []string{`{"userUID": 77, "missions": [1]}`, `not json`, ``} {
		t.Run(body, func(t *testing.T) {
			rr := do(t, newTestRouter(t), http.MethodPost, PathUpdate, body)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"user does not exist","message":"user does not exist","userUID":null}`, rr.Body.String())
		})
	}
}

// ── fallback, CORS, tracing ─────────────────────────────────────────────────

func TestFallback_NotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
	}{
		{name: "unknown path", method: http.MethodGet, target: "/nope"},
		{name: "root", method: http.MethodGet, target: "/"},
		{name: "signup with GET", method: http.MethodGet, target: PathSignup},
		{name: "get with POST", method: http.MethodPost, target: PathGetUser},
		{name: "update with PUT", method: http.MethodPut, target: PathUpdate},
		{name: "chat with GET", method: http.MethodGet, target: PathChat},
		{name: "signin with DELETE", method: http.MethodDelete, target: PathSignin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, newTestRouter(t), tt.method, tt.target, "")

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.JSONEq(t, `{"error":"endpoint does not exist","message":"endpoint does not exist"}`, rr.Body.String())
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestOptions_AnyPath(t *testing.T) {
	for _, target := range []string{PathSignup, PathGetUser, "/does/not/exist", PathChat} {
		t.Run(target, func(t *testing.T) {
			rr := do(t, newTestRouter(t), http.MethodOptions, target, "")

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Empty(t, rr.Body.String())
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rr.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Allow-Headers"))
		})
	}
}

func TestResponses_CarryTraceID(t *testing.T) {
	router := newTestRouter(t)

	generated := do(t, router, http.MethodGet, PathGetUser+"?uid=1", "")
	assert.NotEmpty(t, generated.Header().Get("X-Trace-ID"))

	req := httptest.NewRequest(http.MethodGet, PathGetUser+"?uid=1", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	assert.Equal(t, "trace-123", rr.Header().Get("X-Trace-ID"))
}

func TestVersion(t *testing.T) {
	rr := do(t, newTestRouter(t), http.MethodGet, PathVersion, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Equal(t, "test-version", rr.Body.String())
}

func TestChat_CannedWithoutInference(t *testing.T) {
	rr := do(t, newTestRouter(t), http.MethodPost, PathChat, `{"message": "hello"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	var reply models.ChatReply
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reply))
	assert.Equal(t, models.ReplySourceCanned, reply.Source)
	assert.Equal(t, models.CannedReply, reply.Reply)
}

func TestEndpoints(t *testing.T) {
	endpoints := Endpoints()

	assert.Len(t, endpoints, 6)
	assert.Contains(t, endpoints, "POST "+PathChat)
}

func ptr[T any](v T) *T {
	return &v
}
