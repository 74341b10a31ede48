package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/mock"
	"github.com/MKhiriev/go-mission-hub/internal/service"
	"github.com/MKhiriev/go-mission-hub/internal/validators"
	"github.com/MKhiriev/go-mission-hub/models"
)

func newChatRouter(t *testing.T, cfg config.Server) (http.Handler, *mock.MockChatService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	chat := mock.NewMockChatService(ctrl)

	h := NewHandler(&service.Services{ChatService: chat}, cfg, logger.Nop())
	return h.Init(), chat
}

func TestChat(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(chat *mock.MockChatService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "reply from inference",
			body: `{"message":"status of mission 2?"}`,
			setup: func(chat *mock.MockChatService) {
				chat.EXPECT().Ask(gomock.Any(), "status of mission 2?").
					Return(models.ChatReply{Reply: "On track.", Source: models.ReplySourceInference}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"reply":"On track.","source":"inference"}`,
		},
		{
			name:       "undecodable body",
			body:       `{"message":`,
			setup:      func(chat *mock.MockChatService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request"}`,
		},
		{
			name: "empty message",
			body: `{"message":"  "}`,
			setup: func(chat *mock.MockChatService) {
				chat.EXPECT().Ask(gomock.Any(), "  ").
					Return(models.ChatReply{}, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyMessage))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"Invalid request","message":"invalid data provided: message is required"}`,
		},
		{
			name: "inference unavailable",
			body: `{"message":"hi"}`,
			setup: func(chat *mock.MockChatService) {
				chat.EXPECT().Ask(gomock.Any(), "hi").
					Return(models.ChatReply{}, fmt.Errorf("ask inference: %w", adapter.ErrInferenceUnavailable))
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"AI service unavailable"}`,
		},
		{
			name: "unexpected failure",
			body: `{"message":"hi"}`,
			setup: func(chat *mock.MockChatService) {
				chat.EXPECT().Ask(gomock.Any(), "hi").Return(models.ChatReply{}, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, chat := newChatRouter(t, config.Server{})
			tt.setup(chat)

			rr := do(t, router, http.MethodPost, PathChat, tt.body)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
		})
	}
}

func TestChat_RateLimited(t *testing.T) {
	router, chat := newChatRouter(t, config.Server{ChatRateLimit: 0.001, ChatBurst: 1})

	chat.EXPECT().Ask(gomock.Any(), "hi").
		Return(models.ChatReply{Reply: "hello", Source: models.ReplySourceCanned}, nil).
		Times(1)

	first := do(t, router, http.MethodPost, PathChat, `{"message":"hi"}`)
	second := do(t, router, http.MethodPost, PathChat, `{"message":"hi"}`)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, second.Body.String())
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
}

func TestChat_RateLimitDoesNotApplyToAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	accounts := mock.NewMockAccountService(ctrl)
	h := NewHandler(&service.Services{AccountService: accounts}, config.Server{ChatRateLimit: 0.001, ChatBurst: 1}, logger.Nop())
	router := h.Init()

	accounts.EXPECT().GetUser(gomock.Any(), models.NewUID(1)).Return(models.FixtureUser(), nil).Times(3)

	for range 3 {
		rr := do(t, router, http.MethodGet, PathGetUser+"?uid=1", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}
