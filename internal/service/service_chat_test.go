package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/mock"
	"github.com/MKhiriev/go-mission-hub/internal/validators"
	"github.com/MKhiriev/go-mission-hub/models"
)

func TestChatService_Ask_Inference(t *testing.T) {
	ctrl := gomock.NewController(t)
	inference := mock.NewMockInferenceAdapter(ctrl)
	svc := NewChatService(inference, validators.NewChatValidator(), logger.Nop())
	ctx := context.Background()

	inference.EXPECT().Generate(ctx, "what next?").Return("Review mission 3.", nil)

	reply, err := svc.Ask(ctx, "  what next?  ")

	require.NoError(t, err)
	assert.Equal(t, models.ChatReply{Reply: "Review mission 3.", Source: models.ReplySourceInference}, reply)
}

func TestChatService_Ask_Canned(t *testing.T) {
	svc := NewChatService(nil, validators.NewChatValidator(), logger.Nop())

	reply, err := svc.Ask(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, models.CannedReply, reply.Reply)
	assert.Equal(t, models.ReplySourceCanned, reply.Source)
}

func TestChatService_Ask_InvalidMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	inference := mock.NewMockInferenceAdapter(ctrl)
	svc := NewChatService(inference, validators.NewChatValidator(), logger.Nop())

	_, err := svc.Ask(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrEmptyMessage)
}

func TestChatService_Ask_InferenceUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	inference := mock.NewMockInferenceAdapter(ctrl)
	svc := NewChatService(inference, validators.NewChatValidator(), logger.Nop())

	inference.EXPECT().
		Generate(gomock.Any(), "hi").
		Return("", adapter.ErrInferenceUnavailable)

	_, err := svc.Ask(context.Background(), "hi")

	assert.ErrorIs(t, err, adapter.ErrInferenceUnavailable)
}
