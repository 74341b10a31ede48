package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/validators"
	"github.com/MKhiriev/go-mission-hub/models"
)

type chatService struct {
	inference adapter.InferenceAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewChatService relays messages to inference. A nil inference adapter makes
// every answer the canned reply.
func NewChatService(inference adapter.InferenceAdapter, validator validators.Validator, logger *logger.Logger) ChatService {
	return &chatService{
		inference: inference,
		validator: validator,
		logger:    logger,
	}
}

func (c *chatService) Ask(ctx context.Context, message string) (models.ChatReply, error) {
	log := logger.FromContext(ctx)

	if err := c.validator.Validate(ctx, models.ChatRequest{Message: message}); err != nil {
		return models.ChatReply{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if c.inference == nil {
		return models.ChatReply{Reply: models.CannedReply, Source: models.ReplySourceCanned}, nil
	}

	text, err := c.inference.Generate(ctx, strings.TrimSpace(message))
	if err != nil {
		log.Err(err).Str("func", "*chatService.Ask").Msg("inference failed")
		return models.ChatReply{}, fmt.Errorf("ask inference: %w", err)
	}

	return models.ChatReply{Reply: text, Source: models.ReplySourceInference}, nil
}
