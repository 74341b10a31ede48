package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mission-hub/internal/adapter"
	"github.com/MKhiriev/go-mission-hub/models"
)

type assistantService struct {
	server adapter.ServerAdapter
}

// NewAssistantService returns the client-side reply source. With a nil
// server every reply is canned.
func NewAssistantService(server adapter.ServerAdapter) AssistantService {
	return &assistantService{server: server}
}

func (a *assistantService) Remote() bool {
	return a.server != nil
}

func (a *assistantService) Ask(ctx context.Context, message string) (models.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.ChatReply{}, ErrInvalidDataProvided
	}

	if a.server == nil {
		return models.ChatReply{Reply: models.CannedReply, Source: models.ReplySourceCanned}, nil
	}

	reply, err := a.server.Chat(ctx, message)
	if err != nil {
		return models.ChatReply{}, fmt.Errorf("ask hub server: %w", err)
	}

	return reply, nil
}
