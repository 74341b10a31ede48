package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-mission-hub/models"
)

const FieldMessage = "message"

// MaxMessageRunes bounds a chat message before it is relayed.
const MaxMessageRunes = 4000

type ChatValidator struct{}

func NewChatValidator() Validator {
	return &ChatValidator{}
}

// Validate checks a [models.ChatRequest]. With no fields given every rule is
// applied.
func (v *ChatValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ChatRequest:
		return v.validateChatRequest(value, fields...)
	case *models.ChatRequest:
		if value == nil {
			return ErrEmptyMessage
		}
		return v.validateChatRequest(*value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *ChatValidator) validateChatRequest(req models.ChatRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMessage}
	}

	for _, field := range fields {
		switch field {
		case FieldMessage:
			message := strings.TrimSpace(req.Message)
			if message == "" {
				return ErrEmptyMessage
			}
			if utf8.RuneCountInString(message) > MaxMessageRunes {
				return fmt.Errorf("%w: more than %d characters", ErrMessageTooLong, MaxMessageRunes)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	return nil
}
