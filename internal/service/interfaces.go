package service

import (
	"context"

	"github.com/MKhiriev/go-mission-hub/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AccountService implements the account operations of the hub.
type AccountService interface {
	// Signup creates an account with the next sequential uid. A claimed uid
	// that already exists yields store.ErrUserAlreadyExists.
	Signup(ctx context.Context, credentials models.Credentials) (models.User, error)
	// Signin returns the account whose uid and password both match, or
	// ErrWrongCredentials.
	Signin(ctx context.Context, credentials models.Credentials) (models.User, error)
	GetUser(ctx context.Context, uid models.UID) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
}

// ChatService answers assistant messages on the server.
type ChatService interface {
	Ask(ctx context.Context, message string) (models.ChatReply, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AssistantService produces replies for the terminal assistant.
type AssistantService interface {
	// Remote reports whether replies come from the hub server. When false
	// Ask returns the canned reply immediately and the caller applies the
	// reply delay itself.
	Remote() bool
	Ask(ctx context.Context, message string) (models.ChatReply, error)
}
