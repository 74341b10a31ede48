package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get its whole API while the
// application defaults below stay in one place.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that accepts JSON, identifies
// itself with [UserAgent] and never retries on its own; retry policies belong
// to the adapters.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", UserAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}

// UserAgent is sent with every outbound request.
const UserAgent = "go-mission-hub"
