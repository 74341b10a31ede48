package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const clientLogFileName = "assistant.log"

// ClientConfig is the assistant client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Version is shown in the widget header.
	Version string
	// ServerURL is the mission hub base URL. Empty means offline mode with
	// canned replies.
	ServerURL string
	// ReplyDelay is how long the canned reply takes to appear.
	ReplyDelay time.Duration
	// RequestTimeout bounds a single /api/chat call.
	RequestTimeout time.Duration
	// LogFile is where the client writes its logs; the terminal belongs to
	// the UI.
	LogFile string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return clientConfigFrom(cfg)
}

func clientConfigFrom(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		Version:        cfg.App.Version,
		ServerURL:      cfg.Client.ServerURL,
		ReplyDelay:     cfg.Client.ReplyDelay,
		RequestTimeout: cfg.Client.RequestTimeout,
		LogFile:        clientLogFile(),
	}

	return clientCfg, clientCfg.validate()
}

// clientLogFile places the log next to the executable so it does not depend
// on the directory the client was started from.
func clientLogFile() string {
	exe, err := os.Executable()
	if err != nil {
		return clientLogFileName
	}
	return filepath.Join(filepath.Dir(exe), clientLogFileName)
}
