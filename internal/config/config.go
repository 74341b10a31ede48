// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the assistant client. It is populated by merging defaults,
// a .env file, environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the user store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address, timeouts and chat rate limits.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the outbound inference backend used by /api/chat.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Client holds settings used only by the assistant client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is the .env file loaded before environment parsing.
	// Populated via the ENV_FILE environment variable; defaults to ".env".
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format. Defaults to the loopback address 127.0.0.1:1411.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds reading a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown on SIGTERM/SIGINT.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// ChatRateLimit is the sustained number of /api/chat requests per second
	// relayed to the inference backend. Zero disables the limit.
	// Env: SERVER_CHAT_RATE_LIMIT
	ChatRateLimit float64 `env:"CHAT_RATE_LIMIT"`

	// ChatBurst is the number of /api/chat requests allowed above the rate.
	// Env: SERVER_CHAT_BURST
	ChatBurst int `env:"CHAT_BURST"`
}

// Storage selects the user store.
type Storage struct {
	// Driver is one of "memory", "sqlite", "postgres" or "mongo".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the SQL connection settings used by the sqlite and postgres
	// drivers.
	DB DB `envPrefix:"DB_"`

	// Mongo holds the MongoDB connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`

	// Cache configures the optional Redis read-through cache.
	Cache Cache `envPrefix:"CACHE_"`

	// SkipSeed disables inserting the fixture user into an empty store.
	// Env: STORAGE_SKIP_SEED
	SkipSeed bool `env:"SKIP_SEED"`
}

// DB holds connection settings for the relational database backends.
type DB struct {
	// DSN is the PostgreSQL connection string or the SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Mongo holds MongoDB settings.
type Mongo struct {
	// URI is the MongoDB connection string.
	// Env: STORAGE_MONGO_URI
	URI string `env:"URI"`

	// Database is the database holding the users collection.
	// Env: STORAGE_MONGO_DATABASE
	Database string `env:"DATABASE"`
}

// Cache holds Redis settings. An empty RedisAddress disables caching.
type Cache struct {
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`
	// Env: STORAGE_CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: STORAGE_CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
	// TTL is how long a cached user stays valid.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Adapter configures the hosted text-generation model behind /api/chat.
// An empty APIKey makes the assistant answer with the canned reply.
type Adapter struct {
	// InferenceURL is the model endpoint.
	// Env: ADAPTER_INFERENCE_URL
	InferenceURL string `env:"INFERENCE_URL"`

	// APIKey is sent as a bearer token. Falls back to HF_API_KEY.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single call to the model.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MaxAttempts is the total number of calls made for one message.
	// Env: ADAPTER_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// MaxNewTokens caps the generated reply length.
	// Env: ADAPTER_MAX_NEW_TOKENS
	MaxNewTokens int `env:"MAX_NEW_TOKENS"`

	// RetryWait is the pause after a transport error.
	// Env: ADAPTER_RETRY_WAIT
	RetryWait time.Duration `env:"RETRY_WAIT"`

	// ModelLoadingWait is the pause after a 503 without Retry-After.
	// Env: ADAPTER_MODEL_LOADING_WAIT
	ModelLoadingWait time.Duration `env:"MODEL_LOADING_WAIT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// WarmupInterval is how often the model warm-up prompt is sent.
	// Zero disables the worker.
	// Env: WORKERS_WARMUP_INTERVAL
	WarmupInterval time.Duration `env:"WARMUP_INTERVAL"`
}

// Client holds assistant client settings.
type Client struct {
	// ServerURL is the mission hub base URL. Empty means canned replies only.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// ReplyDelay is the artificial delay before a canned reply is shown.
	// Env: CLIENT_REPLY_DELAY
	ReplyDelay time.Duration `env:"REPLY_DELAY"`

	// RequestTimeout bounds a single /api/chat call.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage drivers understood by the store package.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// DefaultInferenceURL is the hosted instruction-tuned model used by default.
const DefaultInferenceURL = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.1"

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "debug",
		},
		Storage: Storage{
			Driver: DriverMemory,
			Mongo: Mongo{
				Database: "mission_hub",
			},
			Cache: Cache{
				TTL: 5 * time.Minute,
			},
		},
		Server: Server{
			HTTPAddress:     "127.0.0.1:1411",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			ChatRateLimit:   2,
			ChatBurst:       5,
		},
		Adapter: Adapter{
			InferenceURL:     DefaultInferenceURL,
			RequestTimeout:   60 * time.Second,
			MaxAttempts:      2,
			MaxNewTokens:     500,
			RetryWait:        2 * time.Second,
			ModelLoadingWait: 10 * time.Second,
		},
		Client: Client{
			ReplyDelay:     800 * time.Millisecond,
			RequestTimeout: 90 * time.Second,
		},
		EnvFilePath: ".env",
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file (missing file is not an error)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
