package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
// Durations accept Go duration strings ("30s") or integer nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Driver string `json:"driver"`
		DB     struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Mongo struct {
			URI      string `json:"uri"`
			Database string `json:"database"`
		} `json:"mongo,omitempty"`
		Cache struct {
			RedisAddress  string   `json:"redis_address"`
			RedisPassword string   `json:"redis_password"`
			RedisDB       int      `json:"redis_db"`
			TTL           Duration `json:"ttl"`
		} `json:"cache,omitempty"`
		SkipSeed bool `json:"skip_seed"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		ChatRateLimit   float64  `json:"chat_rate_limit"`
		ChatBurst       int      `json:"chat_burst"`
	} `json:"server,omitempty"`

	Adapter struct {
		InferenceURL     string   `json:"inference_url"`
		APIKey           string   `json:"api_key"`
		RequestTimeout   Duration `json:"request_timeout"`
		MaxAttempts      int      `json:"max_attempts"`
		MaxNewTokens     int      `json:"max_new_tokens"`
		RetryWait        Duration `json:"retry_wait"`
		ModelLoadingWait Duration `json:"model_loading_wait"`
	} `json:"adapter,omitempty"`

	Workers struct {
		WarmupInterval Duration `json:"warmup_interval"`
	} `json:"workers,omitempty"`

	Client struct {
		ServerURL      string   `json:"server_url"`
		ReplyDelay     Duration `json:"reply_delay"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"client,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Driver: jsonCfg.Storage.Driver,
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
			Mongo: Mongo{
				URI:      jsonCfg.Storage.Mongo.URI,
				Database: jsonCfg.Storage.Mongo.Database,
			},
			Cache: Cache{
				RedisAddress:  jsonCfg.Storage.Cache.RedisAddress,
				RedisPassword: jsonCfg.Storage.Cache.RedisPassword,
				RedisDB:       jsonCfg.Storage.Cache.RedisDB,
				TTL:           time.Duration(jsonCfg.Storage.Cache.TTL),
			},
			SkipSeed: jsonCfg.Storage.SkipSeed,
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			ChatRateLimit:   jsonCfg.Server.ChatRateLimit,
			ChatBurst:       jsonCfg.Server.ChatBurst,
		},
		Adapter: Adapter{
			InferenceURL:     jsonCfg.Adapter.InferenceURL,
			APIKey:           jsonCfg.Adapter.APIKey,
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			MaxAttempts:      jsonCfg.Adapter.MaxAttempts,
			MaxNewTokens:     jsonCfg.Adapter.MaxNewTokens,
			RetryWait:        time.Duration(jsonCfg.Adapter.RetryWait),
			ModelLoadingWait: time.Duration(jsonCfg.Adapter.ModelLoadingWait),
		},
		Workers: Workers{
			WarmupInterval: time.Duration(jsonCfg.Workers.WarmupInterval),
		},
		Client: Client{
			ServerURL:      jsonCfg.Client.ServerURL,
			ReplyDelay:     time.Duration(jsonCfg.Client.ReplyDelay),
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
