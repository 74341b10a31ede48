package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-mission-hub/internal/config"
	"github.com/MKhiriev/go-mission-hub/internal/logger"
	"github.com/MKhiriev/go-mission-hub/internal/utils"
)

// inferenceRequest is the text-generation payload of the hosted model.
type inferenceRequest struct {
	Inputs     string              `json:"inputs"`
	Parameters inferenceParameters `json:"parameters"`
	Options    inferenceOptions    `json:"options"`
}

type inferenceParameters struct {
	MaxNewTokens   int  `json:"max_new_tokens"`
	ReturnFullText bool `json:"return_full_text"`
}

type inferenceOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type generation struct {
	GeneratedText string `json:"generated_text"`
	Error         string `json:"error"`
}

type sleepFunc func(ctx context.Context, d time.Duration) error

type inferenceAdapter struct {
	client *utils.HTTPClient
	url    string
	apiKey string

	maxAttempts      int
	maxNewTokens     int
	retryWait        time.Duration
	modelLoadingWait time.Duration
	sleep            sleepFunc

	logger *logger.Logger
}

// NewInferenceAdapter returns an [InferenceAdapter] calling the hosted model at
// cfg.InferenceURL with cfg.APIKey as bearer token.
//
// Each Generate call makes at most cfg.MaxAttempts requests. A transport error
// waits cfg.RetryWait before the next attempt; a 503 waits for the
// Retry-After header or cfg.ModelLoadingWait when the header is absent.
func NewInferenceAdapter(cfg config.Adapter, logger *logger.Logger) InferenceAdapter {
	client := utils.NewHTTPClient()
	client.SetTimeout(cfg.RequestTimeout)

	return &inferenceAdapter{
		client:           client,
		url:              cfg.InferenceURL,
		apiKey:           cfg.APIKey,
		maxAttempts:      max(cfg.MaxAttempts, 1),
		maxNewTokens:     cfg.MaxNewTokens,
		retryWait:        cfg.RetryWait,
		modelLoadingWait: cfg.ModelLoadingWait,
		sleep:            sleepContext,
		logger:           logger,
	}
}

func (a *inferenceAdapter) Generate(ctx context.Context, prompt string) (string, error) {
	log := logger.FromContext(ctx)
	body := inferenceRequest{
		Inputs:     prompt,
		Parameters: inferenceParameters{MaxNewTokens: a.maxNewTokens},
		Options:    inferenceOptions{WaitForModel: true},
	}

	var lastErr error
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		var wait time.Duration

		resp, err := a.client.R().
			SetContext(ctx).
			SetAuthToken(a.apiKey).
			SetHeader("Content-Type", "application/json").
			SetBody(body).
			Post(a.url)

		switch {
		case err != nil:
			if ctx.Err() != nil {
				return "", fmt.Errorf("%w: %w", ErrInferenceUnavailable, ctx.Err())
			}
			lastErr = fmt.Errorf("inference request: %w", err)
			wait = a.retryWait
		case resp.StatusCode() == http.StatusServiceUnavailable:
			lastErr = fmt.Errorf("%w: %s", ErrModelLoading, errorText(resp.Body()))
			wait = retryAfter(resp.Header().Get("Retry-After"), a.modelLoadingWait)
		default:
			if err = mapHTTPError(resp); err != nil {
				return "", fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
			}
			return parseGeneration(resp.Body())
		}

		log.Warn().Err(lastErr).
			Str("func", "*inferenceAdapter.Generate").
			Int("attempt", attempt).
			Dur("wait", wait).
			Msg("inference attempt failed")

		if attempt == a.maxAttempts {
			break
		}
		if err = a.sleep(ctx, wait); err != nil {
			return "", fmt.Errorf("%w: %w", ErrInferenceUnavailable, err)
		}
	}

	return "", fmt.Errorf("%w: %w", ErrInferenceUnavailable, lastErr)
}

// parseGeneration accepts both the list form [{"generated_text": ...}] and a
// single object.
func parseGeneration(body []byte) (string, error) {
	var list []generation
	if err := json.Unmarshal(body, &list); err != nil {
		var single generation
		if err = json.Unmarshal(body, &single); err != nil {
			return "", fmt.Errorf("%w: decode generation: %w", ErrInferenceUnavailable, err)
		}
		list = []generation{single}
	}

	for _, g := range list {
		if g.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrInferenceUnavailable, g.Error)
		}
		if text := strings.TrimSpace(g.GeneratedText); text != "" {
			return text, nil
		}
	}

	return "", fmt.Errorf("%w: %w", ErrInferenceUnavailable, ErrEmptyGeneration)
}

// retryAfter reads a Retry-After value given in seconds or as an HTTP date.
func retryAfter(header string, fallback time.Duration) time.Duration {
	header = strings.TrimSpace(header)
	if header == "" {
		return fallback
	}
	if seconds, err := strconv.Atoi(header); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(header); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
		return 0
	}
	return fallback
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
