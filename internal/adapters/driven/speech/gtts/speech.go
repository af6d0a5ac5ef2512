// Package gtts renders text to MP3 speech using the Google Translate TTS
// endpoint.
package gtts

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
	"github.com/sandipbaste/My-Portfolio/internal/core/ports/driven"
)

// Ensure SpeechService implements the interface.
var _ driven.SpeechService = (*SpeechService)(nil)

// Default configuration values.
const (
	DefaultBaseURL  = "https://translate.google.com"
	DefaultLanguage = "en"
	DefaultTimeout  = 15 * time.Second

	// maxAttempts bounds synthesis retries. Synthesis is optional, so a
	// flaky endpoint must never stall the response for long.
	maxAttempts = 3

	// initialBackoff seeds the exponential retry schedule.
	initialBackoff = 500 * time.Millisecond

	// maxQueryLength is the endpoint's practical per-request text limit.
	maxQueryLength = 200
)

// Config holds configuration for the TTS service.
type Config struct {
	// BaseURL overrides the endpoint, used in tests (default: Google
	// Translate).
	BaseURL string

	// Language is the speech language code (default: en).
	Language string

	// Timeout is the per-request timeout (default: 15s).
	Timeout time.Duration
}

// SpeechService synthesises speech via HTTP with bounded retries.
type SpeechService struct {
	client   *resty.Client
	language string
}

// NewSpeechService creates the TTS service.
func NewSpeechService(cfg Config) *SpeechService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}

	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout)

	return &SpeechService{client: client, language: cfg.Language}
}

// Synthesise returns an MP3 rendering of the given text. Long responses
// are truncated to the endpoint's query limit; spoken answers only need
// the opening sentences.
func (s *SpeechService) Synthesise(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", domain.ErrSpeechUnavailable)
	}
	if runes := []rune(text); len(runes) > maxQueryLength {
		text = string(runes[:maxQueryLength])
	}

	backoff := retry.WithMaxRetries(maxAttempts-1, retry.NewExponential(initialBackoff))

	var audio []byte
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		resp, err := s.client.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"ie":     "UTF-8",
				"client": "tw-ob",
				"tl":     s.language,
				"q":      text,
			}).
			Get("/translate_tts")
		if err != nil {
			return retry.RetryableError(err)
		}
		if resp.StatusCode() >= 500 {
			return retry.RetryableError(fmt.Errorf("tts status %d", resp.StatusCode()))
		}
		if resp.StatusCode() != 200 {
			return fmt.Errorf("tts status %d", resp.StatusCode())
		}
		if len(resp.Body()) == 0 {
			return retry.RetryableError(fmt.Errorf("tts returned empty body"))
		}
		audio = resp.Body()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSpeechUnavailable, err)
	}
	return audio, nil
}
