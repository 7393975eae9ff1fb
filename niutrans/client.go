package niutrans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultAPIURL is the production NiuTrans API base URL.
	DefaultAPIURL = "https://api.niutrans.com"
	// translatePath is the text translation endpoint under the API base.
	translatePath = "/v2/text/translate"
	// requestTimeout bounds every round trip to the API.
	requestTimeout = 30 * time.Second

	// DefaultTargetLang is used when the caller does not pick a target.
	DefaultTargetLang = "en"
	// autoDetectDisplay is the display value reported for an empty
	// source language. The wire still carries the empty string.
	autoDetectDisplay = "auto"
)

// Client calls the NiuTrans text translation API with a fixed set of
// credentials. It holds no mutable state and is safe for concurrent use.
type Client struct {
	creds        Credentials
	translateURL string
	httpClient   *http.Client
	logger       zerolog.Logger
}

// NewClient builds a client for the given credentials. An empty apiURL
// selects the production endpoint.
func NewClient(creds Credentials, apiURL string, logger zerolog.Logger) *Client {
	return &Client{
		creds:        creds,
		translateURL: normalizeAPIURL(apiURL) + translatePath,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.With().Str("provider", "niutrans").Logger(),
	}
}

// Name identifies the provider behind this client.
func (c *Client) Name() string {
	return "niutrans"
}

// SupportedLanguages lists the language codes the tool documents.
func (c *Client) SupportedLanguages() []string {
	return SupportedLanguageCodes()
}

// Verify sends a fixed canary translation ("testing", en -> zh) to
// confirm the held credentials are accepted by the remote service.
// Every failure is wrapped with the credential verification prefix.
func (c *Client) Verify(ctx context.Context) error {
	if err := c.checkCredentials(); err != nil {
		return fmt.Errorf("Credential verification failed: %w", err)
	}

	params := map[string]string{
		"from":      "en",
		"to":        "zh",
		"srcText":   "testing",
		"appId":     c.creds.AppID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
	}
	if _, err := c.call(ctx, params); err != nil {
		return fmt.Errorf("Credential verification failed: %w", err)
	}
	return nil
}

// Translate performs one translation round trip. An empty SourceLang
// asks the remote API to auto-detect; the returned record reports it
// as "auto". Empty text is passed through, the remote API owns that
// decision.
func (c *Client) Translate(ctx context.Context, req TranslateRequest) (*Result, error) {
	if err := c.checkCredentials(); err != nil {
		return nil, fmt.Errorf("Translation request failed: %w", err)
	}
	targetLang := strings.TrimSpace(req.TargetLang)
	if targetLang == "" {
		return nil, fmt.Errorf("Translation request failed: %w", &ConfigError{Field: "target language"})
	}

	params := map[string]string{
		"from":      req.SourceLang,
		"to":        targetLang,
		"appId":     c.creds.AppID,
		"timestamp": strconv.FormatInt(time.Now().Unix(), 10),
		"srcText":   req.Text,
	}

	started := time.Now()
	resp, err := c.call(ctx, params)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			err = fmt.Errorf("Translation failed: %w", apiErr)
		}
		return nil, fmt.Errorf("Translation request failed: %w", err)
	}

	sourceLang := req.SourceLang
	if sourceLang == "" {
		sourceLang = autoDetectDisplay
	}
	c.logger.Debug().
		Str("from", sourceLang).
		Str("to", targetLang).
		Int64("latency_ms", time.Since(started).Milliseconds()).
		Msg("translation completed")

	return &Result{
		TranslatedText: resp.TgtText,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		OriginalText:   req.Text,
		ErrorCode:      resp.ErrorCode,
		ErrorMsg:       resp.ErrorMsg,
	}, nil
}

// call signs the parameter set, posts it form-encoded, and maps the
// three failure classes: transport status, malformed body, remote
// error code.
func (c *Client) call(ctx context.Context, params map[string]string) (*apiResponse, error) {
	form := url.Values{}
	for key, value := range params {
		form.Set(key, value)
	}
	form.Set("authStr", Sign(params, c.creds.APIKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.translateURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build translation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("send translation request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read translation response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("translation endpoint returned non-success status")
		return nil, &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &ParseError{Reason: "invalid JSON", Err: err}
	}
	if parsed.From == nil {
		return nil, &ParseError{Reason: `missing required field "from"`}
	}

	if parsed.ErrorCode != "" {
		c.logger.Warn().Str("error_code", parsed.ErrorCode).Msg("translation rejected by remote API")
		return nil, &APIError{Code: parsed.ErrorCode, Message: parsed.ErrorMsg}
	}
	return &parsed, nil
}

func (c *Client) checkCredentials() error {
	if strings.TrimSpace(c.creds.AppID) == "" {
		return &ConfigError{Field: "app_id"}
	}
	if strings.TrimSpace(c.creds.APIKey) == "" {
		return &ConfigError{Field: "apikey"}
	}
	return nil
}

func normalizeAPIURL(raw string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return DefaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || strings.TrimSpace(parsed.Host) == "" {
		return DefaultAPIURL
	}
	return trimmed
}
