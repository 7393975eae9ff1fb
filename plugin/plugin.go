// Package plugin exposes the NiuTrans translation client as a tool
// for a host plugin framework: declarative manifest metadata, payload
// validation, credential verification, and the ordered message
// emission the tool-invocation contract expects.
package plugin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/langgenius/niutrans-plugin/internal/config"
	"github.com/langgenius/niutrans-plugin/internal/logging"
	"github.com/langgenius/niutrans-plugin/niutrans"
)

// Plugin binds one set of credentials to the tool surface. Immutable
// after construction and safe for concurrent invocations.
type Plugin struct {
	client *niutrans.Client
	logger zerolog.Logger
}

// New builds a plugin for the given credentials. An empty apiURL
// selects the production endpoint.
func New(creds niutrans.Credentials, apiURL string, logger zerolog.Logger) *Plugin {
	return &Plugin{
		client: niutrans.NewClient(creds, apiURL, logger),
		logger: logger.With().Str("plugin", Meta().Name).Logger(),
	}
}

// NewFromEnv builds a plugin from NIUTRANS_* environment variables,
// for hosts that configure plugins via env instead of a credential UI.
func NewFromEnv() (*Plugin, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load plugin configuration: %w", err)
	}
	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("build plugin logger: %w", err)
	}
	return New(cfg.Credentials(), cfg.APIURL, logger), nil
}

// ValidateCredentials runs the canary verification request against the
// remote service. It returns nil when the held credentials are
// accepted; every failure carries the credential verification prefix.
func (p *Plugin) ValidateCredentials(ctx context.Context) error {
	if p == nil || p.client == nil {
		return fmt.Errorf("plugin is not initialized")
	}
	if err := p.client.Verify(ctx); err != nil {
		p.logger.Warn().Err(err).Msg("credential verification failed")
		return err
	}
	p.logger.Debug().Msg("credentials verified")
	return nil
}

// InvokeTool dispatches one tool invocation. For translate_text the
// emission is exactly two messages in fixed order: the structured
// record first, the bare translated text second.
func (p *Plugin) InvokeTool(ctx context.Context, name string, payload json.RawMessage) ([]Message, error) {
	if p == nil || p.client == nil {
		return nil, fmt.Errorf("plugin is not initialized")
	}
	switch name {
	case ToolTranslateText:
		return p.invokeTranslateText(ctx, payload)
	default:
		return nil, fmt.Errorf("tool %q is not registered (available: %s)", name, ToolTranslateText)
	}
}

func (p *Plugin) invokeTranslateText(ctx context.Context, payload json.RawMessage) ([]Message, error) {
	params, err := validateTranslateTextPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid translate_text parameters: %w", err)
	}

	result, err := p.client.Translate(ctx, niutrans.TranslateRequest{
		Text:       params.Text,
		SourceLang: params.FromLanguage,
		TargetLang: params.ToLanguage,
	})
	if err != nil {
		return nil, err
	}

	record, err := JSONMessage(result)
	if err != nil {
		return nil, fmt.Errorf("encode translation record: %w", err)
	}
	return []Message{record, TextMessage(result.TranslatedText)}, nil
}
