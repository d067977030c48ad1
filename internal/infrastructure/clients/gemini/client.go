package gemini

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"

	"github.com/VijeyRoshan/VoyaGo/internal/domain/entities"
	"github.com/VijeyRoshan/VoyaGo/internal/domain/providers"
	"github.com/VijeyRoshan/VoyaGo/internal/infrastructure/observability"
	"github.com/VijeyRoshan/VoyaGo/pkg/config"
)

// Client talks to the Gemini API and implements SuggestionProvider.
// When no usable API key is configured the client is still constructed;
// Generate then fails immediately and Configured reports false.
type Client struct {
	cfg    config.GeminiConfig
	client *genai.Client
}

// NewClient creates a Gemini client from configuration.
func NewClient(ctx context.Context, cfg config.GeminiConfig) (*Client, error) {
	c := &Client{cfg: cfg}
	if !cfg.Configured() {
		observability.GetLogger().Warn().Msg("Gemini API key not configured or is placeholder")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client

	return c, nil
}

// Configured reports whether the client holds a usable credential.
func (c *Client) Configured() bool {
	return c.client != nil
}

// Generate asks the model for a suggestion set and parses its reply.
func (c *Client) Generate(ctx context.Context, query entities.SuggestionQuery) (*entities.SuggestionSet, error) {
	if c.client == nil {
		return nil, fmt.Errorf("Gemini API key not configured")
	}

	ctx, span := observability.StartSpan(ctx, "gemini.Generate")
	defer span.End()
	observability.SetSpanAttributes(span,
		attribute.String("gemini.model", c.cfg.Model),
		attribute.String("suggestion.destination", query.Destination),
	)

	resp, err := c.client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(BuildPrompt(query)), nil)
	if err != nil {
		observability.RecordError(span, err)
		return nil, fmt.Errorf("failed to get AI suggestions: %w", err)
	}

	set, err := ParseResponse(resp.Text())
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	observability.LoggerFromContext(ctx).Debug().
		Str("destination", query.Destination).
		Int("accommodations", len(set.Accommodations)).
		Int("activities", len(set.Activities)).
		Msg("parsed Gemini suggestion response")

	return set, nil
}

var _ providers.SuggestionProvider = (*Client)(nil)
