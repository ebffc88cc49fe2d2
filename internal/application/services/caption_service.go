package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v5"

	"github.com/lakbayph/lakbay-go/internal/domain/entities/visit"
	"github.com/lakbayph/lakbay-go/internal/infrastructure/observability/logging"
	"github.com/lakbayph/lakbay-go/pkg/config"
)

// CaptionService generates a short social caption for a share snapshot via a
// chat-completion endpoint, falling back through a model list and finally to
// a static template. Caption generation is best effort and never blocks a
// share.
type CaptionService struct {
	httpClient *http.Client
	logger     *logging.ChanneledLogger
}

// NewCaptionService creates the caption service.
func NewCaptionService(logger *logging.ChanneledLogger) *CaptionService {
	return &CaptionService{
		httpClient: &http.Client{Timeout: config.CaptionTimeout},
		logger:     logger,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GenerateCaption asks each configured model in order for a caption, retrying
// transient failures per model, and returns the template fallback when every
// model fails or no API key is configured. The overall call is bounded by the
// caption timeout regardless of per-attempt retries.
func (c *CaptionService) GenerateCaption(ctx context.Context, displayName string, stats visit.MapStats) string {
	fallback := templateCaption(displayName, stats)
	if config.CaptionAPIKey == "" {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, config.CaptionTimeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Write one upbeat sentence (max 140 characters, no hashtags) celebrating a traveler who has explored %d of %d Philippine provinces (%d%%).",
		stats.VisitedCount(), stats.Total, stats.VisitedPercentage(),
	)

	for _, model := range strings.Split(config.CaptionModels, ",") {
		model = strings.TrimSpace(model)
		if model == "" {
			continue
		}
		caption, err := backoff.Retry(ctx, func() (string, error) {
			return c.requestCaption(ctx, model, prompt)
		}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(2))
		if err == nil && caption != "" {
			return caption
		}
		c.logger.Share().Warn("Caption model failed", "model", model, "error", fmt.Sprint(err))
	}

	return fallback
}

func (c *CaptionService) requestCaption(ctx context.Context, model, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: "You write short, warm social media captions about travel."},
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", backoff.Permanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.CaptionEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+config.CaptionAPIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusBadRequest {
		return "", backoff.Permanent(fmt.Errorf("caption endpoint returned %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("caption endpoint returned %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("caption response had no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

// templateCaption is the deterministic fallback caption.
func templateCaption(displayName string, stats visit.MapStats) string {
	who := displayName
	if who == "" {
		who = "I"
	}
	return fmt.Sprintf("%s explored %d of %d Philippine provinces so far. %d%% of the archipelago and counting!",
		who, stats.VisitedCount(), stats.Total, stats.VisitedPercentage())
}
