// File: services/composer/gemini.go
package composer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"wayfarer/config"
)

// ErrNotConfigured reports that no Gemini API key is set, which keeps the
// composer in template-only mode.
var ErrNotConfigured = errors.New("gemini api key is not configured")

type geminiClient struct {
	model *genai.GenerativeModel
}

var (
	clientOnce sync.Once
	client     *geminiClient
	clientErr  error
)

// sharedClient initializes the Gemini model on first use and reuses it for
// every subsequent call. The error is cached alongside it, so a missing key
// at startup stays a missing key for the process lifetime.
func sharedClient() (*geminiClient, error) {
	clientOnce.Do(func() {
		apiKey := config.AppConfig.GeminiAPIKey
		if apiKey == "" {
			clientErr = ErrNotConfigured
			return
		}

		c, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
		if err != nil {
			clientErr = fmt.Errorf("failed to create Gemini client: %w", err)
			return
		}

		model := c.GenerativeModel(config.AppConfig.GeminiModel)
		model.SetMaxOutputTokens(2048)
		model.SetTemperature(0.65)
		model.SetTopP(0.8)
		client = &geminiClient{model: model}
	})
	return client, clientErr
}

func (g *geminiClient) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}

	var fragments []string
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			if textPart, ok := part.(genai.Text); ok {
				if text := strings.TrimSpace(string(textPart)); text != "" {
					fragments = append(fragments, text)
				}
			}
		}
	}

	cleaned := strings.TrimSpace(strings.Join(fragments, "\n\n"))
	if cleaned == "" {
		return "", errors.New("gemini response was empty")
	}
	return cleaned, nil
}
