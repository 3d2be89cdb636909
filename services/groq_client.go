package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"varanex_backend/models"
)

// GroqClient implements Completer against Groq's OpenAI-compatible
// chat-completions endpoint.
type GroqClient struct {
	client openai.Client
}

// NewGroqClient builds a client for baseURL. The SDK's retry loop is
// disabled: every provider failure goes straight back to the caller.
func NewGroqClient(apiKey, baseURL string, httpClient *http.Client) *GroqClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &GroqClient{
		client: openai.NewClient(
			option.WithAPIKey(apiKey),
			option.WithBaseURL(baseURL),
			option.WithHTTPClient(httpClient),
			option.WithMaxRetries(0),
		),
	}
}

func (g *GroqClient) Complete(ctx context.Context, req models.CompletionRequest) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case models.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(req.Model),
		Messages:    messages,
		Temperature: openai.Float(req.Temperature),
		MaxTokens:   openai.Int(req.MaxTokens),
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &ProviderError{StatusCode: apiErr.StatusCode, Message: apiErr.Message, Err: err}
		}
		return "", &ProviderError{Message: err.Error(), Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Message: "no choices in response"}
	}
	return resp.Choices[0].Message.Content, nil
}
