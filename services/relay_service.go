package services

import (
	"context"
	"errors"
	"time"

	"varanex_backend/config"
	"varanex_backend/models"
	"varanex_backend/pkg/apperror"
	"varanex_backend/pkg/logging"
	"varanex_backend/utils"
)

const (
	Model       = "llama-3.1-8b-instant"
	Temperature = 0.7
	MaxTokens   = 2048

	SystemPrompt = "You are VaraNex AI, a helpful assistant. Respond in Markdown with headings, bullet points, and short paragraphs. Use emojis and decorative formatting to make answers visually appealing. Keep replies clear, concise, and easy to scan. Avoid long rambling text."
)

type RelayService struct {
	completer     Completer
	hasCredential bool
	now           func() time.Time
}

func NewRelayService(cfg *config.Config, completer Completer) *RelayService {
	return &RelayService{
		completer:     completer,
		hasCredential: cfg.HasCredential(),
		now:           time.Now,
	}
}

// ParseQuestion extracts a non-empty string question from a decoded body.
func ParseQuestion(body models.AskRequest) (string, error) {
	q, ok := body["question"].(string)
	if !ok || q == "" {
		return "", apperror.Validation()
	}
	return q, nil
}

// BuildCompletionRequest wraps question in the fixed relay prompt.
func BuildCompletionRequest(question string) models.CompletionRequest {
	return models.CompletionRequest{
		Model: Model,
		Messages: []models.ChatMessage{
			{Role: models.RoleSystem, Content: SystemPrompt},
			{Role: models.RoleUser, Content: question},
		},
		Temperature: Temperature,
		MaxTokens:   MaxTokens,
	}
}

// Ask forwards question to the provider and returns the answer envelope.
// The provider call is not cancelled when ctx is.
func (s *RelayService) Ask(ctx context.Context, question string) (*models.AskResponse, error) {
	if question == "" {
		return nil, apperror.Validation()
	}
	if !s.hasCredential {
		logging.Logger.Error("GROQ_API_KEY is not set")
		return nil, apperror.Configuration("GROQ_API_KEY is not set")
	}

	logging.Logger.Info("received question", "question", utils.Preview(question, 50))

	answer, err := s.completer.Complete(context.WithoutCancel(ctx), BuildCompletionRequest(question))
	if err != nil {
		logging.Logger.Error("completion failed", "error", err)
		return nil, classify(err)
	}

	logging.Logger.Info("response generated successfully", "chars", len(answer))
	return &models.AskResponse{
		Answer:    answer,
		Model:     Model,
		Timestamp: s.now().UTC().Format(models.TimestampLayout),
	}, nil
}

func classify(err error) error {
	var pe *ProviderError
	if errors.As(err, &pe) {
		msg := pe.Message
		if msg == "" && pe.Err != nil {
			msg = pe.Err.Error()
		}
		return apperror.FromProviderStatus(pe.StatusCode, msg, err)
	}
	return apperror.FromProviderStatus(0, err.Error(), err)
}
