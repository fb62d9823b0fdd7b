package usecase

import (
	"context"
	"fmt"
	"time"

	"repupulse-api/internal/model"

	"github.com/sashabaranov/go-openai"
)

const openAISystemPrompt = `You are a sentiment analysis expert. Analyze the sentiment of the given text and respond with JSON: {"sentiment": "positive"|"negative"|"neutral", "score": 0-1, "keywords": string[]}`

// openAIProvider classifies text with a chat-completion call.
type openAIProvider struct {
	client *openai.Client
	model  string
}

func newOpenAIProvider(apiKey, modelName string, timeout time.Duration) *openAIProvider {
	if modelName == "" {
		modelName = openai.GPT3Dot5Turbo
	}
	clientCfg := openai.DefaultConfig(apiKey)
	clientCfg.HTTPClient = newProviderHTTPClient(timeout)

	return &openAIProvider{
		client: openai.NewClientWithConfig(clientCfg),
		model:  modelName,
	}
}

func (p *openAIProvider) Name() string { return "openai" }

func (p *openAIProvider) Classify(ctx context.Context, text string) (model.SentimentResult, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAISystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.3,
	})
	if err != nil {
		return model.SentimentResult{}, fmt.Errorf("openai chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return model.SentimentResult{}, fmt.Errorf("openai returned no choices")
	}

	return parsePayload(resp.Choices[0].Message.Content)
}
