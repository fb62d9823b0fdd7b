package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"repupulse-api/internal/model"
)

const (
	geminiAPIBase      = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiPromptFormat = `Analyze the sentiment of this text and respond with JSON: {"sentiment": "positive"|"negative"|"neutral", "score": 0-1, "keywords": string[]}

Text: %s`
)

// geminiProvider classifies text with a single-turn generateContent call.
// The model cannot be constrained to pure JSON, so the first brace-delimited
// substring of the response is extracted before parsing.
type geminiProvider struct {
	apiKey string
	model  string
	client *http.Client
}

func newGeminiProvider(apiKey, modelName string, timeout time.Duration) *geminiProvider {
	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}
	return &geminiProvider{
		apiKey: apiKey,
		model:  modelName,
		client: newProviderHTTPClient(timeout),
	}
}

func (p *geminiProvider) Name() string { return "gemini" }

type geminiRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		Temperature float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func (p *geminiProvider) Classify(ctx context.Context, text string) (model.SentimentResult, error) {
	var reqBody geminiRequest
	reqBody.Contents = make([]struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	}, 1)
	reqBody.Contents[0].Parts = []struct {
		Text string `json:"text"`
	}{{Text: fmt.Sprintf(geminiPromptFormat, text)}}
	reqBody.GenerationConfig.Temperature = 0.3

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return model.SentimentResult{}, fmt.Errorf("marshal gemini payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s:generateContent?key=%s", geminiAPIBase, p.model, url.QueryEscape(p.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return model.SentimentResult{}, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return model.SentimentResult{}, fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.SentimentResult{}, fmt.Errorf("gemini API returned status %d", resp.StatusCode)
	}

	var body geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return model.SentimentResult{}, fmt.Errorf("decode gemini response: %w", err)
	}

	if len(body.Candidates) == 0 || len(body.Candidates[0].Content.Parts) == 0 {
		return model.SentimentResult{}, fmt.Errorf("gemini returned no candidates")
	}

	content := body.Candidates[0].Content.Parts[0].Text
	jsonBody, ok := extractJSONObject(content)
	if !ok {
		return model.SentimentResult{}, fmt.Errorf("gemini response contains no JSON object")
	}

	return parsePayload(jsonBody)
}
