package services

import (
	"context"
	"fmt"
	"log"
	"time"
)

// FallbackSuggestion is returned whenever the generative API call fails; the
// assistant is decorative and must never surface an error to the shopper.
const FallbackSuggestion = "Could not fetch AI suggestion."

// AssistantService asks a generative-language API for a one-line marketing
// blurb about a product.
type AssistantService struct {
	api    *apiClient
	apiKey string
	model  string
}

func NewAssistantService(baseURL, apiKey, model string, timeout time.Duration) *AssistantService {
	return &AssistantService{
		api:    newAPIClient(baseURL, timeout),
		apiKey: apiKey,
		model:  model,
	}
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Role  string         `json:"role,omitempty"`
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig struct {
		MaxOutputTokens int     `json:"maxOutputTokens"`
		Temperature     float64 `json:"temperature"`
	} `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
}

func (s *AssistantService) Suggest(ctx context.Context, productName string) string {
	if s.apiKey == "" {
		return FallbackSuggestion
	}

	prompt := "Give me a short, catchy marketing suggestion or interesting fact for this product: " + productName

	req := generateRequest{
		Contents: []generateContent{{
			Role:  "user",
			Parts: []generatePart{{Text: prompt}},
		}},
	}
	req.GenerationConfig.MaxOutputTokens = 50
	req.GenerationConfig.Temperature = 0.7

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", s.model)
	headers := map[string]string{"x-goog-api-key": s.apiKey}

	var resp generateResponse
	if err := s.api.doJSONHeaders(ctx, "POST", path, headers, req, &resp); err != nil {
		log.Println("Assistant API error:", err)
		return FallbackSuggestion
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return FallbackSuggestion
	}
	return resp.Candidates[0].Content.Parts[0].Text
}
