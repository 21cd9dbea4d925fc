package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aqualog/hydration-api/internal/domain"
	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const drinkSystemPrompt = `You are a beverage recognition assistant for a hydration tracking app.

You receive a single photo of a drink. Identify the beverage and estimate how much liquid the container holds.

Rules:
- Estimate the visible container volume in millilitres using common container sizes (glass ~250 ml, mug ~300 ml, can 330 ml, small bottle 500 ml, large bottle 750-1000 ml).
- "hydration_factor" expresses how much of the volume counts toward hydration: water and herbal tea 1.0, milk 0.9, juice and soft drinks 0.85, coffee and black tea 0.8, beer 0.6, wine and spirits 0.3.
- "confidence" reflects how certain you are about both the beverage and the volume, from 0 to 1.
- If you cannot tell what the drink is, use beverage "water", hydration_factor 1.0 and a confidence below 0.3.

You must respond as strict JSON with exactly this shape:

{
  "beverage": "short lowercase name, e.g. 'green tea'",
  "estimated_volume_ml": 250,
  "hydration_factor": 1.0,
  "confidence": 0.8
}

No extra fields. No comments. No backticks.`

const drinkUserPrompt = `Identify the drink in this photo and estimate its volume. Respond in the required JSON format.`

const commentSystemPrompt = `You are a friendly, non-medical hydration assistant.

You receive one hydration recommendation as JSON: how much extra water is suggested, the factors behind it, and its urgency.

Write ONE short sentence (under 140 characters) a mobile app can show under the recommendation. Mention the most important factor in plain language. No medical claims, no exclamation marks, no emoji.

You must respond as strict JSON with exactly this shape:

{
  "comment": "your sentence"
}

No extra fields. No comments. No backticks.`

const commentUserPromptTemplate = `Here is the recommendation JSON:

%s

Respond in the required JSON format.`

// DrinkAnalyzer estimates beverage and volume from a photo.
type DrinkAnalyzer interface {
	AnalyzeDrink(ctx context.Context, imageBase64 string) (*domain.DrinkAnalysis, error)
}

// CommentWriter produces a one-sentence summary of a recommendation.
type CommentWriter interface {
	GenerateComment(ctx context.Context, kind domain.RecommendationKind, rec domain.HydrationRecommendation) (string, error)
}

// OpenAIClient implements DrinkAnalyzer and CommentWriter using the OpenAI API.
type OpenAIClient struct {
	client        openai.Client
	visionModel   string
	commentModel  string
	commentPrompt string
}

// NewOpenAIClient creates a new OpenAI client.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, visionModel, commentModel string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if visionModel == "" {
		visionModel = "gpt-4o-mini"
	}
	if commentModel == "" {
		commentModel = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:        client,
		visionModel:   visionModel,
		commentModel:  commentModel,
		commentPrompt: commentSystemPrompt,
	}
}

// SetCommentPrompt replaces the built-in comment system prompt, e.g. with one
// managed in Langfuse. Empty input keeps the current prompt.
func (c *OpenAIClient) SetCommentPrompt(prompt string) {
	if c == nil || strings.TrimSpace(prompt) == "" {
		return
	}
	c.commentPrompt = prompt
}

// AnalyzeDrink sends the photo to the vision model and parses its estimate.
func (c *OpenAIClient) AnalyzeDrink(ctx context.Context, imageBase64 string) (*domain.DrinkAnalysis, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	imageURL := "data:image/jpeg;base64," + imageBase64

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.visionModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(drinkSystemPrompt),
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(drinkUserPrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{URL: imageURL}),
			}),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var analysis domain.DrinkAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	if analysis.EstimatedVolumeMl <= 0 || analysis.EstimatedVolumeMl > 5000 {
		return nil, fmt.Errorf("%w: implausible volume %d ml", ErrOpenAIResponse, analysis.EstimatedVolumeMl)
	}
	if analysis.HydrationFactor <= 0 || analysis.HydrationFactor > 1 {
		return nil, fmt.Errorf("%w: hydration factor %v out of range", ErrOpenAIResponse, analysis.HydrationFactor)
	}
	if analysis.Beverage == "" {
		analysis.Beverage = "water"
	}

	return &analysis, nil
}

// GenerateComment calls OpenAI to phrase a recommendation as one sentence.
func (c *OpenAIClient) GenerateComment(ctx context.Context, kind domain.RecommendationKind, rec domain.HydrationRecommendation) (string, error) {
	if c == nil {
		return "", ErrOpenAIUnavailable
	}

	payload := map[string]interface{}{
		"kind":                kind,
		"additional_water_ml": rec.AdditionalWaterMl,
		"factors":             rec.Factors,
		"priority":            rec.Priority,
	}
	payloadJSON, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: failed to serialize recommendation: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(commentUserPromptTemplate, string(payloadJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.commentModel,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.commentPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	var output struct {
		Comment string `json:"comment"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &output); err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	comment := strings.TrimSpace(output.Comment)
	if comment == "" {
		return "", fmt.Errorf("%w: empty comment", ErrOpenAIResponse)
	}

	return comment, nil
}
