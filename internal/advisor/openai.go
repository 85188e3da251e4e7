package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const openaiURL = "https://api.openai.com/v1/chat/completions"

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

// OpenAIGenerator calls the chat-completions API and parses the first
// choice as a Guidance JSON object.
type OpenAIGenerator struct {
	apiKey string
	client *http.Client
}

func NewOpenAIGenerator(apiKey string) *OpenAIGenerator {
	return &OpenAIGenerator{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (*Guidance, error) {
	reqBody := openAIRequest{
		Model:       "gpt-4o-mini",
		MaxTokens:   400,
		Temperature: 0.7,
		Messages: []openAIMessage{
			{Role: "system", Content: "You are a supportive personal finance advisor. Always answer with a single JSON object."},
			{Role: "user", Content: prompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openaiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion request returned status %d", resp.StatusCode)
	}

	var parsed openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("completion response had no choices")
	}

	return parseGuidance(parsed.Choices[0].Message.Content)
}

// parseGuidance decodes the model output, tolerating markdown code fences
// around the JSON object.
func parseGuidance(content string) (*Guidance, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var g Guidance
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &g); err != nil {
		return nil, fmt.Errorf("malformed guidance payload: %w", err)
	}
	if g.Message == "" {
		return nil, fmt.Errorf("guidance payload missing message")
	}
	return &g, nil
}
