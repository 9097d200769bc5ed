package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Annapoorna04/HiperAI/internal/llm"
)

// Client invokes a locally hosted model through Ollama's /api/generate
// endpoint. Streaming is disabled; the whole completion comes back in one
// response body. The request context governs the call deadline, so the
// underlying http.Client carries no timeout of its own.
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

func NewClient(baseURL string, model string) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("Ollama base URL is required")
	}
	if model == "" {
		return nil, fmt.Errorf("Ollama model name is required")
	}

	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		model:      model,
	}, nil
}

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	payload := generateRequest{
		Model:  c.model,
		Prompt: request.Prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: request.Temperature,
			NumPredict:  request.MaxTokens,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize ollama request: %w", err)
	}

	url := c.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build ollama request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("ollama returned status %d: %s", resp.StatusCode, string(data))
	}

	var response generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode ollama response: %w", err)
	}

	return &llm.LLMResponse{
		Content: response.Response,
	}, nil
}
