// Package aiclient wraps the external background image generation service.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// AIClient talks to the image-generation HTTP service. Construct with New;
// the zero value is not usable.
type AIClient struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the image-generation service at baseURL.
func New(baseURL string) *AIClient {
	return &AIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type generateResponse struct {
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}

// GenerateBackground asks the service for a background image matching prompt
// at the given canvas dimensions and returns the URL of the generated image.
func (c *AIClient) GenerateBackground(ctx context.Context, prompt string, width, height int) (string, error) {
	payload, err := json.Marshal(generateRequest{Prompt: prompt, Width: width, Height: height})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image service returned status %d", resp.StatusCode)
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}
	if result.Error != "" {
		return "", fmt.Errorf("image service error: %s", result.Error)
	}
	if result.URL == "" {
		return "", fmt.Errorf("image service returned no url")
	}
	return result.URL, nil
}

// Close releases the client's idle connections.
func (c *AIClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
