// Package transcribe converts recorded answers to text through a
// Whisper-compatible transcription API (OpenAI shape: multipart upload,
// JSON {"text": ...} response).
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

var ErrTranscribe = errors.New("transcribe: request failed")

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

type WhisperClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
}

func NewWhisperClient(cfg Config) *WhisperClient {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "whisper-1"
	}
	return &WhisperClient{
		http:    &http.Client{Timeout: 120 * time.Second},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		model:   model,
	}
}

type transcriptionResp struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio and returns the recognized text.
func (c *WhisperClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscribe, err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscribe, err)
	}
	if err := form.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscribe, err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscribe, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscribe, err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscribe, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrTranscribe, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var out transcriptionResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrTranscribe, err)
	}
	return out.Text, nil
}
