package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"subscription-tracker/internal/config"
	"subscription-tracker/internal/dto"
	"subscription-tracker/internal/models"
)

var (
	ErrGenerationNotConfigured = errors.New("text generation is not configured")
	ErrGenerationUnavailable   = errors.New("text generation is temporarily unavailable")
	ErrGenerationFailed        = errors.New("text generation failed")
	ErrGenerationNoJSON        = errors.New("generated text contains no JSON")
)

// jsonBlock finds a fenced ```json block, else the outermost object, else
// the outermost array.
var jsonBlock = regexp.MustCompile("```json[\\s\\S]*?```|\\{[\\s\\S]*\\}|\\[[\\s\\S]*\\]")

type APIKeyTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *APIKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())

	req.Header.Set("x-goog-api-key", t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	return t.base.RoundTrip(req)
}

// GeminiClient calls the Gemini generateContent endpoint behind a circuit
// breaker.
type GeminiClient struct {
	config  *config.GeminiConfig
	client  *http.Client
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewGeminiClient(
	cfg *config.GeminiConfig,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TextGeneratorInterface {
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{
		Transport: &APIKeyTransport{apiKey: cfg.APIKey, base: http.DefaultTransport},
		Timeout:   timeout,
	}

	return &GeminiClient{
		config:  cfg,
		client:  client,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

func (c *GeminiClient) buildRequest(ctx context.Context, path string, body any) (*http.Request, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(c.config.BaseURL, "/")+path, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	return req, nil
}

func (c *GeminiClient) do(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("gemini request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"error", err,
		)
		return nil, nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, nil, fmt.Errorf("read response body: %w", err)
	}

	return resp, body, nil
}

func (c *GeminiClient) Generate(ctx context.Context, genReq models.GenerationRequest) (*models.GenerationResult, error) {
	if c.config.APIKey == "" {
		return nil, ErrGenerationNotConfigured
	}
	if err := c.breaker.Allow(); err != nil {
		c.metrics.IncrementCounter("generation", map[string]string{"purpose": "raw", "status": "circuit_open"})
		return nil, fmt.Errorf("%w: %w", ErrGenerationUnavailable, err)
	}

	start := time.Now()
	text, err := c.call(ctx, genReq)
	c.metrics.RecordProcessingTime("generation", time.Since(start))
	c.breaker.Record(err)
	if err != nil {
		return nil, err
	}

	result := &models.GenerationResult{Text: text}
	if genReq.WantJSON {
		raw, err := ExtractJSON(text)
		if err != nil {
			return nil, err
		}
		result.JSON = raw
	}
	return result, nil
}

func (c *GeminiClient) call(ctx context.Context, genReq models.GenerationRequest) (string, error) {
	body := dto.GeminiGenerateRequest{
		Contents: []dto.GeminiContent{{Role: "user", Parts: []dto.GeminiPart{{Text: genReq.Prompt}}}},
	}
	if genReq.System != "" {
		body.SystemInstruction = &dto.GeminiContent{Parts: []dto.GeminiPart{{Text: genReq.System}}}
	}
	if genReq.WantJSON {
		body.GenerationConfig = &dto.GeminiGenerationConfig{ResponseMimeType: "application/json"}
	}

	req, err := c.buildRequest(ctx, "/models/"+url.PathEscape(c.config.Model)+":generateContent", body)
	if err != nil {
		return "", err
	}

	resp, respBody, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp dto.GeminiErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error.Message != "" {
			c.logger.Error("gemini error response",
				"status", resp.StatusCode,
				"code", errResp.Error.Status,
				"message", errResp.Error.Message,
			)
			return "", fmt.Errorf("%w (%d): %s", ErrGenerationFailed, resp.StatusCode, errResp.Error.Message)
		}
		return "", fmt.Errorf("%w: unexpected response (%d)", ErrGenerationFailed, resp.StatusCode)
	}

	var success dto.GeminiGenerateResponse
	if err := json.Unmarshal(respBody, &success); err != nil {
		return "", fmt.Errorf("%w: decode response: %w", ErrGenerationFailed, err)
	}

	text := strings.TrimSpace(success.Text())
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGenerationFailed)
	}
	return text, nil
}

// ExtractJSON pulls the first JSON value out of generated text, which may
// wrap it in a fenced block or surrounding prose.
func ExtractJSON(text string) (json.RawMessage, error) {
	match := jsonBlock.FindString(text)
	if match == "" {
		return nil, ErrGenerationNoJSON
	}

	if strings.HasPrefix(match, "```json") {
		match = strings.TrimSuffix(strings.TrimPrefix(match, "```json"), "```")
	}
	match = strings.TrimSpace(match)

	if !json.Valid([]byte(match)) {
		return nil, ErrGenerationNoJSON
	}
	return json.RawMessage(match), nil
}
