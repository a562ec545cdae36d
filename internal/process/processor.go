package process

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"websim2api/internal/core"
	"websim2api/internal/util"
)

// RequestProcessor translates inbound OpenAI-shaped requests into Websim
// project-inference payloads and performs the upstream HTTP call.
type RequestProcessor struct {
	httpClient     *http.Client
	upstreamAPIKey string
	logger         core.Logger
}

// NewRequestProcessor creates a new request processor
func NewRequestProcessor(httpClient *http.Client, upstreamAPIKey string, logger core.Logger) *RequestProcessor {
	return &RequestProcessor{
		httpClient:     httpClient,
		upstreamAPIKey: upstreamAPIKey,
		logger:         logger,
	}
}

// AspectRatioForSize maps an OpenAI size string to the Websim aspect-ratio
// string. Unrecognized sizes fall back to square, never an error.
func AspectRatioForSize(size string) string {
	switch size {
	case core.SizeLandscape:
		return core.AspectRatioLandscape
	case core.SizePortrait:
		return core.AspectRatioPortrait
	case core.SizeSquare:
		return core.AspectRatioSquare
	default:
		return core.AspectRatioSquare
	}
}

// BuildChatPayload builds the Websim chat payload from an OpenAI request.
// Sampling parameters on the request are intentionally not forwarded.
func (p *RequestProcessor) BuildChatPayload(entry *core.ModelEntry, messages []core.ChatMessage) ([]byte, error) {
	if messages == nil {
		messages = []core.ChatMessage{}
	}

	payload := core.WebsimChatPayload{
		ProjectID: entry.ProjectID,
		Messages:  messages,
	}

	payloadBytes, err := util.MarshalJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	p.logger.Debug("Websim chat payload: model=%s project=%s messages=%d size=%d",
		entry.ID, entry.ProjectID, len(messages), len(payloadBytes))

	return payloadBytes, nil
}

// BuildImagePayload builds the Websim image payload from an OpenAI request.
func (p *RequestProcessor) BuildImagePayload(entry *core.ModelEntry, prompt, size string) ([]byte, error) {
	payload := core.WebsimImagePayload{
		ProjectID:   entry.ProjectID,
		Prompt:      prompt,
		AspectRatio: AspectRatioForSize(size),
	}

	payloadBytes, err := util.MarshalJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal image payload: %w", err)
	}

	p.logger.Debug("Websim image payload: model=%s project=%s size=%s ratio=%s prompt=%s",
		entry.ID, entry.ProjectID, size, payload.AspectRatio,
		util.TruncateString(prompt, 32, 8, "..."))

	return payloadBytes, nil
}

// SendUpstreamRequest posts the payload to the entry's upstream endpoint.
func (p *RequestProcessor) SendUpstreamRequest(ctx context.Context, endpoint string, payloadBytes []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set(core.HeaderContentType, core.ContentTypeJSON)
	req.Header.Set(core.HeaderAccept, core.ContentTypeJSON)
	if p.upstreamAPIKey != "" {
		req.Header.Set(core.HeaderAuthorization, core.AuthBearerPrefix+p.upstreamAPIKey)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}

	p.logger.Debug("Websim API response status: %d", resp.StatusCode)

	return resp, nil
}

// ParseChatReply decodes the chat success body and returns the trimmed
// completion text. A missing content field yields an empty string.
func ParseChatReply(body io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(body, core.MaxResponseBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read upstream body: %w", err)
	}

	var reply core.WebsimChatReply
	if err := util.UnmarshalJSON(data, &reply); err != nil {
		return "", fmt.Errorf("failed to parse upstream body: %w", err)
	}

	return strings.TrimSpace(reply.Content), nil
}

// ParseImageReply decodes the image success body and returns the image URL.
func ParseImageReply(body io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(body, core.MaxResponseBodySize))
	if err != nil {
		return "", fmt.Errorf("failed to read upstream body: %w", err)
	}

	var reply core.WebsimImageReply
	if err := util.UnmarshalJSON(data, &reply); err != nil {
		return "", fmt.Errorf("failed to parse upstream body: %w", err)
	}

	return reply.URL, nil
}
