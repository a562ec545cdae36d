package core

// ChatMessage represents a single message in an OpenAI chat completion request.
// Content stays `any` so multi-part content blocks pass through untouched.
type ChatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content,omitempty"`
}

// ChatCompletionRequest is the OpenAI-compatible chat completion request payload.
// Sampling parameters are accepted for client compatibility but never
// forwarded; the upstream API does not take them.
type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Stream      bool          `json:"stream"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
	TopP        *float64      `json:"top_p,omitempty"`
	Stop        any           `json:"stop,omitempty"`
	User        string        `json:"user,omitempty"`
}

// ChatCompletionChoice represents a single choice in a chat completion response.
type ChatCompletionChoice struct {
	Message      ChatMessage `json:"message"`
	Index        int         `json:"index"`
	FinishReason string      `json:"finish_reason"`
}

// ChatCompletionResponse is the OpenAI-compatible non-streaming chat completion response.
type ChatCompletionResponse struct {
	ID      string                 `json:"id"`
	Object  string                 `json:"object"`
	Created int64                  `json:"created"`
	Model   string                 `json:"model"`
	Choices []ChatCompletionChoice `json:"choices"`
	Usage   map[string]int         `json:"usage"`
}

// StreamChoice represents a single choice in an OpenAI streaming response chunk.
type StreamChoice struct {
	Delta        map[string]any `json:"delta"`
	Index        int            `json:"index"`
	FinishReason *string        `json:"finish_reason"`
}

// StreamResponse is the OpenAI-compatible streaming response chunk.
type StreamResponse struct {
	ID      string         `json:"id"`
	Object  string         `json:"object"`
	Created int64          `json:"created"`
	Model   string         `json:"model"`
	Choices []StreamChoice `json:"choices"`
}

// ImageGenerationRequest is the OpenAI-compatible image generation request payload.
// N and quality-style knobs are accepted but dropped; the upstream renders a
// single image per call.
type ImageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Size           string `json:"size,omitempty"`
	N              *int   `json:"n,omitempty"`
	Quality        string `json:"quality,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
	User           string `json:"user,omitempty"`
}

// ImageData represents a single generated image in the response.
type ImageData struct {
	URL string `json:"url"`
}

// ImageGenerationResponse is the OpenAI-compatible image generation response.
type ImageGenerationResponse struct {
	Created int64       `json:"created"`
	Data    []ImageData `json:"data"`
}
