package core

// WebsimChatPayload is the request payload sent to the Websim chat project.
// Messages are forwarded in OpenAI shape; the upstream accepts them directly.
type WebsimChatPayload struct {
	ProjectID string        `json:"project_id"`
	Messages  []ChatMessage `json:"messages"`
}

// WebsimImagePayload is the request payload sent to the Websim image project.
type WebsimImagePayload struct {
	ProjectID   string `json:"project_id"`
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspect_ratio"`
}

// WebsimChatReply is the success body returned by the chat project.
// Content may be absent; callers treat that as an empty completion.
type WebsimChatReply struct {
	Content string `json:"content"`
}

// WebsimImageReply is the success body returned by the image project.
type WebsimImageReply struct {
	URL string `json:"url"`
}
