package core

// Websim API endpoint constants.
// The defaults are part of the deployment contract: existing installs rely on
// these exact values when the corresponding env vars are unset.
const (
	WebsimAPIBaseURL    = "https://api.websim.com/api/v1/inference"
	WebsimChatPath      = "/run_chat_completion"
	WebsimImagePath     = "/run_image_generation"
	DefaultChatProject  = "ai-chat-completion"
	DefaultImageProject = "ai-image-generation"
)

// Public model ID constants
const (
	ModelIDChat  = "websim-chat"
	ModelIDImage = "websim-image"
)

// Image size to aspect ratio constants
const (
	AspectRatioSquare    = "1:1"
	AspectRatioLandscape = "16:9"
	AspectRatioPortrait  = "9:16"
	SizeSquare           = "1024x1024"
	SizeLandscape        = "1792x1024"
	SizePortrait         = "1024x1792"
)
