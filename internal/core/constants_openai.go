package core

// API constants
const (
	ModelObjectType               = "model"
	ModelOwner                    = "user"
	ChatCompletionObjectType      = "chat.completion"
	ChatCompletionChunkObjectType = "chat.completion.chunk"
	ModelListObjectType           = "list"
	StreamChunkDoneMessage        = "[DONE]"
	StreamChunkPrefix             = "data: "
	ContentTypeEventStream        = "text/event-stream"
	ContentTypeJSON               = "application/json"
	CacheControlNoCache           = "no-cache"
	ConnectionKeepAlive           = "keep-alive"
	HeaderContentType             = "Content-Type"
	HeaderAuthorization           = "Authorization"
	HeaderAccept                  = "Accept"
	HeaderCacheControl            = "Cache-Control"
	HeaderConnection              = "Connection"
	AuthBearerPrefix              = "Bearer "
)

// ID prefix constants
const (
	ResponseIDPrefix = "chatcmpl-"
)

// OpenAI finish reason constants
const (
	FinishReasonStop = "stop"
)

// Role constants
const (
	RoleAssistant = "assistant"
	RoleUser      = "user"
	RoleSystem    = "system"
)
