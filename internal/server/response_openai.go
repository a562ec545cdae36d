package server

import (
	"time"

	"websim2api/internal/core"
	"websim2api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// buildChatCompletionResponse wraps the upstream text in a single-choice
// OpenAI completion. Token usage is unknown so the counters stay zero.
func buildChatCompletionResponse(model, content string) core.ChatCompletionResponse {
	return core.ChatCompletionResponse{
		ID:      core.ResponseIDPrefix + uuid.New().String(),
		Object:  core.ChatCompletionObjectType,
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []core.ChatCompletionChoice{{
			Message: core.ChatMessage{
				Role:    core.RoleAssistant,
				Content: content,
			},
			Index:        0,
			FinishReason: core.FinishReasonStop,
		}},
		Usage: map[string]int{
			"prompt_tokens":     0,
			"completion_tokens": 0,
			"total_tokens":      0,
		},
	}
}

// writeStreamingCompletion replays an already-complete upstream reply as an
// OpenAI event stream: one chunk carrying the whole text, one stop chunk, then
// the [DONE] marker. All chunks share the same id, created and model values.
func writeStreamingCompletion(c *gin.Context, model, content string, logger core.Logger) {
	setStreamingHeaders(c)

	streamID := core.ResponseIDPrefix + uuid.New().String()
	created := time.Now().Unix()

	contentChunk := core.StreamResponse{
		ID:      streamID,
		Object:  core.ChatCompletionChunkObjectType,
		Created: created,
		Model:   model,
		Choices: []core.StreamChoice{{
			Delta: map[string]any{
				"role":    core.RoleAssistant,
				"content": content,
			},
			Index:        0,
			FinishReason: nil,
		}},
	}

	stopReason := core.FinishReasonStop
	stopChunk := core.StreamResponse{
		ID:      streamID,
		Object:  core.ChatCompletionChunkObjectType,
		Created: created,
		Model:   model,
		Choices: []core.StreamChoice{{
			Delta:        map[string]any{},
			Index:        0,
			FinishReason: &stopReason,
		}},
	}

	for _, chunk := range []core.StreamResponse{contentChunk, stopChunk} {
		respJSON, err := util.MarshalJSON(chunk)
		if err != nil {
			logger.Error("Failed to marshal stream chunk: %v", err)
			return
		}
		_, _ = writeSSEData(c.Writer, respJSON)
	}

	_, _ = writeSSEDone(c.Writer)
	c.Writer.Flush()
}
