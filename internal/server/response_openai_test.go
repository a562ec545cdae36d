package server

import (
	"strings"
	"testing"

	"websim2api/internal/core"
)

func TestBuildChatCompletionResponse(t *testing.T) {
	resp := buildChatCompletionResponse(core.ModelIDChat, "answer text")

	if !strings.HasPrefix(resp.ID, core.ResponseIDPrefix) {
		t.Errorf("ID 应以 '%s' 开头，实际 '%s'", core.ResponseIDPrefix, resp.ID)
	}
	if resp.Object != core.ChatCompletionObjectType {
		t.Errorf("object 期望 '%s'，实际 '%s'", core.ChatCompletionObjectType, resp.Object)
	}
	if resp.Created == 0 {
		t.Error("created 应为当前 Unix 时间戳")
	}
	if len(resp.Choices) != 1 {
		t.Fatalf("choices 应为 1 个，实际 %d", len(resp.Choices))
	}

	choice := resp.Choices[0]
	if choice.Message.Role != core.RoleAssistant {
		t.Errorf("role 期望 '%s'，实际 '%s'", core.RoleAssistant, choice.Message.Role)
	}
	if choice.Message.Content != "answer text" {
		t.Errorf("content 不一致: %v", choice.Message.Content)
	}
	if choice.FinishReason != core.FinishReasonStop {
		t.Errorf("finish_reason 期望 '%s'，实际 '%s'", core.FinishReasonStop, choice.FinishReason)
	}

	for _, field := range []string{"prompt_tokens", "completion_tokens", "total_tokens"} {
		v, ok := resp.Usage[field]
		if !ok {
			t.Errorf("usage 缺少字段 '%s'", field)
		}
		if v != 0 {
			t.Errorf("usage.%s 应为 0，实际 %d", field, v)
		}
	}
}

func TestBuildChatCompletionResponse_UniqueIDs(t *testing.T) {
	a := buildChatCompletionResponse(core.ModelIDChat, "x")
	b := buildChatCompletionResponse(core.ModelIDChat, "x")
	if a.ID == b.ID {
		t.Error("每次响应应生成唯一 ID")
	}
}
