package process

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"websim2api/internal/core"
	"websim2api/internal/util"
)

func testEntry(modality core.Modality) *core.ModelEntry {
	if modality == core.ModalityImage {
		return &core.ModelEntry{
			ID:          core.ModelIDImage,
			Modality:    core.ModalityImage,
			ProjectID:   core.DefaultImageProject,
			UpstreamURL: core.WebsimAPIBaseURL + core.WebsimImagePath,
		}
	}
	return &core.ModelEntry{
		ID:          core.ModelIDChat,
		Modality:    core.ModalityChat,
		ProjectID:   core.DefaultChatProject,
		UpstreamURL: core.WebsimAPIBaseURL + core.WebsimChatPath,
	}
}

func newTestProcessor(apiKey string) *RequestProcessor {
	return NewRequestProcessor(http.DefaultClient, apiKey, &core.NopLogger{})
}

func TestAspectRatioForSize(t *testing.T) {
	tests := []struct {
		size     string
		expected string
	}{
		{core.SizeSquare, core.AspectRatioSquare},
		{core.SizeLandscape, core.AspectRatioLandscape},
		{core.SizePortrait, core.AspectRatioPortrait},
		{"", core.AspectRatioSquare},
		{"512x512", core.AspectRatioSquare},
	}

	for _, tt := range tests {
		if got := AspectRatioForSize(tt.size); got != tt.expected {
			t.Errorf("尺寸 '%s' 期望 '%s'，实际 '%s'", tt.size, tt.expected, got)
		}
	}
}

func TestBuildChatPayload(t *testing.T) {
	p := newTestProcessor("")
	messages := []core.ChatMessage{
		{Role: core.RoleSystem, Content: "You are helpful"},
		{Role: core.RoleUser, Content: "Hello"},
	}

	payloadBytes, err := p.BuildChatPayload(testEntry(core.ModalityChat), messages)
	if err != nil {
		t.Fatalf("构建聊天载荷失败: %v", err)
	}

	var decoded map[string]any
	if err := util.UnmarshalJSON(payloadBytes, &decoded); err != nil {
		t.Fatalf("载荷不是合法 JSON: %v", err)
	}
	if decoded["project_id"] != core.DefaultChatProject {
		t.Errorf("project_id 期望 '%s'，实际 '%v'", core.DefaultChatProject, decoded["project_id"])
	}
	msgs, ok := decoded["messages"].([]any)
	if !ok || len(msgs) != 2 {
		t.Fatalf("messages 应原样透传 2 条，实际 %v", decoded["messages"])
	}
	if _, exists := decoded["temperature"]; exists {
		t.Error("采样参数不应出现在上游载荷中")
	}
}

func TestBuildChatPayload_NilMessages(t *testing.T) {
	p := newTestProcessor("")

	payloadBytes, err := p.BuildChatPayload(testEntry(core.ModalityChat), nil)
	if err != nil {
		t.Fatalf("构建聊天载荷失败: %v", err)
	}
	if !strings.Contains(string(payloadBytes), `"messages":[]`) {
		t.Errorf("空 messages 应序列化为空数组，实际 %s", payloadBytes)
	}
}

func TestBuildImagePayload(t *testing.T) {
	p := newTestProcessor("")

	payloadBytes, err := p.BuildImagePayload(testEntry(core.ModalityImage), "a red panda", core.SizeLandscape)
	if err != nil {
		t.Fatalf("构建图片载荷失败: %v", err)
	}

	var decoded map[string]any
	if err := util.UnmarshalJSON(payloadBytes, &decoded); err != nil {
		t.Fatalf("载荷不是合法 JSON: %v", err)
	}
	if decoded["project_id"] != core.DefaultImageProject {
		t.Errorf("project_id 期望 '%s'，实际 '%v'", core.DefaultImageProject, decoded["project_id"])
	}
	if decoded["prompt"] != "a red panda" {
		t.Errorf("prompt 不一致: %v", decoded["prompt"])
	}
	if decoded["aspect_ratio"] != core.AspectRatioLandscape {
		t.Errorf("aspect_ratio 期望 '%s'，实际 '%v'", core.AspectRatioLandscape, decoded["aspect_ratio"])
	}
}

func TestSendUpstreamRequest_Headers(t *testing.T) {
	var gotAuth, gotContentType string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get(core.HeaderAuthorization)
		gotContentType = r.Header.Get(core.HeaderContentType)
		w.Header().Set(core.HeaderContentType, core.ContentTypeJSON)
		w.Write([]byte(`{"content":"ok"}`))
	}))
	defer upstream.Close()

	p := newTestProcessor("sk-upstream")
	resp, err := p.SendUpstreamRequest(context.Background(), upstream.URL, []byte(`{}`))
	if err != nil {
		t.Fatalf("上游请求失败: %v", err)
	}
	defer resp.Body.Close()

	if gotAuth != core.AuthBearerPrefix+"sk-upstream" {
		t.Errorf("Authorization 头不一致: '%s'", gotAuth)
	}
	if gotContentType != core.ContentTypeJSON {
		t.Errorf("Content-Type 期望 '%s'，实际 '%s'", core.ContentTypeJSON, gotContentType)
	}
}

func TestSendUpstreamRequest_NoKeyNoAuthHeader(t *testing.T) {
	var sawAuth bool
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header[core.HeaderAuthorization]
		w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	p := newTestProcessor("")
	resp, err := p.SendUpstreamRequest(context.Background(), upstream.URL, []byte(`{}`))
	if err != nil {
		t.Fatalf("上游请求失败: %v", err)
	}
	resp.Body.Close()

	if sawAuth {
		t.Error("未配置上游密钥时不应发送 Authorization 头")
	}
}

func TestParseChatReply(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
		wantErr  bool
	}{
		{"正常内容", `{"content":"Hello"}`, "Hello", false},
		{"首尾空白被去除", `{"content":"  Hello, world!\n"}`, "Hello, world!", false},
		{"缺少 content 字段", `{"other":"x"}`, "", false},
		{"空对象", `{}`, "", false},
		{"非法 JSON", `not json`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseChatReply(strings.NewReader(tt.body))
			if tt.wantErr {
				if err == nil {
					t.Fatal("期望解析错误，实际成功")
				}
				return
			}
			if err != nil {
				t.Fatalf("解析失败: %v", err)
			}
			if got != tt.expected {
				t.Errorf("期望 '%s'，实际 '%s'", tt.expected, got)
			}
		})
	}
}

func TestParseImageReply(t *testing.T) {
	got, err := ParseImageReply(strings.NewReader(`{"url":"https://img.websim.com/abc.png"}`))
	if err != nil {
		t.Fatalf("解析失败: %v", err)
	}
	if got != "https://img.websim.com/abc.png" {
		t.Errorf("URL 不一致: '%s'", got)
	}

	if _, err := ParseImageReply(strings.NewReader(`garbage`)); err == nil {
		t.Error("非法 JSON 应返回错误")
	}
}
