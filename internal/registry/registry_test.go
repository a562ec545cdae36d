package registry

import (
	"testing"

	"websim2api/internal/core"
)

func TestNew_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]core.ModelEntry{
		{ID: "m", Modality: core.ModalityChat},
		{ID: "m", Modality: core.ModalityImage},
	})
	if err == nil {
		t.Fatal("重复的模型 ID 应返回错误")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	r := FromEnv()

	entry, ok := r.Lookup(core.ModelIDChat)
	if !ok {
		t.Fatalf("默认注册表应包含 %s", core.ModelIDChat)
	}
	if entry.Modality != core.ModalityChat {
		t.Errorf("期望 chat 模态，实际 %s", entry.Modality)
	}
	if entry.ProjectID != core.DefaultChatProject {
		t.Errorf("期望默认 project id '%s'，实际 '%s'", core.DefaultChatProject, entry.ProjectID)
	}
	if entry.UpstreamURL != core.WebsimAPIBaseURL+core.WebsimChatPath {
		t.Errorf("chat upstream URL 不符: %s", entry.UpstreamURL)
	}

	entry, ok = r.Lookup(core.ModelIDImage)
	if !ok {
		t.Fatalf("默认注册表应包含 %s", core.ModelIDImage)
	}
	if entry.Modality != core.ModalityImage {
		t.Errorf("期望 image 模态，实际 %s", entry.Modality)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("WEBSIM_API_BASE_URL", "https://override.example")
	t.Setenv("WEBSIM_CHAT_PROJECT_ID", "custom-chat")

	r := FromEnv()
	entry, _ := r.Lookup(core.ModelIDChat)
	if entry.ProjectID != "custom-chat" {
		t.Errorf("WEBSIM_CHAT_PROJECT_ID 覆盖未生效: %s", entry.ProjectID)
	}
	if entry.UpstreamURL != "https://override.example"+core.WebsimChatPath {
		t.Errorf("WEBSIM_API_BASE_URL 覆盖未生效: %s", entry.UpstreamURL)
	}
}

func TestByModality_WrongModalityIsNotFound(t *testing.T) {
	r := FromEnv()
	if _, ok := r.ByModality(core.ModelIDImage, core.ModalityChat); ok {
		t.Error("image 模型按 chat 模态查找应返回 not found")
	}
	if _, ok := r.ByModality("unknown-model", core.ModalityChat); ok {
		t.Error("未知模型应返回 not found")
	}
	if _, ok := r.ByModality(core.ModelIDChat, core.ModalityChat); !ok {
		t.Error("chat 模型按 chat 模态查找应命中")
	}
}

func TestDefaultModel(t *testing.T) {
	r := FromEnv()
	entry, ok := r.DefaultModel(core.ModalityImage)
	if !ok {
		t.Fatal("应存在默认 image 模型")
	}
	if entry.ID != core.ModelIDImage {
		t.Errorf("默认 image 模型应为 %s，实际 %s", core.ModelIDImage, entry.ID)
	}
}

func TestModelList_EachModelListedOnce(t *testing.T) {
	r := FromEnv()
	list := r.ModelList()

	if list.Object != core.ModelListObjectType {
		t.Errorf("object 应为 '%s'，实际 '%s'", core.ModelListObjectType, list.Object)
	}
	seen := make(map[string]int)
	for _, m := range list.Data {
		seen[m.ID]++
		if m.Object != core.ModelObjectType {
			t.Errorf("模型 %s 的 object 应为 '%s'", m.ID, core.ModelObjectType)
		}
		if m.OwnedBy != core.ModelOwner {
			t.Errorf("模型 %s 的 owned_by 应为 '%s'", m.ID, core.ModelOwner)
		}
		if m.Created == 0 {
			t.Errorf("模型 %s 的 created 应为当前时间戳", m.ID)
		}
	}
	for id, count := range seen {
		if count != 1 {
			t.Errorf("模型 %s 应只出现一次，实际 %d 次", id, count)
		}
	}
	if seen[core.ModelIDChat] != 1 || seen[core.ModelIDImage] != 1 {
		t.Error("模型列表应包含全部注册模型")
	}
}
