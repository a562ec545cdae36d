package registry

import (
	"fmt"
	"time"

	"websim2api/internal/core"
	"websim2api/internal/util"
)

// Registry is the static model table: public model ID to upstream routing
// data. Built once at startup, read-only afterwards, so handlers may share it
// without locking.
type Registry struct {
	entries []core.ModelEntry
	byID    map[string]int
}

// New creates a registry from the given entries.
func New(entries []core.ModelEntry) (*Registry, error) {
	byID := make(map[string]int, len(entries))
	for i, entry := range entries {
		if _, exists := byID[entry.ID]; exists {
			return nil, fmt.Errorf("duplicate model id: %s", entry.ID)
		}
		byID[entry.ID] = i
	}
	return &Registry{entries: entries, byID: byID}, nil
}

// FromEnv builds the registry from the fixed model table with env overrides.
// Absent env vars fall back to the documented literal defaults.
func FromEnv() *Registry {
	baseURL := util.GetEnvWithDefault("WEBSIM_API_BASE_URL", core.WebsimAPIBaseURL)

	entries := []core.ModelEntry{
		{
			ID:          core.ModelIDChat,
			Modality:    core.ModalityChat,
			ProjectID:   util.GetEnvWithDefault("WEBSIM_CHAT_PROJECT_ID", core.DefaultChatProject),
			UpstreamURL: baseURL + core.WebsimChatPath,
		},
		{
			ID:          core.ModelIDImage,
			Modality:    core.ModalityImage,
			ProjectID:   util.GetEnvWithDefault("WEBSIM_IMAGE_PROJECT_ID", core.DefaultImageProject),
			UpstreamURL: baseURL + core.WebsimImagePath,
		},
	}

	// The fixed table has unique IDs; New only fails on duplicates.
	r, err := New(entries)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup finds a model entry by public ID.
func (r *Registry) Lookup(id string) (*core.ModelEntry, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.entries[idx], true
}

// ByModality finds a model entry by public ID, requiring the given modality.
// A known ID with the wrong modality is reported as not found.
func (r *Registry) ByModality(id string, modality core.Modality) (*core.ModelEntry, bool) {
	entry, ok := r.Lookup(id)
	if !ok || entry.Modality != modality {
		return nil, false
	}
	return entry, true
}

// DefaultModel returns the first registered entry of the given modality.
func (r *Registry) DefaultModel(modality core.Modality) (*core.ModelEntry, bool) {
	for i := range r.entries {
		if r.entries[i].Modality == modality {
			return &r.entries[i], true
		}
	}
	return nil, false
}

// List returns all registered entries in table order.
func (r *Registry) List() []core.ModelEntry {
	out := make([]core.ModelEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ModelList builds the OpenAI-compatible models list response.
// Created is computed fresh per call, not stored on the entry.
func (r *Registry) ModelList() core.ModelList {
	now := time.Now().Unix()
	list := core.ModelList{Object: core.ModelListObjectType}
	for _, entry := range r.entries {
		list.Data = append(list.Data, core.ModelInfo{
			ID:      entry.ID,
			Object:  core.ModelObjectType,
			Created: now,
			OwnedBy: core.ModelOwner,
		})
	}
	return list
}
