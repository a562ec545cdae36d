package core

// Modality distinguishes what kind of inference a registered model performs.
type Modality string

// Modality constants
const (
	ModalityChat  Modality = "chat"
	ModalityImage Modality = "image"
)

// ModelEntry maps a public model ID to its upstream routing data.
// Entries are built once at startup and never mutated afterwards.
type ModelEntry struct {
	ID          string
	Modality    Modality
	ProjectID   string
	UpstreamURL string
}

// ModelInfo represents a single model entry in the models list response.
type ModelInfo struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// ModelList is the OpenAI-compatible model list response.
type ModelList struct {
	Object string      `json:"object"`
	Data   []ModelInfo `json:"data"`
}
