package api

import (
	"encoding/json"
	"net/http"

	"veo_builder/internal/command"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type PresetResponse struct {
	Name      string `json:"name"`
	VoiceNote string `json:"voice_note"`
}

type PresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}

type ChunksRequest struct {
	Script       string `json:"script"`
	WordsPerClip int    `json:"words_per_clip,omitempty"`
}

type SegmentResponse struct {
	Index      int    `json:"index"`
	StartToken int    `json:"start_token"`
	EndToken   int    `json:"end_token"`
	Shot       string `json:"shot"`
	Text       string `json:"text"`
}

type ChunksResponse struct {
	WordsPerClip int               `json:"words_per_clip"`
	Segments     []SegmentResponse `json:"segments"`
}

// CommandsRequest.Settings is overlaid onto the default persona, so a
// partial object only changes the keys it names.
type CommandsRequest struct {
	Script       string          `json:"script"`
	WordsPerClip int             `json:"words_per_clip,omitempty"`
	Settings     json.RawMessage `json:"settings,omitempty"`
	VoicePreset  string          `json:"voice_preset,omitempty"`
}

type CommandsResponse struct {
	Clips    []string        `json:"clips"`
	Commands string          `json:"commands"`
	Words    int             `json:"words"`
	Summary  command.Summary `json:"summary"`
}

func WriteError(w http.ResponseWriter, status int, message, code string) {
	WriteJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
