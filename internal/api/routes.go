package api

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"veo_builder/internal/chunk"
	"veo_builder/internal/command"
	"veo_builder/internal/ingest"
	"veo_builder/internal/settings"
)

const maxBodyBytes = ingest.MaxScriptBytes + 1<<20

func NewRouter(cfg ServerConfig) *chi.Mux {
	if cfg.WordsPerClip <= 0 {
		cfg.WordsPerClip = chunk.DefaultWordsPerClip
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(cfg.Logger))
	r.Use(LoggingMiddleware(cfg.Logger))

	r.Get("/health", healthHandler(cfg))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/presets", presetsHandler())
		r.Get("/settings/default", defaultSettingsHandler())
		r.Post("/chunks", chunksHandler(cfg))
		r.Post("/commands", commandsHandler(cfg))
	})

	return r
}

func healthHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Version: cfg.Version})
	}
}

func presetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names := settings.PresetNames()
		resp := PresetsResponse{Presets: make([]PresetResponse, 0, len(names))}
		for _, name := range names {
			note, _ := settings.VoicePreset(name)
			resp.Presets = append(resp.Presets, PresetResponse{Name: name, VoiceNote: note})
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

func defaultSettingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, settings.Default())
	}
}

func chunksHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChunksRequest
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}
		size, ok := wordsPerClip(w, req.WordsPerClip, cfg.WordsPerClip)
		if !ok {
			return
		}

		segments := chunk.Split(req.Script, size)
		resp := ChunksResponse{WordsPerClip: size, Segments: make([]SegmentResponse, len(segments))}
		for i, s := range segments {
			resp.Segments[i] = SegmentResponse{
				Index:      s.Index,
				StartToken: s.StartToken,
				EndToken:   s.EndToken,
				Shot:       command.Shot(s.Index, len(segments)).String(),
				Text:       s.Text,
			}
		}
		WriteJSON(w, http.StatusOK, resp)
	}
}

// commandsHandler accepts either a JSON CommandsRequest or a text/plain script
// body with words_per_clip and voice_preset as query parameters.
func commandsHandler(cfg ServerConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var req CommandsRequest
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "text/plain" {
			parsed, err := ingest.ParseReader("request", r.Body)
			if err != nil {
				WriteError(w, http.StatusBadRequest, err.Error(), "BAD_REQUEST")
				return
			}
			req.Script = parsed.Text
			req.VoicePreset = r.URL.Query().Get("voice_preset")
			if v := r.URL.Query().Get("words_per_clip"); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil {
					WriteError(w, http.StatusBadRequest, "words_per_clip must be an integer", "BAD_REQUEST")
					return
				}
				req.WordsPerClip = n
			}
		} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
			return
		}

		size, ok := wordsPerClip(w, req.WordsPerClip, cfg.WordsPerClip)
		if !ok {
			return
		}

		s, err := requestSettings(req)
		if err != nil {
			code := "BAD_REQUEST"
			switch {
			case errors.Is(err, settings.ErrInvalidAspect), errors.Is(err, settings.ErrInvalidQuality):
				code = "INVALID_SETTINGS"
			case errors.Is(err, settings.ErrUnknownPreset):
				code = "UNKNOWN_PRESET"
			}
			WriteError(w, http.StatusBadRequest, err.Error(), code)
			return
		}

		out := command.Generate(req.Script, size, s)
		clips := out.Clips
		if clips == nil {
			clips = []string{}
		}
		WriteJSON(w, http.StatusOK, CommandsResponse{
			Clips:    clips,
			Commands: out.Commands,
			Words:    out.Words,
			Summary:  out.Summary,
		})
	}
}

func requestSettings(req CommandsRequest) (settings.Settings, error) {
	s := settings.Default()
	if len(req.Settings) > 0 && string(req.Settings) != "null" {
		if err := json.Unmarshal(req.Settings, &s); err != nil {
			return s, errors.New("invalid settings object")
		}
	}
	if req.VoicePreset != "" {
		var err error
		if s, err = s.WithVoicePreset(req.VoicePreset); err != nil {
			return s, err
		}
	}
	return s, s.Validate()
}

func wordsPerClip(w http.ResponseWriter, requested, fallback int) (int, bool) {
	switch {
	case requested == 0:
		return fallback, true
	case requested < 0:
		WriteError(w, http.StatusBadRequest, "words_per_clip must be positive", "BAD_REQUEST")
		return 0, false
	default:
		return requested, true
	}
}
