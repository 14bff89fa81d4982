// Package settings holds the per-clip prompt configuration: character,
// voice, music and sound-effect text plus the output format flags.
package settings

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidAspect  = errors.New("invalid aspect ratio")
	ErrInvalidQuality = errors.New("invalid quality")
	ErrUnknownPreset  = errors.New("unknown voice preset")
)

type Aspect string

const (
	AspectWidescreen Aspect = "16:9"
	AspectVertical   Aspect = "9:16"
	AspectSquare     Aspect = "1:1"
)

var aspects = []Aspect{AspectWidescreen, AspectVertical, AspectSquare}

func ParseAspect(s string) (Aspect, error) {
	for _, a := range aspects {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want 16:9, 9:16 or 1:1)", ErrInvalidAspect, s)
}

type Quality string

const (
	Quality1080p Quality = "1080p"
	Quality720p  Quality = "720p"
)

func ParseQuality(s string) (Quality, error) {
	switch Quality(s) {
	case Quality1080p, Quality720p:
		return Quality(s), nil
	}
	return "", fmt.Errorf("%w: %q (want 1080p or 720p)", ErrInvalidQuality, s)
}

type Settings struct {
	Aspect        Aspect  `json:"aspect" yaml:"aspect"`
	Quality       Quality `json:"quality" yaml:"quality"`
	Style         string  `json:"style" yaml:"style"`
	CharacterName string  `json:"character_name" yaml:"character_name"`
	CharacterLock string  `json:"character_lock" yaml:"character_lock"`
	VoiceNote     string  `json:"voice_note" yaml:"voice_note"`
	MusicMood     string  `json:"music_mood" yaml:"music_mood"`
	SFXPack       string  `json:"sfx_pack" yaml:"sfx_pack"`
}

func Default() Settings {
	return Settings{
		Aspect:        AspectWidescreen,
		Quality:       Quality1080p,
		Style:         DefaultStyle,
		CharacterName: DefaultCharacterName,
		CharacterLock: DefaultCharacterLock,
		VoiceNote:     DefaultVoiceNote,
		MusicMood:     DefaultMusicMood,
		SFXPack:       DefaultSFXPack,
	}
}

// Validate checks the two closed fields. Free-text fields accept anything,
// including the empty string.
func (s Settings) Validate() error {
	if _, err := ParseAspect(string(s.Aspect)); err != nil {
		return err
	}
	if _, err := ParseQuality(string(s.Quality)); err != nil {
		return err
	}
	return nil
}

func (s Settings) WithVoicePreset(name string) (Settings, error) {
	note, ok := VoicePreset(name)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	s.VoiceNote = note
	return s, nil
}

func VoicePreset(name string) (string, bool) {
	note, ok := voicePresets[name]
	return note, ok
}

func PresetNames() []string {
	names := make([]string, 0, len(voicePresets))
	for name := range voicePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile overlays a YAML file onto Default. Keys missing from the file keep
// their default value; an explicit empty string clears the field.
func LoadFile(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}
