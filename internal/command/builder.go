// Package command renders one veo3 generate command per clip and joins them
// into the aggregate text artifact.
package command

import (
	"fmt"
	"math"
	"strings"

	"veo_builder/internal/prompts"
	"veo_builder/internal/settings"
)

const (
	// TransitionEvery is the clip interval that gets a cross-dissolve.
	TransitionEvery = 5

	ClipSeconds = 8

	LargeProjectThreshold = 50

	Separator = "\n\n---\n\n"
)

type ShotKind int

const (
	ShotOpening ShotKind = iota
	ShotTransition
	ShotClosing
	ShotContinuation
)

func (k ShotKind) String() string {
	switch k {
	case ShotOpening:
		return "opening"
	case ShotTransition:
		return "transition"
	case ShotClosing:
		return "closing"
	default:
		return "continuation"
	}
}

func (k ShotKind) Instruction() string {
	switch k {
	case ShotOpening:
		return prompts.OpeningShot
	case ShotTransition:
		return prompts.TransitionShot
	case ShotClosing:
		return prompts.ClosingShot
	default:
		return prompts.ContinuationShot
	}
}

type shotRule struct {
	match func(clipNumber, total int) bool
	kind  ShotKind
}

// Evaluated top to bottom; the first match wins. A final clip that is also a
// multiple of TransitionEvery closes rather than transitions.
var shotRules = []shotRule{
	{func(n, _ int) bool { return n == 1 }, ShotOpening},
	{func(n, total int) bool { return n%TransitionEvery == 0 && n < total }, ShotTransition},
	{func(n, total int) bool { return n == total }, ShotClosing},
	{func(int, int) bool { return true }, ShotContinuation},
}

func Shot(index, total int) ShotKind {
	clipNumber := index + 1
	for _, r := range shotRules {
		if r.match(clipNumber, total) {
			return r.kind
		}
	}
	return ShotContinuation
}

func Progress(index, total int) string {
	return fmt.Sprintf("Clip %d of %d", index+1, total)
}

// SanitizeDialogue swaps double quotes for single quotes so the line can sit
// inside the triple-quoted prompt. Nothing else is escaped.
func SanitizeDialogue(segment string) string {
	return strings.ReplaceAll(segment, `"`, "'")
}

// Build renders the command for the clip at the 0-based index.
func Build(segment string, index, total int, s settings.Settings) string {
	return prompts.VeoCommand(prompts.CommandFields{
		Progress:      Progress(index, total),
		CharacterName: s.CharacterName,
		CharacterLock: s.CharacterLock,
		Dialogue:      SanitizeDialogue(segment),
		Shot:          Shot(index, total).Instruction(),
		Style:         s.Style,
		VoiceNote:     s.VoiceNote,
		MusicMood:     s.MusicMood,
		SFXPack:       s.SFXPack,
		Aspect:        string(s.Aspect),
		Resolution:    string(s.Quality),
	})
}

func BuildAll(clips []string, s settings.Settings) string {
	if len(clips) == 0 {
		return ""
	}
	total := len(clips)
	commands := make([]string, total)
	for i, seg := range clips {
		commands[i] = Build(seg, i, total, s)
	}
	return strings.Join(commands, Separator)
}

type Summary struct {
	Clips        int  `json:"clips"`
	Seconds      int  `json:"seconds"`
	Minutes      int  `json:"minutes"`
	LargeProject bool `json:"large_project"`
}

func Summarize(clipCount int) Summary {
	seconds := clipCount * ClipSeconds
	return Summary{
		Clips:        clipCount,
		Seconds:      seconds,
		Minutes:      int(math.Round(float64(seconds) / 60)),
		LargeProject: clipCount > LargeProjectThreshold,
	}
}

func (s Summary) String() string {
	return fmt.Sprintf("Clips: %d × %ds | Duration: ~%d min", s.Clips, ClipSeconds, s.Minutes)
}
