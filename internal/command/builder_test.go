package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veo_builder/internal/chunk"
	"veo_builder/internal/prompts"
	"veo_builder/internal/settings"
)

func TestShotSelection(t *testing.T) {
	tests := []struct {
		name  string
		index int
		total int
		want  ShotKind
	}{
		{"first of many", 0, 10, ShotOpening},
		{"single clip", 0, 1, ShotOpening},
		{"fifth not final", 4, 10, ShotTransition},
		{"tenth is final", 9, 10, ShotClosing},
		{"fifth is final", 4, 5, ShotClosing},
		{"last of many", 6, 7, ShotClosing},
		{"middle", 2, 10, ShotContinuation},
		{"fifteenth of twenty", 14, 20, ShotTransition},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Shot(tt.index, tt.total))
		})
	}
}

func TestBuildUsesShotInstruction(t *testing.T) {
	s := settings.Default()

	assert.Contains(t, Build("seg", 0, 3, s), prompts.OpeningShot)
	assert.Contains(t, Build("seg", 2, 3, s), prompts.ClosingShot)
	assert.Contains(t, Build("seg", 1, 3, s), prompts.ContinuationShot)

	fifth := Build("seg", 4, 10, s)
	assert.Contains(t, fifth, prompts.TransitionShot)
	assert.NotContains(t, fifth, prompts.ClosingShot)

	tenth := Build("seg", 9, 10, s)
	assert.Contains(t, tenth, prompts.ClosingShot)
	assert.NotContains(t, tenth, prompts.TransitionShot)
}

func TestBuildSanitizesDialogue(t *testing.T) {
	out := Build(`He said "hello"`, 0, 1, settings.Default())
	assert.Contains(t, out, `says, "He said 'hello'"`)
	assert.Contains(t, out, `**Dialogue:** "He said 'hello'"`)
	assert.NotContains(t, out, `"hello"`)
}

func TestBuildRendersSettings(t *testing.T) {
	s := settings.Settings{
		Aspect:        settings.AspectSquare,
		Quality:       settings.Quality720p,
		Style:         "noir",
		CharacterName: "Ana",
		CharacterLock: "red scarf",
		VoiceNote:     "soft",
		MusicMood:     "jazz",
		SFXPack:       "rain",
	}
	out := Build("words here", 1, 3, s)

	for _, want := range []string{
		"**Clip Progress:** Clip 2 of 3",
		"**Character:** Ana. CONSISTENCY LOCK: red scarf",
		"**Global Visual Style:** noir",
		"**Voice Instructions:** soft",
		"**Background Music:** jazz",
		"**Sound Effects:** rain",
		"--aspect_ratio 1:1",
		"--resolution 720p",
		"--duration 8s",
	} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasPrefix(out, "veo3 generate --prompt"))
	assert.True(t, strings.HasSuffix(out, "--native_audio"))
}

func TestBuildEmptySettings(t *testing.T) {
	out := Build("x", 0, 1, settings.Settings{})
	assert.Contains(t, out, "**Sound Effects:** \n")
	assert.Contains(t, out, "--aspect_ratio \n")
}

func TestBuildAllSeparators(t *testing.T) {
	s := settings.Default()
	assert.Equal(t, "", BuildAll(nil, s))

	for _, n := range []int{1, 2, 7} {
		clips := make([]string, n)
		for i := range clips {
			clips[i] = "clip"
		}
		out := BuildAll(clips, s)
		assert.Equal(t, n-1, strings.Count(out, Separator), "clips=%d", n)
		assert.Equal(t, n, strings.Count(out, "veo3 generate --prompt"), "clips=%d", n)
	}
}

func TestBuildAllFromChunks(t *testing.T) {
	script := strings.Repeat("Hello friends, let us talk about energy. ", 20)
	clips := chunk.Clips(script, chunk.DefaultWordsPerClip)
	require.NotEmpty(t, clips)

	out := BuildAll(clips, settings.Default())
	blocks := strings.Split(out, Separator)
	require.Len(t, blocks, len(clips))
	assert.Contains(t, blocks[0], "Clip 1 of ")
	assert.Contains(t, blocks[len(blocks)-1], prompts.ClosingShot)
}

func TestSummarize(t *testing.T) {
	s := Summarize(15)
	assert.Equal(t, 120, s.Seconds)
	assert.Equal(t, 2, s.Minutes)
	assert.False(t, s.LargeProject)
	assert.Equal(t, "Clips: 15 × 8s | Duration: ~2 min", s.String())

	assert.Equal(t, 0, Summarize(3).Minutes)
	assert.Equal(t, 1, Summarize(4).Minutes)
	assert.True(t, Summarize(51).LargeProject)
	assert.False(t, Summarize(50).LargeProject)
}

func TestGenerate(t *testing.T) {
	out := Generate("  one two three\nfour five  ", 2, settings.Default())
	assert.Equal(t, []string{"one two", "three four", "five"}, out.Clips)
	assert.Equal(t, 5, out.Words)
	assert.Equal(t, 3, out.Summary.Clips)
	assert.Equal(t, 2, strings.Count(out.Commands, Separator))

	empty := Generate(" \n ", 2, settings.Default())
	assert.Empty(t, empty.Clips)
	assert.Equal(t, "", empty.Commands)
	assert.Equal(t, 0, empty.Summary.Clips)
}
