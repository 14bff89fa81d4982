package command

import (
	"veo_builder/internal/chunk"
	"veo_builder/internal/settings"
)

type Output struct {
	Clips    []string
	Commands string
	Summary  Summary
	Words    int
}

// Generate chunks the script and renders the aggregate artifact in one pass.
func Generate(script string, wordsPerClip int, s settings.Settings) Output {
	clips := chunk.Clips(script, wordsPerClip)
	return Output{
		Clips:    clips,
		Commands: BuildAll(clips, s),
		Summary:  Summarize(len(clips)),
		Words:    chunk.WordCount(script),
	}
}
