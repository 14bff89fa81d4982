package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"veo_builder/internal/settings"
)

var presetsCmd = &cobra.Command{
	Use:   "presets [name]",
	Short: "Show the voice presets usable with --voice",
	Long: `Voice presets describe a style for veo3 native audio to emulate. The
names refer to Gemini TTS voices for reference only; no external TTS is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	if len(args) == 1 {
		note, ok := settings.VoicePreset(args[0])
		if !ok {
			return fmt.Errorf("%w: %q", settings.ErrUnknownPreset, args[0])
		}
		fmt.Fprintln(w, note)
		return nil
	}

	for _, name := range settings.PresetNames() {
		note, _ := settings.VoicePreset(name)
		fmt.Fprintf(w, "%s\n  %s\n\n", summaryStyle.Render(name), note)
	}
	return nil
}
