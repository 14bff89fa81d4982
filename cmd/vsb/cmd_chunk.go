package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"veo_builder/internal/chunk"
	"veo_builder/internal/command"
)

var chunkCmd = &cobra.Command{
	Use:   "chunk [script file]",
	Short: "List the clips a script splits into, with their shot direction",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runChunk,
}

func init() {
	chunkCmd.Flags().IntVarP(&wordsPerClipFlag, "words", "w", 0, "words per clip (default VSB_WORDS_PER_CLIP or 15)")
}

func runChunk(cmd *cobra.Command, args []string) error {
	c, err := currentConfig()
	if err != nil {
		return err
	}
	size, err := resolveWordsPerClip(c)
	if err != nil {
		return err
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	parsed, err := readScript(cmd, path)
	if err != nil {
		return err
	}

	segments := chunk.Split(parsed.Text, size)
	w := cmd.OutOrStdout()
	for _, s := range segments {
		shot := command.Shot(s.Index, len(segments))
		fmt.Fprintf(w, "%s %s %s\n",
			mutedStyle.Render(command.Progress(s.Index, len(segments))),
			shotStyle.Render(fmt.Sprintf("[%s]", shot)),
			s.Text,
		)
	}
	printSummary(cmd.ErrOrStderr(), parsed.Title, command.Summarize(len(segments)))
	return nil
}
