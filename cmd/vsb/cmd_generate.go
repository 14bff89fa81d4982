package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"veo_builder/internal/command"
	"veo_builder/internal/config"
	"veo_builder/internal/db"
	"veo_builder/internal/ingest"
	"veo_builder/internal/pipeline"
	"veo_builder/internal/settings"
	"veo_builder/internal/workspace"
)

var (
	wordsPerClipFlag int
	settingsPath     string
	voicePreset      string
	aspectFlag       string
	qualityFlag      string
	outPath          string
	exportFlag       bool
	copyFlag         bool
	workersFlag      int

	// Swapped in tests; the real clipboard needs a display.
	writeClipboard = clipboard.WriteAll
	now            = time.Now
)

var generateCmd = &cobra.Command{
	Use:   "generate [script files...]",
	Short: "Build veo3 commands for a narration script",
	Long: `Reads a script (.txt, .md, .docx or .pdf; stdin when no file or "-" is
given), splits it into clips and prints one veo3 generate command per clip,
separated by "---" lines.

With several files the scripts are processed in parallel and each result is
saved as its own export in the workspace.

Examples:
  vsb generate episode1.txt > episode1_commands.txt
  vsb generate --voice achird --aspect 9:16 --copy episode1.docx
  vsb generate --export ep1.txt ep2.txt ep3.pdf`,
	RunE: runGenerate,
}

func init() {
	addSettingsFlags(generateCmd)
	generateCmd.Flags().StringVarP(&outPath, "out", "o", "-", `write commands to this file ("-" for stdout)`)
	generateCmd.Flags().BoolVar(&exportFlag, "export", false, "save the commands into the workspace exports and record them in history")
	generateCmd.Flags().BoolVar(&copyFlag, "copy", false, "copy the commands to the clipboard")
	generateCmd.Flags().IntVar(&workersFlag, "workers", 0, "parallel scripts when several files are given (default: CPU count)")
}

func addSettingsFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&wordsPerClipFlag, "words", "w", 0, "words per clip (default VSB_WORDS_PER_CLIP or 15)")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "YAML file overriding the default character, voice, music and sfx text")
	cmd.Flags().StringVar(&voicePreset, "voice", "", "voice preset: achird, charon or sadaltager")
	cmd.Flags().StringVar(&aspectFlag, "aspect", "", "aspect ratio: 16:9, 9:16 or 1:1")
	cmd.Flags().StringVar(&qualityFlag, "quality", "", "resolution: 1080p or 720p")
}

// resolveSettings layers defaults, the YAML file, the voice preset and the
// aspect/quality flags, in that order.
func resolveSettings() (settings.Settings, error) {
	s := settings.Default()
	if settingsPath != "" {
		loaded, err := settings.LoadFile(settingsPath)
		if err != nil {
			return s, err
		}
		s = loaded
	}
	if voicePreset != "" {
		var err error
		if s, err = s.WithVoicePreset(voicePreset); err != nil {
			return s, err
		}
	}
	if aspectFlag != "" {
		a, err := settings.ParseAspect(aspectFlag)
		if err != nil {
			return s, err
		}
		s.Aspect = a
	}
	if qualityFlag != "" {
		q, err := settings.ParseQuality(qualityFlag)
		if err != nil {
			return s, err
		}
		s.Quality = q
	}
	return s, s.Validate()
}

func resolveWordsPerClip(c *config.Config) (int, error) {
	if wordsPerClipFlag < 0 {
		return 0, fmt.Errorf("--words must be at least 1")
	}
	if wordsPerClipFlag > 0 {
		return wordsPerClipFlag, nil
	}
	return c.WordsPerClip, nil
}

func readScript(cmd *cobra.Command, path string) (*ingest.Parsed, error) {
	if path == "" || path == "-" {
		return ingest.ParseReader("-", cmd.InOrStdin())
	}
	return ingest.ParseFile(path)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	c, err := currentConfig()
	if err != nil {
		return err
	}
	size, err := resolveWordsPerClip(c)
	if err != nil {
		return err
	}
	s, err := resolveSettings()
	if err != nil {
		return err
	}

	if len(args) > 1 {
		if copyFlag {
			return errors.New("--copy works with a single script")
		}
		if outPath != "" && outPath != "-" {
			return errors.New("--out works with a single script; several scripts are saved as exports")
		}
		return generateBatch(cmd, c, args, size, s)
	}

	path := "-"
	if len(args) == 1 {
		path = args[0]
	}
	parsed, err := readScript(cmd, path)
	if err != nil {
		return err
	}

	out := command.Generate(parsed.Text, size, s)
	logger.Debug("script generated",
		zap.String("title", parsed.Title),
		zap.Int("words", out.Words),
		zap.Int("clips", out.Summary.Clips),
		zap.Int("words_per_clip", size),
	)
	printSummary(cmd.ErrOrStderr(), parsed.Title, out.Summary)

	if err := writeOutput(cmd.OutOrStdout(), outPath, out.Commands); err != nil {
		return err
	}

	if exportFlag {
		if err := exportCommands(cmd.ErrOrStderr(), c, parsed.Title, c.ExportPrefix, size, out); err != nil {
			return err
		}
	}

	if copyFlag {
		if out.Commands == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), "Nothing to copy.")
		} else if err := writeClipboard(out.Commands); err != nil {
			logger.Warn("clipboard write failed", zap.Error(err))
			fmt.Fprintln(cmd.ErrOrStderr(), warnStyle.Render("Copy failed. Select and copy the output manually."))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "Commands copied. Review character consistency after the first 5 clips before generating all.")
		}
	}
	return nil
}

func writeOutput(stdout io.Writer, path, commands string) error {
	if path == "" || path == "-" {
		if commands == "" {
			return nil
		}
		_, err := fmt.Fprintln(stdout, commands)
		return err
	}
	if err := os.WriteFile(path, []byte(commands), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func exportCommands(w io.Writer, c *config.Config, title, prefix string, size int, out command.Output) error {
	root, err := workspace.EnsureAt(c.DataDir)
	if err != nil {
		return err
	}
	exp, err := workspace.SaveExport(root, prefix, out.Commands, now())
	if errors.Is(err, workspace.ErrEmptyExport) {
		fmt.Fprintln(w, mutedStyle.Render(title+": nothing to export"))
		return nil
	}
	if err != nil {
		return err
	}
	rec, err := db.RecordExport(c.HistoryDBPath(), db.ExportRecord{
		Title:        title,
		FilePath:     exp.Path,
		WordCount:    out.Words,
		ClipCount:    out.Summary.Clips,
		WordsPerClip: size,
		Bytes:        exp.Bytes,
	})
	if err != nil {
		return fmt.Errorf("record export: %w", err)
	}
	logger.Info("export saved", zap.String("id", rec.ID), zap.String("path", exp.Path))
	fmt.Fprintln(w, "Saved "+exp.Path)
	return nil
}

func generateBatch(cmd *cobra.Command, c *config.Config, paths []string, size int, s settings.Settings) error {
	stderr := cmd.ErrOrStderr()
	type batchOutput struct {
		title string
		out   command.Output
	}
	outputs := make([]batchOutput, len(paths))

	results := pipeline.Run(commandContext(cmd), paths, workersFlag, func(_ context.Context, job pipeline.Job) error {
		if job.Path == "-" {
			return fmt.Errorf("%s: stdin cannot be combined with other scripts", job.Path)
		}
		parsed, err := ingest.ParseFile(job.Path)
		if err != nil {
			return fmt.Errorf("%s: %w", job.Path, err)
		}
		outputs[job.Index] = batchOutput{title: parsed.Title, out: command.Generate(parsed.Text, size, s)}
		return nil
	})

	// Exports are written sequentially so the history database sees one writer.
	failed := len(pipeline.Errors(results))
	for i, r := range results {
		if r.Err != nil {
			logger.Error("script failed", zap.String("path", r.Job.Path), zap.Error(r.Err))
			fmt.Fprintln(stderr, warnStyle.Render(r.Err.Error()))
			continue
		}
		o := outputs[i]
		printSummary(stderr, o.title, o.out.Summary)
		if err := exportCommands(stderr, c, o.title, c.ExportPrefix+"_"+o.title, size, o.out); err != nil {
			failed++
			fmt.Fprintln(stderr, warnStyle.Render(err.Error()))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(paths))
	}
	return nil
}
