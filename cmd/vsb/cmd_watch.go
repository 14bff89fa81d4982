package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"veo_builder/internal/command"
	"veo_builder/internal/ingest"
	"veo_builder/internal/logging"
	"veo_builder/internal/settings"
	"veo_builder/internal/watch"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch <script file>",
	Short: "Rebuild the commands file every time the script is saved",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	addSettingsFlags(watchCmd)
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "commands file to keep up to date (required)")
	_ = watchCmd.MarkFlagRequired("out")
}

func runWatch(cmd *cobra.Command, args []string) error {
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
	if watchOut == "" {
		return errors.New("--out is required")
	}

	stderr := cmd.ErrOrStderr()
	regenerate := func(_ context.Context, path string) error {
		return regenerateFile(stderr, path, watchOut, size, s)
	}

	if err := regenerate(commandContext(cmd), args[0]); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := watch.New(args[0], watch.DefaultDebounce, regenerate, logging.WithComponent(logger, "watch"))
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		_ = w.Stop()
		return err
	}
	fmt.Fprintln(stderr, mutedStyle.Render("Watching "+args[0]+" (Ctrl+C to stop)"))

	<-ctx.Done()
	return w.Stop()
}

func regenerateFile(stderr io.Writer, scriptPath, outFile string, size int, s settings.Settings) error {
	parsed, err := ingest.ParseFile(scriptPath)
	if err != nil {
		return err
	}
	out := command.Generate(parsed.Text, size, s)
	if err := os.WriteFile(outFile, []byte(out.Commands), 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Debug("commands regenerated", zap.String("out", outFile), zap.Int("clips", out.Summary.Clips))
	printSummary(stderr, parsed.Title, out.Summary)
	return nil
}
