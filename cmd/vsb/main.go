package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"veo_builder/internal/config"
	"veo_builder/internal/logging"
)

var (
	// Global flags
	verbose bool
	dataDir string

	cfg    *config.Config
	logger = logging.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "vsb",
	Short: "Veo script builder - split narration into 8s veo3 generate commands",
	Long: `vsb turns a narration script into one veo3 generate command per clip.

The script is split into fixed-size word groups. Each group becomes a clip
with the character lock, voice, music and sound-effect text attached, and a
shot direction chosen by the clip's position (opening, transition every 5th
clip, closing, continuation).

Environment:
  VSB_DATA_DIR        workspace for exports and history (default ~/VeoScriptBuilder)
  VSB_WORDS_PER_CLIP  words per clip (default 15)
  VSB_LOG_LEVEL       debug, info, warn, error
  VSB_PORT            port for "vsb serve" (default 8791)
  VSB_EXPORT_PREFIX   export file name prefix`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.New()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDir != "" {
			c.DataDir = dataDir
		}
		if verbose {
			c.LogLevel = "debug"
		}
		cfg = c

		l, err := logging.New(c.LogLevel)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "workspace directory (overrides VSB_DATA_DIR)")

	rootCmd.AddCommand(generateCmd, chunkCmd, presetsCmd, serveCmd, watchCmd, historyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// currentConfig falls back to environment defaults when PersistentPreRunE
// did not run, e.g. when a command function is invoked directly.
func currentConfig() (*config.Config, error) {
	if cfg != nil {
		return cfg, nil
	}
	c, err := config.New()
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		c.DataDir = dataDir
	}
	cfg = c
	return cfg, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
