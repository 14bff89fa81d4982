package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"veo_builder/internal/api"
	"veo_builder/internal/config"
	"veo_builder/internal/logging"
)

var (
	servePort int
	serveHost string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the command builder as a local JSON API",
	Long: `Starts an HTTP server for form front-ends:

  GET  /health
  GET  /v1/presets
  GET  /v1/settings/default
  POST /v1/chunks     {"script": "...", "words_per_clip": 15}
  POST /v1/commands   {"script": "...", "settings": {...}, "voice_preset": "achird"}`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default VSB_PORT or 8791)")
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "listen address")
	serveCmd.Flags().IntVarP(&wordsPerClipFlag, "words", "w", 0, "default words per clip")
}

func runServe(cmd *cobra.Command, args []string) error {
	c, err := currentConfig()
	if err != nil {
		return err
	}
	size, err := resolveWordsPerClip(c)
	if err != nil {
		return err
	}
	port := c.Port
	if servePort > 0 {
		port = servePort
	}

	server := api.NewServer(api.ServerConfig{
		Host:         serveHost,
		Port:         port,
		WordsPerClip: size,
		Version:      config.Version,
		Logger:       logging.WithComponent(logger, "api"),
	})

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
