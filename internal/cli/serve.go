package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/labelcheck/internal/model"
	"github.com/ppiankov/labelcheck/internal/server"
)

var (
	serveHost string
	servePort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the verification HTTP API",
	Long: `Serve exposes label verification over HTTP.

POST /api/v1/verify accepts a multipart form with the four claims
(brandName, productClassType, alcoholContent, netContents) and a
labelImage file, and responds with the full verdict JSON.

Example:
  labelcheck serve
  labelcheck serve --host 127.0.0.1 --port 9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
	serveCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extracted-text cache")
	serveCmd.Flags().BoolVar(&llmEnabled, "llm", false, "attach LLM explanations to verdicts")
	serveCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	serveCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	if llmEnabled {
		if err := configureLLM(cfg, llmProvider, llmModel); err != nil {
			return err
		}
	}

	verifier := buildVerifier(cfg)
	srv := server.New(verifier, cfg.Server)

	// Shut down gracefully on SIGINT/SIGTERM
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	fmt.Fprintf(os.Stderr, "Listening on %s:%d\n", cfg.Server.Host, cfg.Server.Port)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		fmt.Fprintf(os.Stderr, "Received %s, shutting down\n", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
