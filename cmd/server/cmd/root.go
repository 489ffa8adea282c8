package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/karimnaderr/speech-to-text-backend/cmd/server/cmd/version"
	"github.com/karimnaderr/speech-to-text-backend/internal/api/server"
	"github.com/karimnaderr/speech-to-text-backend/internal/app"
	"github.com/karimnaderr/speech-to-text-backend/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "speech-to-text-backend",
	Short: "HTTP service that transcribes uploaded audio and stores the result",
	Long: `HTTP service that transcribes uploaded audio and stores the result.
Uploaded files are forwarded to the Whisper API, the returned text is run
through a lexicon-based sentiment classifier, and each attempt is persisted
as one transcript row.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(version.Cmd)
}

func runServer(ctx context.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Missing credentials or connection string are fatal here, never a
	// per-request error.
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration", "error", err.Error())
		return err
	}

	application, err := app.InitializeApp(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize application", "error", err.Error())
		return err
	}
	defer application.Store.Close()

	// Idempotent schema bootstrap, run once before serving traffic.
	if err := application.Store.Init(ctx); err != nil {
		logger.Error("Failed to initialize transcript store", "error", err.Error())
		return err
	}

	srv := server.NewServer(server.Config{
		Host:         cfg.Host,
		Port:         cfg.Port,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		Environment:  cfg.Environment,
	}, application.Services, logger)

	if err := srv.Start(); err != nil {
		return err
	}

	// Block until interrupted, then drain in-flight requests.
	notifyCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-notifyCtx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
