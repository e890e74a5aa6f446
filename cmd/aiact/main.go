package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/aiact/internal/cli"
	"github.com/alexanderramin/aiact/internal/config"
	"github.com/alexanderramin/aiact/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger := config.NewLogger(os.Stderr, cfg)

	// Use-case events are only logged from the CLI at debug level; serve
	// wires its own observers.
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	app := &cli.App{
		Classifier: service.NewClassificationService(observer),
		Reports:    service.NewReportService(observer),
		Config:     cfg,
		Logger:     logger,
	}

	// Detect interactive terminal for the questionnaire form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	root := cli.NewRootCmd(app)
	root.SilenceErrors = true
	return root.ExecuteContext(context.Background())
}
