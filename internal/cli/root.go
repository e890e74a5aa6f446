package cli

import (
	"log/slog"

	"github.com/alexanderramin/aiact/internal/config"
	"github.com/alexanderramin/aiact/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands.
type App struct {
	Classifier service.ClassificationService
	Reports    service.ReportService
	Config     config.Config
	Logger     *slog.Logger

	// IsInteractive reports whether stdin is a terminal. Nil means never,
	// which keeps tests on the line-based prompts.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.Default()
	}
	return a.Logger
}

// NewRootCmd creates the top-level "aiact" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "aiact",
		Short: "EU AI Act risk classification tool",
		Long: "Classify an AI system under the EU AI Act's risk-based framework\n" +
			"and get governance recommendations for its risk category.",
		SilenceUsage: true,
	}

	root.AddCommand(
		newClassifyCmd(app),
		newExportCmd(app),
		newQuestionsCmd(app),
		newServeCmd(app),
	)

	return root
}
