package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/alexanderramin/aiact/internal/report"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var inPath, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a saved JSON result as a text report",
		Long: "Reads a classification result produced by `classify --json` or the\n" +
			"HTTP API and writes the plain-text report. Use --in - to read stdin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := readResult(cmd.InOrStdin(), inPath)
			if err != nil {
				return err
			}

			if output == "" {
				data, err := app.Reports.Render(cmd.Context(), result)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := app.Reports.Export(cmd.Context(), output, result); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error saving results: %v\n", err)
				return fmt.Errorf("saving results: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Results saved to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "JSON result file, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Report file (default: print to stdout)")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

func readResult(stdin io.Reader, path string) (domain.ClassificationResult, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return domain.ClassificationResult{}, fmt.Errorf("opening result: %w", err)
		}
		defer f.Close()
		r = f
	}

	var result domain.ClassificationResult
	if err := json.NewDecoder(r).Decode(&result); err != nil {
		return domain.ClassificationResult{}, fmt.Errorf("decoding result: %w", err)
	}
	if category, ok := domain.ParseRiskCategory(string(result.RiskCategory)); ok {
		result.RiskCategory = category
		result.IsProhibited = category == domain.RiskProhibited
	}
	if err := report.Validate(result); err != nil {
		return domain.ClassificationResult{}, err
	}
	return result, nil
}
