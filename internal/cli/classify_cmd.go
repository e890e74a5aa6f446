package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/aiact/internal/classifier"
	"github.com/alexanderramin/aiact/internal/cli/formatter"
	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/spf13/cobra"
)

// classifyOutput is the --json shape: the result plus, with --explain, the
// conditions that decided it.
type classifyOutput struct {
	domain.ClassificationResult
	Triggers []classifier.Trigger `json:"triggers,omitempty"`
}

func newClassifyCmd(app *App) *cobra.Command {
	var (
		input   domain.ClassificationInput
		noInput bool
		output  string
		explain bool
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify an AI system under the EU AI Act",
		Long: "Runs the assessment questionnaire and prints the risk category with\n" +
			"recommendations. Every question can also be answered with a flag;\n" +
			"with --no-input nothing is prompted and unanswered questions count as no.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			in, out := cmd.InOrStdin(), cmd.OutOrStdout()

			q := &questionnaire{input: input, preset: answeredByFlag(cmd.Flags())}
			q.input.SystemName = strings.TrimSpace(q.input.SystemName)
			q.input.SystemPurpose = strings.TrimSpace(q.input.SystemPurpose)

			lines := newPromptReader(in)
			prompting := !noInput
			var collected domain.ClassificationInput
			var err error
			switch {
			case noInput:
				if q.input.SystemName == "" || q.input.SystemPurpose == "" {
					return errors.New("--name and --purpose are required with --no-input")
				}
				collected = q.input
			case app.interactive():
				collected, err = collectWizard(ctx, in, out, q)
			default:
				collected, err = collectLines(lines, out, q)
			}
			if err != nil {
				return err
			}

			result := app.Classifier.Classify(ctx, collected)

			view := classifyOutput{ClassificationResult: result}
			if explain {
				view.Triggers = app.Classifier.Explain(ctx, collected).Triggers
			}
			if err := writeClassifyOutput(out, view, explain, asJSON); err != nil {
				return err
			}

			path := output
			if path == "" && prompting && !asJSON {
				if app.interactive() {
					path, err = wizardSavePath(ctx, in, out)
				} else {
					path, err = linesSavePath(lines, out)
				}
				if err != nil {
					return err
				}
			}
			if path == "" {
				return nil
			}

			if err := app.Reports.Export(ctx, path, result); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error saving results: %v\n", err)
				return fmt.Errorf("saving results: %w", err)
			}
			if !asJSON {
				fmt.Fprintf(out, "Results saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input.SystemName, "name", "", "Name of the AI system")
	cmd.Flags().StringVar(&input.SystemPurpose, "purpose", "", "Main purpose of the AI system")
	cmd.Flags().BoolVar(&noInput, "no-input", false, "Never prompt; unanswered questions count as no")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the text report to this file")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show which conditions decided the category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	bindAnswerFlags(cmd.Flags(), &input.Answers)

	return cmd
}

func writeClassifyOutput(w io.Writer, view classifyOutput, explain, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, formatter.FormatResult(view.ClassificationResult))
	if explain {
		fmt.Fprintln(w)
		fmt.Fprint(w, formatter.FormatTriggers(classifier.Assessment{
			Category: view.RiskCategory,
			Triggers: view.Triggers,
		}))
	}
	return nil
}
