package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/aiact/internal/cli/formatter"
	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/spf13/cobra"
)

func newQuestionsCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "questions",
		Short: "List the assessment questions and their flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(domain.AnswerSpecs)
			}

			fmt.Fprint(out, formatter.FormatQuestions(domain.AnswerSpecs, func(k domain.AnswerKey) string {
				return "--" + flagName(k)
			}))
			fmt.Fprintln(out)
			fmt.Fprintln(out, formatter.Dim("Answer any question non-interactively with its flag, e.g. --"+flagName(domain.AnswerSocialScoring)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the questions as JSON")

	return cmd
}
