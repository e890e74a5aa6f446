package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/aiact/internal/domain"
)

// ErrAborted is returned when the user leaves the questionnaire early.
var ErrAborted = errors.New("assessment aborted")

const banner = `===============================================
  EU AI ACT RISK CLASSIFICATION TOOL
===============================================
This tool helps classify your AI system according to
the EU AI Act's risk-based framework and provides
relevant governance recommendations.

`

// questionnaire describes what still has to be asked. Fields already filled
// in input and keys in preset are skipped.
type questionnaire struct {
	input  domain.ClassificationInput
	preset map[domain.AnswerKey]bool
}

func (q *questionnaire) pending(s domain.Section) []domain.AnswerSpec {
	var out []domain.AnswerSpec
	for _, spec := range domain.SpecsFor(s) {
		if !q.preset[spec.Key] {
			out = append(out, spec)
		}
	}
	return out
}

// collectLines runs the questionnaire over plain line-based I/O. Any reply
// starting with "y" counts as yes.
func collectLines(in *promptReader, out io.Writer, q *questionnaire) (domain.ClassificationInput, error) {
	fmt.Fprint(out, banner)

	var err error
	if strings.TrimSpace(q.input.SystemName) == "" {
		q.input.SystemName, err = promptRequired(in, out, "Enter the name of your AI system:", "System name")
		if err != nil {
			return domain.ClassificationInput{}, err
		}
	}
	if strings.TrimSpace(q.input.SystemPurpose) == "" {
		q.input.SystemPurpose, err = promptRequired(in, out, "Describe the main purpose of your AI system:", "System purpose")
		if err != nil {
			return domain.ClassificationInput{}, err
		}
	}

	for _, section := range domain.Sections {
		specs := q.pending(section)
		if len(specs) == 0 {
			continue
		}
		fmt.Fprintf(out, "\n--- %s ---\n", strings.ToUpper(section.Title()))
		if section == domain.SectionHighRisk {
			fmt.Fprintln(out, "Is your AI system used in any of these domains?")
		}
		for _, spec := range specs {
			fmt.Fprintf(out, "%s (y/n): ", spec.Prompt)
			reply, err := in.readLine()
			if err != nil && reply == "" {
				return domain.ClassificationInput{}, fmt.Errorf("reading answer to %s: %w", spec.Key, unexpectedEOF(err))
			}
			*q.input.Answers.Ref(spec.Key) = strings.HasPrefix(strings.ToLower(strings.TrimSpace(reply)), "y")
		}
	}

	return q.input, nil
}

// promptRequired asks until a non-blank line is entered.
func promptRequired(in *promptReader, out io.Writer, question, field string) (string, error) {
	for {
		fmt.Fprintln(out, question)
		text, err := in.readLine()
		if text = strings.TrimSpace(text); text != "" {
			return text, nil
		}
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", strings.ToLower(field), unexpectedEOF(err))
		}
		fmt.Fprintf(out, "%s cannot be empty.\n", field)
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
