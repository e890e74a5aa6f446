package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiact/internal/classifier"
	"github.com/alexanderramin/aiact/internal/domain"
)

// maxPurposeWidth caps the purpose line under the system name.
const maxPurposeWidth = 120

// FormatResult renders a classification result for terminal output.
func FormatResult(r domain.ClassificationResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", Bold(r.SystemName), RiskIndicator(r.RiskCategory)))
	if r.SystemPurpose != "" {
		b.WriteString(fmt.Sprintf("%s\n", Dim(Truncate(r.SystemPurpose, maxPurposeWidth))))
	}
	b.WriteString("\n")

	if r.IsProhibited {
		b.WriteString(RenderBox("", StyleRed.Bold(true).Render("WARNING: Your AI system may fall under PROHIBITED practices!")+
			"\nAccording to the EU AI Act, this type of AI system is not permitted."))
		b.WriteString("\n\n")
	}

	for _, line := range r.RiskCategory.Explanation() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(Header("Recommendations"))
	b.WriteString("\n")
	if len(r.Recommendations) == 0 {
		b.WriteString(Dim("  (none)"))
		b.WriteString("\n")
	}
	width := len(fmt.Sprint(len(r.Recommendations)))
	for i, rec := range r.Recommendations {
		num := fmt.Sprintf("%*d.", width, i+1)
		b.WriteString(fmt.Sprintf("  %s %s\n", RiskColor(r.RiskCategory).Render(num), rec))
	}

	return b.String()
}

// FormatTriggers renders the conditions that decided an assessment.
func FormatTriggers(a classifier.Assessment) string {
	var b strings.Builder
	b.WriteString(Header("Why"))
	b.WriteString("\n")

	if len(a.Triggers) == 0 {
		b.WriteString(Dim("  No prohibited, high-risk or transparency condition matched."))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, 0, len(a.Triggers))
	for _, t := range a.Triggers {
		source := StyleBlue.Render(string(t.Source))
		if t.Source == classifier.SourceKeyword {
			source = StylePurple.Render(string(t.Source))
		}
		rows = append(rows, []string{source, t.Name})
	}
	b.WriteString(RenderTable([]string{"SOURCE", "CONDITION"}, rows))
	return b.String()
}

// FormatQuestions renders the questionnaire grouped by section. flag maps
// an answer key to the command-line flag that answers it.
func FormatQuestions(specs []domain.AnswerSpec, flag func(domain.AnswerKey) string) string {
	var b strings.Builder
	var current domain.Section
	var rows [][]string

	flush := func() {
		if len(rows) == 0 {
			return
		}
		b.WriteString(Header(current.Title()))
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"KEY", "FLAG", "QUESTION"}, rows))
		b.WriteString("\n")
		rows = nil
	}

	for _, spec := range specs {
		if spec.Section != current {
			flush()
			current = spec.Section
		}
		rows = append(rows, []string{
			SectionBadge(spec.Section) + " " + string(spec.Key),
			StyleBlue.Render(flag(spec.Key)),
			spec.Prompt,
		})
	}
	flush()
	return strings.TrimRight(b.String(), "\n") + "\n"
}
