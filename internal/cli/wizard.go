package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/aiact/internal/cli/formatter"
	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/alexanderramin/aiact/internal/report"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// aiactHuhTheme returns a huh theme matching the Gruvbox palette.
func aiactHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardKeyMap lets Esc abort the form as well as Ctrl+C.
func wizardKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	)
	return km
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

// questionnaireForm builds one form with a page for the system details and
// one page per section. Values are written straight into q.input.
func questionnaireForm(q *questionnaire) *huh.Form {
	var groups []*huh.Group

	var details []huh.Field
	if strings.TrimSpace(q.input.SystemName) == "" {
		details = append(details, huh.NewInput().
			Title("Enter the name of your AI system").
			Value(&q.input.SystemName).
			Validate(notBlank("System name")))
	}
	if strings.TrimSpace(q.input.SystemPurpose) == "" {
		details = append(details, huh.NewText().
			Title("Describe the main purpose of your AI system").
			Value(&q.input.SystemPurpose).
			Validate(notBlank("System purpose")))
	}
	if len(details) > 0 {
		groups = append(groups, huh.NewGroup(details...).Title("EU AI Act Risk Classification"))
	}

	for _, section := range domain.Sections {
		specs := q.pending(section)
		if len(specs) == 0 {
			continue
		}
		fields := make([]huh.Field, 0, len(specs))
		for _, spec := range specs {
			fields = append(fields, huh.NewConfirm().
				Title(spec.Prompt).
				Affirmative("Yes").
				Negative("No").
				Value(q.input.Answers.Ref(spec.Key)))
		}
		g := huh.NewGroup(fields...).Title(section.Title())
		if section == domain.SectionHighRisk {
			g = g.Description("Is your AI system used in any of these domains?")
		}
		groups = append(groups, g)
	}

	return huh.NewForm(groups...).
		WithTheme(aiactHuhTheme()).
		WithShowHelp(false).
		WithKeyMap(wizardKeyMap())
}

// collectWizard runs the questionnaire as a terminal form bound to in/out.
func collectWizard(ctx context.Context, in io.Reader, out io.Writer, q *questionnaire) (domain.ClassificationInput, error) {
	form := questionnaireForm(q).WithProgramOptions(tea.WithInput(in), tea.WithOutput(out))
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return domain.ClassificationInput{}, ErrAborted
		}
		return domain.ClassificationInput{}, fmt.Errorf("running questionnaire: %w", err)
	}
	q.input.SystemName = strings.TrimSpace(q.input.SystemName)
	q.input.SystemPurpose = strings.TrimSpace(q.input.SystemPurpose)
	return q.input, nil
}

// wizardSavePath asks whether to save the report and where. An empty
// return means the user declined.
func wizardSavePath(ctx context.Context, in io.Reader, out io.Writer) (string, error) {
	save := false
	name := report.DefaultFilename

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Would you like to save the results to a file?").
				Affirmative("Yes").
				Negative("No").
				Value(&save),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("File name").
				Value(&name).
				Validate(notBlank("File name")),
		).WithHideFunc(func() bool { return !save }),
	).WithTheme(aiactHuhTheme()).
		WithShowHelp(false).
		WithKeyMap(wizardKeyMap()).
		WithProgramOptions(tea.WithInput(in), tea.WithOutput(out))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", nil
		}
		return "", fmt.Errorf("running save prompt: %w", err)
	}
	if !save {
		return "", nil
	}
	return strings.TrimSpace(name), nil
}

// linesSavePath is the line-based twin of wizardSavePath.
func linesSavePath(in *promptReader, out io.Writer) (string, error) {
	if !promptYesNoWithDefaultIO(in, out, "\nWould you like to save the results to a file? (y/n): ", false) {
		return "", nil
	}
	return promptLineIO(in, out, fmt.Sprintf("Enter file name (default %s): ", report.DefaultFilename), report.DefaultFilename)
}
