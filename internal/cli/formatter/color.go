package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// RiskColor returns the lipgloss style for a risk category.
func RiskColor(c domain.RiskCategory) lipgloss.Style {
	switch c {
	case domain.RiskProhibited:
		return StyleRed.Bold(true)
	case domain.RiskHigh:
		return StyleRed
	case domain.RiskLimited:
		return StyleYellow
	case domain.RiskMinimal:
		return StyleGreen
	default:
		return StyleDim
	}
}

// RiskIndicator returns a colored category indicator such as "● HIGH RISK".
func RiskIndicator(c domain.RiskCategory) string {
	switch c {
	case domain.RiskProhibited:
		return RiskColor(c).Render("✖ PROHIBITED")
	case domain.RiskHigh, domain.RiskLimited, domain.RiskMinimal:
		return RiskColor(c).Render("● " + strings.ToUpper(c.Label()))
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// SectionBadge returns a styled label for a questionnaire section.
func SectionBadge(s domain.Section) string {
	switch s {
	case domain.SectionProhibited:
		return StyleRed.Render("prohibited")
	case domain.SectionHighRisk:
		return StyleYellow.Render("high-risk")
	case domain.SectionTransparency:
		return StyleBlue.Render("transparency")
	}
	return StyleDim.Render(string(s))
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
