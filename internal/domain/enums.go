package domain

import "strings"

// RiskCategory is one of the four EU AI Act risk tiers.
type RiskCategory string

const (
	RiskProhibited RiskCategory = "PROHIBITED"
	RiskHigh       RiskCategory = "High-Risk"
	RiskLimited    RiskCategory = "Limited Risk"
	RiskMinimal    RiskCategory = "Minimal Risk"
)

// RiskCategories lists every category from most to least severe.
var RiskCategories = []RiskCategory{RiskProhibited, RiskHigh, RiskLimited, RiskMinimal}

// Valid reports whether c is one of the four known categories.
func (c RiskCategory) Valid() bool {
	switch c {
	case RiskProhibited, RiskHigh, RiskLimited, RiskMinimal:
		return true
	}
	return false
}

// Label returns the human-readable title of the category.
func (c RiskCategory) Label() string {
	switch c {
	case RiskProhibited:
		return "Prohibited"
	case RiskHigh:
		return "High Risk"
	case RiskLimited:
		return "Limited Risk"
	case RiskMinimal:
		return "Minimal Risk"
	}
	return string(c)
}

// Explanation returns the fixed category explanation used in reports.
// Each element is one line.
func (c RiskCategory) Explanation() []string {
	switch c {
	case RiskProhibited:
		return []string{
			"This AI system falls under prohibited practices according to the EU AI Act.",
			"Consider consulting with a legal expert specializing in AI regulation.",
		}
	case RiskHigh:
		return []string{
			"High-risk AI systems require substantial compliance measures",
			"under the EU AI Act, including risk assessments, technical",
			"documentation, and human oversight.",
		}
	case RiskLimited:
		return []string{
			"Limited risk AI systems must meet specific transparency",
			"obligations, such as notifying users they are interacting",
			"with an AI system or that content is artificially generated.",
		}
	case RiskMinimal:
		return []string{
			"Minimal risk AI systems have few regulatory obligations",
			"under the EU AI Act, though voluntary codes of conduct",
			"are encouraged.",
		}
	}
	return nil
}

// ParseRiskCategory accepts the wire form of a category (case-insensitive)
// and a few short aliases such as "high" or "minimal".
func ParseRiskCategory(s string) (RiskCategory, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "prohibited":
		return RiskProhibited, true
	case "high-risk", "high risk", "high", "highrisk":
		return RiskHigh, true
	case "limited risk", "limited-risk", "limited", "limitedrisk":
		return RiskLimited, true
	case "minimal risk", "minimal-risk", "minimal", "minimalrisk":
		return RiskMinimal, true
	}
	return "", false
}

// Section groups questionnaire answers by the predicate they feed.
type Section string

const (
	SectionProhibited   Section = "prohibited"
	SectionHighRisk     Section = "high_risk"
	SectionTransparency Section = "transparency"
)

// Title returns the heading shown above a section of the questionnaire.
func (s Section) Title() string {
	switch s {
	case SectionProhibited:
		return "Prohibited AI Practices Assessment"
	case SectionHighRisk:
		return "High-Risk AI Practices Assessment"
	case SectionTransparency:
		return "Transparency Assessment"
	}
	return string(s)
}
