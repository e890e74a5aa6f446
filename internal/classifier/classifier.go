// Package classifier maps a description of an AI system to an EU AI Act
// risk tier. Everything here is a pure function of its input.
package classifier

import "github.com/alexanderramin/aiact/internal/domain"

// Assessment is a classification decision together with the conditions of
// the deciding predicate that fired. MinimalRisk has no triggers.
type Assessment struct {
	Category domain.RiskCategory `json:"category"`
	Triggers []Trigger           `json:"triggers,omitempty"`
}

// Categorize applies the priority chain: prohibited, then high-risk, then
// transparency. A prohibited input never reaches the later checks.
func Categorize(in domain.ClassificationInput) domain.RiskCategory {
	switch {
	case IsProhibited(in):
		return domain.RiskProhibited
	case IsHighRisk(in):
		return domain.RiskHigh
	case NeedsTransparency(in):
		return domain.RiskLimited
	default:
		return domain.RiskMinimal
	}
}

// Classify returns the full result for in: category, prohibited flag and the
// recommendations for that category.
func Classify(in domain.ClassificationInput) domain.ClassificationResult {
	category := Categorize(in)
	return domain.ClassificationResult{
		SystemName:      in.SystemName,
		SystemPurpose:   in.SystemPurpose,
		RiskCategory:    category,
		IsProhibited:    category == domain.RiskProhibited,
		Recommendations: Recommendations(category),
	}
}

// Evaluate walks the same chain as Categorize and records why the deciding
// predicate fired.
func Evaluate(in domain.ClassificationInput) Assessment {
	chain := []struct {
		category domain.RiskCategory
		pred     predicate
	}{
		{domain.RiskProhibited, prohibitedPredicate},
		{domain.RiskHigh, highRiskPredicate},
		{domain.RiskLimited, transparencyPredicate},
	}
	for _, step := range chain {
		if triggers := step.pred.triggers(in); len(triggers) > 0 {
			return Assessment{Category: step.category, Triggers: triggers}
		}
	}
	return Assessment{Category: domain.RiskMinimal}
}
