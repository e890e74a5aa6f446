package classifier

import (
	"strings"

	"github.com/alexanderramin/aiact/internal/domain"
)

// Purpose-text triggers. Matching is case-insensitive and unanchored, so a
// phrase may fire in more than one predicate ("emotion recognition" is both
// prohibited and a transparency trigger).
var (
	prohibitedKeywords = []string{
		"subliminal",
		"manipulative",
		"exploit vulnerabilities",
		"social scoring",
		"real-time biometric",
		"emotion recognition",
		"facial recognition database",
		"predictive policing",
	}

	highRiskDomainKeywords = []string{
		"biometric",
		"critical infrastructure",
		"education",
		"employment",
		"worker management",
		"credit scoring",
		"social benefits",
		"law enforcement",
		"migration",
		"asylum",
		"border control",
		"justice",
		"democratic process",
	}

	safetyComponentKeywords = []string{
		"safety component",
		"product safety",
	}

	transparencyKeywords = []string{
		"chatbot",
		"human interaction",
		"content generation",
		"deepfake",
		"emotion recognition",
		"biometric categorization",
	}
)

// TriggerSource tells whether a trigger came from an explicit answer or
// from the purpose text.
type TriggerSource string

const (
	SourceAnswer  TriggerSource = "answer"
	SourceKeyword TriggerSource = "keyword"
)

// Trigger is one condition that made a predicate true.
type Trigger struct {
	Source TriggerSource `json:"source"`
	Name   string        `json:"name"`
}

// predicate OR-combines a set of answers with a set of purpose keywords.
type predicate struct {
	answers  []domain.AnswerKey
	keywords []string
}

func newPredicate(section domain.Section, keywords ...[]string) predicate {
	p := predicate{}
	for _, spec := range domain.AnswerSpecs {
		if spec.Section == section {
			p.answers = append(p.answers, spec.Key)
		}
	}
	for _, set := range keywords {
		p.keywords = append(p.keywords, set...)
	}
	return p
}

var (
	prohibitedPredicate   = newPredicate(domain.SectionProhibited, prohibitedKeywords)
	highRiskPredicate     = newPredicate(domain.SectionHighRisk, highRiskDomainKeywords, safetyComponentKeywords)
	transparencyPredicate = newPredicate(domain.SectionTransparency, transparencyKeywords)
)

// matches stops at the first satisfied condition.
func (p predicate) matches(in domain.ClassificationInput) bool {
	for _, key := range p.answers {
		if in.Answers.Get(key) {
			return true
		}
	}
	purpose := strings.ToLower(in.SystemPurpose)
	for _, kw := range p.keywords {
		if strings.Contains(purpose, kw) {
			return true
		}
	}
	return false
}

// triggers returns every satisfied condition, answers first.
func (p predicate) triggers(in domain.ClassificationInput) []Trigger {
	var out []Trigger
	for _, key := range p.answers {
		if in.Answers.Get(key) {
			out = append(out, Trigger{Source: SourceAnswer, Name: string(key)})
		}
	}
	purpose := strings.ToLower(in.SystemPurpose)
	for _, kw := range p.keywords {
		if strings.Contains(purpose, kw) {
			out = append(out, Trigger{Source: SourceKeyword, Name: kw})
		}
	}
	return out
}

// IsProhibited reports whether the input describes a practice banned outright.
func IsProhibited(in domain.ClassificationInput) bool {
	return prohibitedPredicate.matches(in)
}

// IsHighRisk reports whether the input falls in a high-risk domain or is a
// safety component of a regulated product.
func IsHighRisk(in domain.ClassificationInput) bool {
	return highRiskPredicate.matches(in)
}

// NeedsTransparency reports whether the input carries transparency obligations.
func NeedsTransparency(in domain.ClassificationInput) bool {
	return transparencyPredicate.matches(in)
}
