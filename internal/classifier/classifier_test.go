package classifier

import (
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purposeInput(purpose string) domain.ClassificationInput {
	return domain.ClassificationInput{SystemName: "Test System", SystemPurpose: purpose}
}

func answerInput(purpose string, keys ...domain.AnswerKey) domain.ClassificationInput {
	in := purposeInput(purpose)
	for _, k := range keys {
		*in.Answers.Ref(k) = true
	}
	return in
}

func keysIn(section domain.Section) []domain.AnswerKey {
	var keys []domain.AnswerKey
	for _, spec := range domain.AnswerSpecs {
		if spec.Section == section {
			keys = append(keys, spec.Key)
		}
	}
	return keys
}

func TestClassify_Examples(t *testing.T) {
	tests := []struct {
		name       string
		purpose    string
		want       domain.RiskCategory
		wantRecs   int
		prohibited bool
	}{
		{"customer service chatbot", "AI-powered chatbot for customer service", domain.RiskLimited, 5, false},
		{"credit scoring", "credit scoring system for loan approval", domain.RiskHigh, 16, false},
		{"predictive policing", "predictive policing based on demographic profiling", domain.RiskProhibited, 3, true},
		{"backup utility", "internal data backup utility", domain.RiskMinimal, 5, false},
		{"social scoring text only", "a municipal social scoring engine", domain.RiskProhibited, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(purposeInput(tt.purpose))
			assert.Equal(t, tt.want, got.RiskCategory)
			assert.Equal(t, tt.prohibited, got.IsProhibited)
			assert.Len(t, got.Recommendations, tt.wantRecs)
			assert.Equal(t, "Test System", got.SystemName)
			assert.Equal(t, tt.purpose, got.SystemPurpose)
		})
	}
}

func TestClassify_EveryProhibitedAnswerWins(t *testing.T) {
	highAndTransparency := append(keysIn(domain.SectionHighRisk), keysIn(domain.SectionTransparency)...)

	for _, key := range keysIn(domain.SectionProhibited) {
		t.Run(string(key), func(t *testing.T) {
			in := answerInput("a chatbot used in employment and education", append(highAndTransparency, key)...)
			got := Classify(in)
			assert.Equal(t, domain.RiskProhibited, got.RiskCategory)
			assert.True(t, got.IsProhibited)
		})
	}
}

func TestClassify_EveryHighRiskAnswer(t *testing.T) {
	for _, key := range keysIn(domain.SectionHighRisk) {
		t.Run(string(key), func(t *testing.T) {
			got := Classify(answerInput("a chatbot", key, domain.AnswerInteractsWithHumans))
			assert.Equal(t, domain.RiskHigh, got.RiskCategory)
			assert.False(t, got.IsProhibited)
		})
	}
}

func TestClassify_EveryTransparencyAnswer(t *testing.T) {
	for _, key := range keysIn(domain.SectionTransparency) {
		t.Run(string(key), func(t *testing.T) {
			got := Classify(answerInput("internal tool", key))
			assert.Equal(t, domain.RiskLimited, got.RiskCategory)
		})
	}
}

func TestClassify_KeywordSets(t *testing.T) {
	for _, kw := range prohibitedKeywords {
		assert.Equal(t, domain.RiskProhibited, Categorize(purposeInput("system using "+kw)), kw)
	}
	for _, kw := range append(highRiskDomainKeywords, safetyComponentKeywords...) {
		assert.Equal(t, domain.RiskHigh, Categorize(purposeInput("system for "+kw)), kw)
	}
	for _, kw := range transparencyKeywords {
		want := domain.RiskLimited
		switch {
		case IsProhibited(purposeInput(kw)):
			want = domain.RiskProhibited
		case IsHighRisk(purposeInput(kw)):
			want = domain.RiskHigh
		}
		assert.Equal(t, want, Categorize(purposeInput("tool doing "+kw)), kw)
	}
}

func TestClassify_OverlappingTriggers(t *testing.T) {
	// Prohibited and transparency both list this phrase; prohibited wins.
	got := Classify(purposeInput("emotion recognition for call centres"))
	assert.Equal(t, domain.RiskProhibited, got.RiskCategory)

	// "biometric categorization" contains the high-risk "biometric".
	got = Classify(purposeInput("biometric categorization of photos"))
	assert.Equal(t, domain.RiskHigh, got.RiskCategory)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	lower := Classify(purposeInput("a chatbot for support"))
	upper := Classify(purposeInput("A CHATBOT FOR SUPPORT"))
	mixed := Classify(purposeInput("a ChatBot for support"))

	assert.Equal(t, domain.RiskLimited, lower.RiskCategory)
	assert.Equal(t, lower.RiskCategory, upper.RiskCategory)
	assert.Equal(t, lower.RiskCategory, mixed.RiskCategory)
	assert.Equal(t, NeedsTransparency(purposeInput("CHATBOT")), NeedsTransparency(purposeInput("chatbot")))
}

func TestClassify_EmptyPurposeNoAnswers(t *testing.T) {
	got := Classify(domain.ClassificationInput{SystemName: "x"})
	assert.Equal(t, domain.RiskMinimal, got.RiskCategory)
	assert.NotEmpty(t, got.Recommendations)
}

func TestClassify_ProhibitedFlagInvariant(t *testing.T) {
	inputs := []domain.ClassificationInput{
		purposeInput("subliminal advertising"),
		purposeInput("border control triage"),
		purposeInput("deepfake generator"),
		purposeInput("spreadsheet helper"),
		answerInput("", domain.AnswerPredictivePolicing),
		answerInput("", domain.AnswerSafetyComponent),
	}
	for _, in := range inputs {
		got := Classify(in)
		assert.Equal(t, got.RiskCategory == domain.RiskProhibited, got.IsProhibited, in.SystemPurpose)
		assert.Equal(t, Recommendations(got.RiskCategory), got.Recommendations)
	}
}

func TestClassify_DoesNotMutateInput(t *testing.T) {
	in := answerInput("Chatbot For Education", domain.AnswerGeneratesContent)
	before := in
	_ = Classify(in)
	_ = Evaluate(in)
	assert.Equal(t, before, in)
}

func TestClassify_ConcurrentCalls(t *testing.T) {
	purposes := []string{
		"predictive policing",
		"credit scoring",
		"chatbot",
		"backup utility",
	}
	want := []domain.RiskCategory{domain.RiskProhibited, domain.RiskHigh, domain.RiskLimited, domain.RiskMinimal}

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx := i % len(purposes)
			got := Classify(purposeInput(purposes[idx]))
			assert.Equal(t, want[idx], got.RiskCategory)
		}(i)
	}
	wg.Wait()
}

func TestEvaluate_AgreesWithCategorize(t *testing.T) {
	inputs := []domain.ClassificationInput{
		purposeInput("predictive policing and chatbot"),
		purposeInput("migration case triage"),
		purposeInput("deepfake content generation"),
		purposeInput("compiler"),
		answerInput("compiler", domain.AnswerEducation),
		answerInput("chatbot", domain.AnswerExploitsVulnerabilities),
	}
	for _, in := range inputs {
		assert.Equal(t, Categorize(in), Evaluate(in).Category, in.SystemPurpose)
	}
}

func TestEvaluate_Triggers(t *testing.T) {
	in := answerInput("Chatbot doing content generation", domain.AnswerInteractsWithHumans)
	got := Evaluate(in)

	require.Equal(t, domain.RiskLimited, got.Category)
	assert.Equal(t, []Trigger{
		{Source: SourceAnswer, Name: "interactsWithHumans"},
		{Source: SourceKeyword, Name: "chatbot"},
		{Source: SourceKeyword, Name: "content generation"},
	}, got.Triggers)

	assert.Empty(t, Evaluate(purposeInput("calculator")).Triggers)
}

func TestEvaluate_ProhibitedShortCircuitsTrace(t *testing.T) {
	got := Evaluate(answerInput("law enforcement chatbot", domain.AnswerSocialScoring))
	require.Equal(t, domain.RiskProhibited, got.Category)
	for _, tr := range got.Triggers {
		assert.NotEqual(t, "law enforcement", tr.Name)
		assert.NotEqual(t, "chatbot", tr.Name)
	}
}

func TestKeywordsAreLowercase(t *testing.T) {
	for _, set := range [][]string{prohibitedKeywords, highRiskDomainKeywords, safetyComponentKeywords, transparencyKeywords} {
		for _, kw := range set {
			assert.Equal(t, strings.ToLower(kw), kw)
		}
	}
	assert.Len(t, highRiskDomainKeywords, 13)
}
