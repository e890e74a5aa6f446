package classifier

import (
	"testing"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRecommendations_Counts(t *testing.T) {
	tests := []struct {
		category domain.RiskCategory
		want     int
	}{
		{domain.RiskProhibited, 3},
		{domain.RiskHigh, 16},
		{domain.RiskLimited, 5},
		{domain.RiskMinimal, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Len(t, Recommendations(tt.category), tt.want)
		})
	}
}

func TestRecommendations_Stable(t *testing.T) {
	for _, c := range domain.RiskCategories {
		assert.Equal(t, Recommendations(c), Recommendations(c), c)
	}
}

func TestRecommendations_ReturnsCopy(t *testing.T) {
	recs := Recommendations(domain.RiskMinimal)
	recs[0] = "tampered"
	assert.Equal(t, "Follow voluntary codes of conduct", Recommendations(domain.RiskMinimal)[0])
}

func TestRecommendations_IndependentOfTrigger(t *testing.T) {
	viaText := Classify(purposeInput("used for border control"))
	viaAnswer := Classify(answerInput("generic tool", domain.AnswerSafetyComponent))
	assert.Equal(t, viaText.Recommendations, viaAnswer.Recommendations)
}

func TestRecommendations_Unknown(t *testing.T) {
	assert.Nil(t, Recommendations("Unacceptable"))
}
