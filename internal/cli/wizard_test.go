package cli

import (
	"testing"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/alexanderramin/aiact/internal/teatest"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionnaireForm_RendersDetailsFirst(t *testing.T) {
	d := teatest.New(t, questionnaireForm(&questionnaire{}), teatest.WithSize(100, 40))

	view := stripANSI(d.View())
	assert.Contains(t, view, "Enter the name of your AI system")
	assert.NotContains(t, view, "Does your system deploy subliminal")
}

func TestQuestionnaireForm_StartsAtFirstPendingSection(t *testing.T) {
	q := &questionnaire{
		input:  domain.ClassificationInput{SystemName: "Bot", SystemPurpose: "a bot"},
		preset: map[domain.AnswerKey]bool{},
	}
	for _, spec := range domain.SpecsFor(domain.SectionProhibited) {
		q.preset[spec.Key] = true
	}

	d := teatest.New(t, questionnaireForm(q), teatest.WithSize(100, 40))

	view := stripANSI(d.View())
	assert.Contains(t, view, domain.SectionHighRisk.Title())
	assert.NotContains(t, view, "Enter the name of your AI system")
}

func TestQuestionnaireForm_EscAborts(t *testing.T) {
	d := teatest.New(t, questionnaireForm(&questionnaire{}), teatest.WithSize(100, 40))

	d.PressEsc()

	form, ok := d.Model.(*huh.Form)
	require.True(t, ok)
	assert.Equal(t, huh.StateAborted, form.State)
}
