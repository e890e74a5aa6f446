package cli

import (
	"strings"
	"unicode"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/spf13/pflag"
)

// flagName turns an answer key into its kebab-case flag name, keeping
// acronyms together: "createsFacialRecognitionDB" -> "creates-facial-recognition-db".
func flagName(key domain.AnswerKey) string {
	var b strings.Builder
	prevLower := false
	for _, r := range string(key) {
		if unicode.IsUpper(r) {
			if prevLower {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			prevLower = false
			continue
		}
		b.WriteRune(r)
		prevLower = true
	}
	return b.String()
}

// bindAnswerFlags registers one bool flag per questionnaire answer, writing
// straight into answers.
func bindAnswerFlags(fs *pflag.FlagSet, answers *domain.Answers) {
	for _, spec := range domain.AnswerSpecs {
		fs.BoolVar(answers.Ref(spec.Key), flagName(spec.Key), false, spec.Prompt)
	}
}

// answeredByFlag returns the answers set explicitly on the command line.
func answeredByFlag(fs *pflag.FlagSet) map[domain.AnswerKey]bool {
	set := make(map[domain.AnswerKey]bool)
	for _, spec := range domain.AnswerSpecs {
		if fs.Changed(flagName(spec.Key)) {
			set[spec.Key] = true
		}
	}
	return set
}
