package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/aiact/internal/domain"
	"github.com/go-playground/validator/v10"
)

// ClassifyRequest is the body of POST /api/classify. Answer fields are
// optional; an absent answer reads as false.
type ClassifyRequest struct {
	SystemName    string `json:"systemName" validate:"notblank,textlen"`
	SystemPurpose string `json:"systemPurpose" validate:"notblank,textlen"`
	domain.Answers
}

// Input freezes the request into a classification input.
func (r ClassifyRequest) Input() domain.ClassificationInput {
	return domain.ClassificationInput{
		SystemName:    strings.TrimSpace(r.SystemName),
		SystemPurpose: strings.TrimSpace(r.SystemPurpose),
		Answers:       r.Answers,
	}
}

// FieldErrors maps a JSON field name to a human-readable message.
type FieldErrors map[string]string

func (f FieldErrors) Error() string {
	parts := make([]string, 0, len(f))
	for k, v := range f {
		parts = append(parts, k+": "+v)
	}
	return strings.Join(parts, "; ")
}

type textRule struct {
	label    string
	min, max int
}

// requestValidator checks request bodies against per-field text rules.
type requestValidator struct {
	validate *validator.Validate
	rules    map[string]textRule
}

func newRequestValidator(minPurposeLen int) *requestValidator {
	rv := &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		rules: map[string]textRule{
			"systemName":    {label: "System name", min: 3, max: 100},
			"systemPurpose": {label: "System purpose", min: minPurposeLen, max: 1000},
		},
	}

	rv.validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for reserved tag names.
	_ = rv.validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = rv.validate.RegisterValidation("textlen", func(fl validator.FieldLevel) bool {
		rule, ok := rv.rules[fl.FieldName()]
		if !ok {
			return true
		}
		n := utf8.RuneCountInString(strings.TrimSpace(fl.Field().String()))
		return n >= rule.min && n <= rule.max
	})
	return rv
}

// Check validates req and returns FieldErrors, or nil when req is valid.
// Only the first failing rule per field is reported.
func (rv *requestValidator) Check(req any) error {
	err := rv.validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = rv.message(fe)
	}
	return out
}

func (rv *requestValidator) message(fe validator.FieldError) string {
	rule, ok := rv.rules[fe.Field()]
	if !ok {
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	switch fe.Tag() {
	case "notblank":
		return rule.label + " is required"
	case "textlen":
		return fmt.Sprintf("%s must be between %d and %d characters", rule.label, rule.min, rule.max)
	}
	return rule.label + " is invalid"
}

// checkResult validates a previously produced result submitted for
// download and normalizes its category.
func checkResult(result *domain.ClassificationResult) error {
	errs := FieldErrors{}
	if strings.TrimSpace(result.SystemName) == "" {
		errs["systemName"] = "System name is required"
	}
	if category, ok := domain.ParseRiskCategory(string(result.RiskCategory)); ok {
		result.RiskCategory = category
		result.IsProhibited = category == domain.RiskProhibited
	} else {
		errs["riskCategory"] = "Risk category must be one of PROHIBITED, High-Risk, Limited Risk, Minimal Risk"
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
