package classifier

import "github.com/alexanderramin/aiact/internal/domain"

var prohibitedRecommendations = []string{
	"This AI system falls under prohibited practices according to the EU AI Act.",
	"Consider consulting with a legal expert specializing in AI regulation.",
	"Review and modify the system to comply with EU AI Act requirements.",
}

// Chapter III, sections 2-5.
var highRiskRecommendations = []string{
	"Conduct a comprehensive risk assessment",
	"Establish a risk management system covering the entire lifecycle",
	"Ensure data quality and governance for training, validation and testing data",
	"Prepare technical documentation",
	"Maintain detailed logs of system operations",
	"Provide deployers with clear instructions for use",
	"Implement human oversight mechanisms",
	"Ensure accuracy, robustness and cybersecurity",
	"Establish a quality management system",
	"Prepare for conformity assessment",
	"Draw up an EU declaration of conformity and affix the CE marking",
	"Register the system in the EU database",
	"Set up a post-market monitoring system",
	"Report serious incidents to market surveillance authorities",
	"Carry out a fundamental rights impact assessment where required",
	"Keep documentation available to national authorities for 10 years",
}

// Article 50.
var limitedRiskRecommendations = []string{
	"Implement transparency measures",
	"Notify users when they interact with AI",
	"Label AI-generated or manipulated content, including deepfakes",
	"Inform people exposed to emotion recognition or biometric categorization",
	"Provide clear information about AI system limitations",
}

// Voluntary codes of conduct.
var minimalRiskRecommendations = []string{
	"Follow voluntary codes of conduct",
	"Monitor for potential risks",
	"Keep documentation of system operations",
	"Stay informed about regulatory updates",
	"Consider implementing basic transparency measures",
}

// Recommendations returns the fixed recommendation list for category. The
// returned slice is a fresh copy. Unknown categories yield nil.
func Recommendations(category domain.RiskCategory) []string {
	var src []string
	switch category {
	case domain.RiskProhibited:
		src = prohibitedRecommendations
	case domain.RiskHigh:
		src = highRiskRecommendations
	case domain.RiskLimited:
		src = limitedRiskRecommendations
	case domain.RiskMinimal:
		src = minimalRiskRecommendations
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
