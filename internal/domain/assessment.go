package domain

// AnswerKey names one yes/no question of the assessment. The string value is
// the JSON field name used by the HTTP API and the flag name used by the CLI.
type AnswerKey string

const (
	AnswerSubliminalTechniques      AnswerKey = "usesSubliminalTechniques"
	AnswerExploitsVulnerabilities   AnswerKey = "exploitsVulnerabilities"
	AnswerSocialScoring             AnswerKey = "conductsSocialScoring"
	AnswerRealTimeBiometric         AnswerKey = "usesRealTimeBiometric"
	AnswerEmotionRecognition        AnswerKey = "usesEmotionRecognition"
	AnswerFacialRecognitionDB       AnswerKey = "createsFacialRecognitionDB"
	AnswerPredictivePolicing        AnswerKey = "usesPredictivePolicing"
	AnswerBiometrics                AnswerKey = "usedInBiometrics"
	AnswerCriticalInfrastructure    AnswerKey = "usedInCriticalInfrastructure"
	AnswerEducation                 AnswerKey = "usedInEducation"
	AnswerEmployment                AnswerKey = "usedInEmployment"
	AnswerEssentialServices         AnswerKey = "usedInEssentialServices"
	AnswerLawEnforcement            AnswerKey = "usedInLawEnforcement"
	AnswerMigration                 AnswerKey = "usedInMigration"
	AnswerJustice                   AnswerKey = "usedInJustice"
	AnswerSafetyComponent           AnswerKey = "isSafetyComponent"
	AnswerInteractsWithHumans       AnswerKey = "interactsWithHumans"
	AnswerGeneratesContent          AnswerKey = "generatesContent"
	AnswerEmotionOrBiometricContent AnswerKey = "usesEmotionOrBiometric"
)

// AnswerSpec ties an answer key to the section whose predicate it feeds and
// the question put to the user.
type AnswerSpec struct {
	Key     AnswerKey `json:"key"`
	Section Section   `json:"section"`
	Prompt  string    `json:"prompt"`
}

// AnswerSpecs is the canonical, ordered list of assessment questions.
var AnswerSpecs = []AnswerSpec{
	{AnswerSubliminalTechniques, SectionProhibited,
		"Does your system deploy subliminal or manipulative techniques to distort the behavior of persons?"},
	{AnswerExploitsVulnerabilities, SectionProhibited,
		"Does your system exploit any vulnerabilities of specific groups based on demographics?"},
	{AnswerSocialScoring, SectionProhibited,
		"Does your system conduct social scoring for general purposes that could lead to detrimental or unfavourable treatment?"},
	{AnswerRealTimeBiometric, SectionProhibited,
		"Does your system use real-time remote biometric identification in publicly accessible spaces for law enforcement?"},
	{AnswerEmotionRecognition, SectionProhibited,
		"Does your system use emotion recognition in workplaces or educational institutions?"},
	{AnswerFacialRecognitionDB, SectionProhibited,
		"Does your system create or expand facial recognition databases through untargeted scraping?"},
	{AnswerPredictivePolicing, SectionProhibited,
		"Does your system use predictive policing based solely on profiling or assessment of traits?"},
	{AnswerBiometrics, SectionHighRisk,
		"Biometrics intended for identification, categorisation, or emotion recognition?"},
	{AnswerCriticalInfrastructure, SectionHighRisk,
		"Critical infrastructure where it poses safety risks?"},
	{AnswerEducation, SectionHighRisk,
		"Educational or vocational training with significant impact on access to education?"},
	{AnswerEmployment, SectionHighRisk,
		"Employment, worker management, or access to self-employment?"},
	{AnswerEssentialServices, SectionHighRisk,
		"Access to essential private or public services (e.g., credit scoring, social benefits)?"},
	{AnswerLawEnforcement, SectionHighRisk,
		"Law enforcement with significant impact on people's lives?"},
	{AnswerMigration, SectionHighRisk,
		"Migration, asylum, or border control management?"},
	{AnswerJustice, SectionHighRisk,
		"Administration of justice and democratic processes?"},
	{AnswerSafetyComponent, SectionHighRisk,
		"Is your AI system a safety component of a product, or a product itself, covered by Union harmonisation legislation?"},
	{AnswerInteractsWithHumans, SectionTransparency,
		"Does your system interact with humans (e.g. chatbots)?"},
	{AnswerGeneratesContent, SectionTransparency,
		"Does your system generate or manipulate content (e.g. deepfakes)?"},
	{AnswerEmotionOrBiometricContent, SectionTransparency,
		"Does your system use emotion recognition or biometric categorization?"},
}

// SpecsFor returns the questions of one section in canonical order.
func SpecsFor(s Section) []AnswerSpec {
	var out []AnswerSpec
	for _, spec := range AnswerSpecs {
		if spec.Section == s {
			out = append(out, spec)
		}
	}
	return out
}

// Sections lists the questionnaire sections in the order they are asked.
var Sections = []Section{SectionProhibited, SectionHighRisk, SectionTransparency}

// Answers holds the explicit yes/no answers. A false field means "no" or
// "not answered"; the two are not distinguished.
type Answers struct {
	UsesSubliminalTechniques   bool `json:"usesSubliminalTechniques,omitempty"`
	ExploitsVulnerabilities    bool `json:"exploitsVulnerabilities,omitempty"`
	ConductsSocialScoring      bool `json:"conductsSocialScoring,omitempty"`
	UsesRealTimeBiometric      bool `json:"usesRealTimeBiometric,omitempty"`
	UsesEmotionRecognition     bool `json:"usesEmotionRecognition,omitempty"`
	CreatesFacialRecognitionDB bool `json:"createsFacialRecognitionDB,omitempty"`
	UsesPredictivePolicing     bool `json:"usesPredictivePolicing,omitempty"`

	UsedInBiometrics             bool `json:"usedInBiometrics,omitempty"`
	UsedInCriticalInfrastructure bool `json:"usedInCriticalInfrastructure,omitempty"`
	UsedInEducation              bool `json:"usedInEducation,omitempty"`
	UsedInEmployment             bool `json:"usedInEmployment,omitempty"`
	UsedInEssentialServices      bool `json:"usedInEssentialServices,omitempty"`
	UsedInLawEnforcement         bool `json:"usedInLawEnforcement,omitempty"`
	UsedInMigration              bool `json:"usedInMigration,omitempty"`
	UsedInJustice                bool `json:"usedInJustice,omitempty"`
	IsSafetyComponent            bool `json:"isSafetyComponent,omitempty"`

	InteractsWithHumans    bool `json:"interactsWithHumans,omitempty"`
	GeneratesContent       bool `json:"generatesContent,omitempty"`
	UsesEmotionOrBiometric bool `json:"usesEmotionOrBiometric,omitempty"`
}

// Ref returns a pointer to the field backing key, or nil for an unknown key.
// Collectors use it to fill answers generically before the input is frozen.
func (a *Answers) Ref(key AnswerKey) *bool {
	switch key {
	case AnswerSubliminalTechniques:
		return &a.UsesSubliminalTechniques
	case AnswerExploitsVulnerabilities:
		return &a.ExploitsVulnerabilities
	case AnswerSocialScoring:
		return &a.ConductsSocialScoring
	case AnswerRealTimeBiometric:
		return &a.UsesRealTimeBiometric
	case AnswerEmotionRecognition:
		return &a.UsesEmotionRecognition
	case AnswerFacialRecognitionDB:
		return &a.CreatesFacialRecognitionDB
	case AnswerPredictivePolicing:
		return &a.UsesPredictivePolicing
	case AnswerBiometrics:
		return &a.UsedInBiometrics
	case AnswerCriticalInfrastructure:
		return &a.UsedInCriticalInfrastructure
	case AnswerEducation:
		return &a.UsedInEducation
	case AnswerEmployment:
		return &a.UsedInEmployment
	case AnswerEssentialServices:
		return &a.UsedInEssentialServices
	case AnswerLawEnforcement:
		return &a.UsedInLawEnforcement
	case AnswerMigration:
		return &a.UsedInMigration
	case AnswerJustice:
		return &a.UsedInJustice
	case AnswerSafetyComponent:
		return &a.IsSafetyComponent
	case AnswerInteractsWithHumans:
		return &a.InteractsWithHumans
	case AnswerGeneratesContent:
		return &a.GeneratesContent
	case AnswerEmotionOrBiometricContent:
		return &a.UsesEmotionOrBiometric
	}
	return nil
}

// Get returns the answer for key. Unknown keys read as false.
func (a Answers) Get(key AnswerKey) bool {
	if p := a.Ref(key); p != nil {
		return *p
	}
	return false
}

// ClassificationInput is one description of an AI system to classify.
type ClassificationInput struct {
	SystemName    string
	SystemPurpose string
	Answers       Answers
}

// ClassificationResult is the outcome of classifying one input.
type ClassificationResult struct {
	SystemName      string       `json:"systemName"`
	SystemPurpose   string       `json:"systemPurpose"`
	RiskCategory    RiskCategory `json:"riskCategory"`
	IsProhibited    bool         `json:"isProhibited"`
	Recommendations []string     `json:"recommendations"`
}
