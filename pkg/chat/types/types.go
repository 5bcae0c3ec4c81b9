package types

// Category is the subject area a message was classified into.
type Category string

const (
	CategoryProjects     Category = "projects"
	CategorySkills       Category = "skills"
	CategoryEducation    Category = "education"
	CategoryExperience   Category = "experience"
	CategoryAchievements Category = "achievements"
	CategoryContact      Category = "contact"
	CategoryPersonal     Category = "personal"
	CategoryOther        Category = "other"
)

// Intent is what the user wants done within a category.
type Intent string

const (
	IntentListAll         Intent = "list_all"
	IntentSpecificItem    Intent = "specific_item"
	IntentGeneralQuestion Intent = "general_question"
	IntentGreeting        Intent = "greeting"
	IntentContactRequest  Intent = "contact_request"
)

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c Category) bool {
	switch c {
	case CategoryProjects, CategorySkills, CategoryEducation, CategoryExperience,
		CategoryAchievements, CategoryContact, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}

// ValidIntent reports whether i is one of the known intents.
func ValidIntent(i Intent) bool {
	switch i {
	case IntentListAll, IntentSpecificItem, IntentGeneralQuestion, IntentGreeting, IntentContactRequest:
		return true
	}
	return false
}

// ClassificationResult is produced once per turn and never mutated afterwards.
type ClassificationResult struct {
	Category          Category `json:"category"`
	Intent            Intent   `json:"intent"`
	Confidence        float64  `json:"confidence"`
	RequiresSpecialUI bool     `json:"requires_special_ui"`
}

// FallbackClassification is used whenever the classifier call or its output
// cannot be trusted. The pipeline always proceeds with some classification.
func FallbackClassification() ClassificationResult {
	return ClassificationResult{
		Category:          CategoryOther,
		Intent:            IntentGeneralQuestion,
		Confidence:        0.5,
		RequiresSpecialUI: false,
	}
}
