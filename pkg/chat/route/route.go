package route

import (
	"portfolio-chat-be/pkg/chat/types"
	"portfolio-chat-be/pkg/profile"
)

// Router maps a classification onto portfolio data and a rendering type.
type Router struct {
	profiles *profile.Repository
}

func NewRouter(profiles *profile.Repository) *Router {
	return &Router{profiles: profiles}
}

// FetchData returns the portfolio slice relevant to the classification, or
// nil for the "other" category. For specific project questions it narrows
// to the search matches: exactly one match comes back as a single record,
// several matches as a list, zero matches as the full catalog.
func (r *Router) FetchData(classification types.ClassificationResult, message string) types.Payload {
	switch classification.Category {
	case types.CategoryProjects:
		if classification.Intent == types.IntentSpecificItem && message != "" {
			matches := r.profiles.SearchProjects(message)
			if len(matches) == 1 {
				return types.ProjectPayload(matches[0])
			}
			if len(matches) > 1 {
				return types.ProjectsPayload(matches)
			}
		}
		return types.ProjectsPayload(r.profiles.Projects())
	case types.CategorySkills:
		return types.SkillsPayload(r.profiles.Skills())
	case types.CategoryEducation:
		return types.EducationPayload(r.profiles.Education())
	case types.CategoryExperience:
		return types.ExperiencePayload(r.profiles.Experience())
	case types.CategoryAchievements:
		return types.AchievementsPayload(r.profiles.Achievements())
	case types.CategoryContact:
		return types.ContactPayload(r.profiles.ContactInfo())
	case types.CategoryPersonal:
		return types.PersonalPayload(r.profiles.PersonalInfo())
	default:
		return nil
	}
}

// ResolveType decides how the frontend should render the reply. It is total:
// every classification resolves to a type, defaulting to plain text.
func ResolveType(classification types.ClassificationResult) types.ResponseType {
	if !classification.RequiresSpecialUI {
		return types.TypeText
	}

	switch classification.Category {
	case types.CategoryProjects:
		if classification.Intent == types.IntentSpecificItem || classification.Intent == types.IntentListAll {
			return types.TypeProjectsList
		}
		return types.TypeText
	case types.CategorySkills:
		if classification.Intent == types.IntentListAll {
			return types.TypeSkillsList
		}
	case types.CategoryEducation:
		if classification.Intent == types.IntentListAll {
			return types.TypeEducationList
		}
	case types.CategoryExperience:
		if classification.Intent == types.IntentListAll {
			return types.TypeExperienceList
		}
	case types.CategoryAchievements:
		if classification.Intent == types.IntentListAll {
			return types.TypeAchievementsList
		}
	case types.CategoryContact:
		return types.TypeContactInfo
	}

	return types.TypeText
}
