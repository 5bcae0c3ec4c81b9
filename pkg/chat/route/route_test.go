package route

import (
	"testing"

	"portfolio-chat-be/pkg/chat/types"
	"portfolio-chat-be/pkg/profile"

	"github.com/stretchr/testify/assert"
)

func TestResolveTypeIsTotal(t *testing.T) {
	categories := []types.Category{
		types.CategoryProjects, types.CategorySkills, types.CategoryEducation,
		types.CategoryExperience, types.CategoryAchievements, types.CategoryContact,
		types.CategoryPersonal, types.CategoryOther,
	}
	intents := []types.Intent{
		types.IntentListAll, types.IntentSpecificItem, types.IntentGeneralQuestion,
		types.IntentGreeting, types.IntentContactRequest,
	}

	for _, cat := range categories {
		for _, in := range intents {
			for _, ui := range []bool{true, false} {
				got := ResolveType(types.ClassificationResult{Category: cat, Intent: in, RequiresSpecialUI: ui})
				assert.NotEmpty(t, got, "category=%s intent=%s ui=%v", cat, in, ui)
			}
		}
	}
}

func TestResolveType(t *testing.T) {
	tests := []struct {
		name           string
		classification types.ClassificationResult
		want           types.ResponseType
	}{
		{
			"no special ui is always text",
			types.ClassificationResult{Category: types.CategoryProjects, Intent: types.IntentListAll, RequiresSpecialUI: false},
			types.TypeText,
		},
		{
			"projects list_all",
			types.ClassificationResult{Category: types.CategoryProjects, Intent: types.IntentListAll, RequiresSpecialUI: true},
			types.TypeProjectsList,
		},
		{
			"projects specific_item",
			types.ClassificationResult{Category: types.CategoryProjects, Intent: types.IntentSpecificItem, RequiresSpecialUI: true},
			types.TypeProjectsList,
		},
		{
			"projects greeting stays text",
			types.ClassificationResult{Category: types.CategoryProjects, Intent: types.IntentGreeting, RequiresSpecialUI: true},
			types.TypeText,
		},
		{
			"skills list_all",
			types.ClassificationResult{Category: types.CategorySkills, Intent: types.IntentListAll, RequiresSpecialUI: true},
			types.TypeSkillsList,
		},
		{
			"skills specific_item stays text",
			types.ClassificationResult{Category: types.CategorySkills, Intent: types.IntentSpecificItem, RequiresSpecialUI: true},
			types.TypeText,
		},
		{
			"education list_all",
			types.ClassificationResult{Category: types.CategoryEducation, Intent: types.IntentListAll, RequiresSpecialUI: true},
			types.TypeEducationList,
		},
		{
			"experience list_all",
			types.ClassificationResult{Category: types.CategoryExperience, Intent: types.IntentListAll, RequiresSpecialUI: true},
			types.TypeExperienceList,
		},
		{
			"achievements list_all",
			types.ClassificationResult{Category: types.CategoryAchievements, Intent: types.IntentListAll, RequiresSpecialUI: true},
			types.TypeAchievementsList,
		},
		{
			"contact with any intent",
			types.ClassificationResult{Category: types.CategoryContact, Intent: types.IntentGeneralQuestion, RequiresSpecialUI: true},
			types.TypeContactInfo,
		},
		{
			"personal is text",
			types.ClassificationResult{Category: types.CategoryPersonal, Intent: types.IntentListAll, RequiresSpecialUI: true},
			types.TypeText,
		},
		{
			"other is text",
			types.ClassificationResult{Category: types.CategoryOther, Intent: types.IntentGreeting, RequiresSpecialUI: true},
			types.TypeText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveType(tt.classification))
		})
	}
}

func TestFetchDataByCategory(t *testing.T) {
	r := NewRouter(profile.NewRepository())

	tests := []struct {
		category types.Category
		want     types.ResponseType
	}{
		{types.CategoryProjects, types.TypeProjectsList},
		{types.CategorySkills, types.TypeSkillsList},
		{types.CategoryEducation, types.TypeEducationList},
		{types.CategoryExperience, types.TypeExperienceList},
		{types.CategoryAchievements, types.TypeAchievementsList},
		{types.CategoryContact, types.TypeContactInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			data := r.FetchData(types.ClassificationResult{Category: tt.category, Intent: types.IntentListAll}, "")
			if assert.NotNil(t, data) {
				assert.Equal(t, tt.want, data.ResponseType())
			}
		})
	}

	t.Run("personal tags as text", func(t *testing.T) {
		data := r.FetchData(types.ClassificationResult{Category: types.CategoryPersonal}, "")
		if assert.NotNil(t, data) {
			assert.Equal(t, types.TypeText, data.ResponseType())
		}
	})

	t.Run("other has no data", func(t *testing.T) {
		assert.Nil(t, r.FetchData(types.ClassificationResult{Category: types.CategoryOther}, "hey"))
	})
}

func TestFetchDataSpecificProject(t *testing.T) {
	r := NewRouter(profile.NewRepository())

	specific := types.ClassificationResult{
		Category: types.CategoryProjects,
		Intent:   types.IntentSpecificItem,
	}

	t.Run("single match returns one record", func(t *testing.T) {
		data := r.FetchData(specific, "blue horizon")
		_, ok := data.(types.ProjectPayload)
		assert.True(t, ok, "expected a single project, got %T", data)
	})

	t.Run("technology match returns all matching", func(t *testing.T) {
		data := r.FetchData(specific, "which projects use FastAPI?")
		list, ok := data.(types.ProjectsPayload)
		if assert.True(t, ok, "expected a project list, got %T", data) {
			assert.Greater(t, len(list), 1)
		}
	})

	t.Run("no match falls back to full catalog", func(t *testing.T) {
		data := r.FetchData(specific, "tell me about the quantum teleporter")
		list, ok := data.(types.ProjectsPayload)
		if assert.True(t, ok, "expected the full catalog, got %T", data) {
			assert.Len(t, list, len(profile.NewRepository().Projects()))
		}
	})
}
