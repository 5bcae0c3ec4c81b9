// Package profile holds the structured portfolio facts the chat pipeline
// answers from. The data is static for now; swap the Repository for a
// database-backed one without touching the pipeline.
package profile

import "strings"

// Project is a single portfolio project record.
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	GithubLink   string   `json:"github_link"`
	Image        string   `json:"image"`
}

// SkillGroup groups related skills under a category heading.
type SkillGroup struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

// Education is one academic credential.
type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// Experience is one employment record.
type Experience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// Achievement is one award or recognition.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Link        string `json:"link"`
}

// Contact holds the public contact channels.
type Contact struct {
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// PersonalInfo is the general bio block.
type PersonalInfo struct {
	Name              string   `json:"name"`
	Title             string   `json:"title"`
	Location          string   `json:"location"`
	Bio               string   `json:"bio"`
	YearsOfExperience int      `json:"years_of_experience"`
	Specialization    []string `json:"specialization"`
}

// Repository exposes read-only typed access to the portfolio data.
type Repository struct {
	projects     []Project
	skills       []SkillGroup
	education    []Education
	experience   []Experience
	achievements []Achievement
	contact      Contact
	personal     PersonalInfo
}

// NewRepository loads the static portfolio dataset.
func NewRepository() *Repository {
	return &Repository{
		projects:     defaultProjects,
		skills:       defaultSkills,
		education:    defaultEducation,
		experience:   defaultExperience,
		achievements: defaultAchievements,
		contact:      defaultContact,
		personal:     defaultPersonal,
	}
}

func (r *Repository) Projects() []Project         { return r.projects }
func (r *Repository) Skills() []SkillGroup        { return r.skills }
func (r *Repository) Education() []Education      { return r.education }
func (r *Repository) Experience() []Experience    { return r.experience }
func (r *Repository) Achievements() []Achievement { return r.achievements }
func (r *Repository) ContactInfo() Contact        { return r.contact }
func (r *Repository) PersonalInfo() PersonalInfo  { return r.personal }

// SearchProjects matches the free-text query against project names,
// descriptions, and technologies. A technology matches when its name
// appears inside the query, so "projects using fastapi" finds FastAPI projects.
func (r *Repository) SearchProjects(query string) []Project {
	queryLower := strings.ToLower(query)
	var matches []Project
	for _, p := range r.projects {
		if strings.Contains(queryLower, strings.ToLower(p.Name)) ||
			strings.Contains(strings.ToLower(p.Name), queryLower) ||
			strings.Contains(strings.ToLower(p.Description), queryLower) {
			matches = append(matches, p)
			continue
		}
		for _, tech := range p.Technologies {
			if strings.Contains(queryLower, strings.ToLower(tech)) {
				matches = append(matches, p)
				break
			}
		}
	}
	return matches
}
