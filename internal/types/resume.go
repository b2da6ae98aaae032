package types

import (
	"github.com/go-playground/validator/v10"
)

const (
	// FeaturedSkillCount is the fixed number of featured skill slots on a resume
	FeaturedSkillCount = 6
	// DefaultSkillRating is the rating assigned to every featured skill slot
	DefaultSkillRating = 4
)

// Resume is the structured record produced from one document.
type Resume struct {
	Profile         Profile                  `json:"profile"`
	Educations      []Education              `json:"educations" validate:"dive"`
	WorkExperiences []WorkExperience         `json:"work_experiences" validate:"dive"`
	Projects        []Project                `json:"projects" validate:"dive"`
	Skills          Skills                   `json:"skills"`
	Custom          map[string]CustomSection `json:"custom"`
}

// Profile holds the contact header of a resume.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	URL      string `json:"url"`
	Summary  string `json:"summary"`
}

// Education is one school entry.
type Education struct {
	School       string   `json:"school"`
	Degree       string   `json:"degree"`
	Date         string   `json:"date"`
	GPA          string   `json:"gpa"`
	Descriptions []string `json:"descriptions"`
}

// WorkExperience is one job entry.
type WorkExperience struct {
	Company      string   `json:"company"`
	JobTitle     string   `json:"job_title"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// Project is one project entry.
type Project struct {
	Project      string   `json:"project"`
	Date         string   `json:"date"`
	Descriptions []string `json:"descriptions"`
}

// FeaturedSkill is a highlighted skill with a 1-5 rating.
type FeaturedSkill struct {
	Skill  string `json:"skill"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// Skills holds featured skills and free-form skill descriptions.
type Skills struct {
	FeaturedSkills []FeaturedSkill `json:"featured_skills" validate:"len=6,dive"`
	Descriptions   []string        `json:"descriptions"`
}

// CustomSection holds the descriptions of a section with no dedicated extractor.
type CustomSection struct {
	Descriptions []string `json:"descriptions"`
}

// NewFeaturedSkills returns the default six empty featured skill slots.
func NewFeaturedSkills() []FeaturedSkill {
	skills := make([]FeaturedSkill, FeaturedSkillCount)
	for i := range skills {
		skills[i] = FeaturedSkill{Rating: DefaultSkillRating}
	}
	return skills
}

// NewResume returns an empty but structurally valid Resume.
func NewResume() *Resume {
	return &Resume{
		Educations:      []Education{},
		WorkExperiences: []WorkExperience{},
		Projects:        []Project{},
		Skills: Skills{
			FeaturedSkills: NewFeaturedSkills(),
			Descriptions:   []string{},
		},
		Custom: map[string]CustomSection{},
	}
}

// IsEmpty reports whether no field of the resume carries any content.
func (r *Resume) IsEmpty() bool {
	if r.Profile != (Profile{}) {
		return false
	}
	if len(r.Educations) > 0 || len(r.WorkExperiences) > 0 || len(r.Projects) > 0 {
		return false
	}
	if len(r.Skills.Descriptions) > 0 || len(r.Custom) > 0 {
		return false
	}
	for _, skill := range r.Skills.FeaturedSkills {
		if skill.Skill != "" {
			return false
		}
	}
	return true
}

// Validate checks the struct-level constraints of the resume.
func (r *Resume) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
