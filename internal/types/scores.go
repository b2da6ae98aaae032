package types

// TextScore accumulates the score of one candidate text during a scoring pass.
type TextScore struct {
	Text    string `json:"text"`
	Score   int    `json:"score"`
	Matched bool   `json:"matched"`
}

// FieldScores maps a field name (e.g. "email") to the candidate scores that decided it.
type FieldScores map[string][]TextScore

// DebugScores collects per-field scores for a whole resume.
type DebugScores struct {
	Profile         FieldScores   `json:"profile"`
	Educations      []FieldScores `json:"educations"`
	WorkExperiences []FieldScores `json:"work_experiences"`
	Projects        []FieldScores `json:"projects"`
}

// NewDebugScores returns DebugScores with non-nil collections.
func NewDebugScores() *DebugScores {
	return &DebugScores{
		Profile:         FieldScores{},
		Educations:      []FieldScores{},
		WorkExperiences: []FieldScores{},
		Projects:        []FieldScores{},
	}
}
