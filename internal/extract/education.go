package extract

import (
	"github.com/jonathan/resume-parser/internal/bullets"
	"github.com/jonathan/resume-parser/internal/features"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/subsections"
	"github.com/jonathan/resume-parser/internal/types"
)

// educationHeaderLines is how many leading lines of an entry may hold the school and degree
const educationHeaderLines = 2

// Educations extracts one entry per education subsection. School and degree come from the
// entry's first lines; date and GPA may sit anywhere in the entry.
func Educations(lines types.Lines, opts Options) ([]types.Education, []types.FieldScores) {
	educations := []types.Education{}
	debug := []types.FieldScores{}

	for _, sub := range subsections.Divide(lines, opts.Subsections) {
		headerCount := min(educationHeaderLines, len(sub))
		header := headerItems(sub, headerCount)
		all := sub.Items()
		scores := types.FieldScores{}

		var education types.Education
		education.School, scores["school"] = scoring.HighestScoring(header, features.SchoolFeatureSet, scoring.Options{})
		education.Degree, scores["degree"] = scoring.HighestScoring(header, features.DegreeFeatureSet, scoring.Options{})
		education.Date, scores["date"] = scoring.HighestScoring(all, features.EducationDateFeatureSet, scoring.Options{})
		education.GPA, scores["gpa"] = scoring.HighestScoring(all, features.GPAFeatureSet, scoring.Options{})

		start := bullets.DescriptionsStartIndex(sub)
		if start < 0 {
			start = headerCount
		}
		education.Descriptions = withoutCoreFields(descriptionsFrom(sub, start),
			education.School, education.Degree, education.GPA, education.Date)

		if education.School == "" && education.Degree == "" && len(education.Descriptions) == 0 {
			continue
		}
		educations = append(educations, education)
		debug = append(debug, scores)
	}

	return educations, debug
}
