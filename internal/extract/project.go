package extract

import (
	"github.com/jonathan/resume-parser/internal/bullets"
	"github.com/jonathan/resume-parser/internal/features"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/subsections"
	"github.com/jonathan/resume-parser/internal/types"
)

// Projects extracts one entry per project subsection. Without a bullet or prose line the
// first line is the header and the rest are descriptions.
func Projects(lines types.Lines, opts Options) ([]types.Project, []types.FieldScores) {
	projects := []types.Project{}
	debug := []types.FieldScores{}

	for _, sub := range subsections.Divide(lines, opts.Subsections) {
		start := bullets.DescriptionsStartIndex(sub)
		if start < 0 {
			start = min(1, len(sub))
		}
		info := headerItems(sub, start)
		scores := types.FieldScores{}

		var project types.Project
		project.Date, scores["date"] = scoring.HighestScoring(info, features.DateFeatureSet, scoring.Options{})
		project.Project, scores["project"] = scoring.HighestScoring(info, features.ProjectFeatureSet(project.Date),
			scoring.Options{AllowNonPositive: true})
		project.Descriptions = withoutCoreFields(descriptionsFrom(sub, start), project.Project, project.Date)

		if project.Project == "" && project.Date == "" && len(project.Descriptions) == 0 {
			continue
		}
		projects = append(projects, project)
		debug = append(debug, scores)
	}

	return projects, debug
}
