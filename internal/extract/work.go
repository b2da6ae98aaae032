package extract

import (
	"github.com/jonathan/resume-parser/internal/bullets"
	"github.com/jonathan/resume-parser/internal/features"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/subsections"
	"github.com/jonathan/resume-parser/internal/types"
)

// workHeaderLines is where descriptions start when an entry has no bullet or prose line
const workHeaderLines = 2

// WorkExperiences extracts one entry per job subsection. The date and job title are scored
// first; the company is then the best remaining header text, preferring bold.
func WorkExperiences(lines types.Lines, opts Options) ([]types.WorkExperience, []types.FieldScores) {
	jobs := []types.WorkExperience{}
	debug := []types.FieldScores{}

	for _, sub := range subsections.Divide(lines, opts.Subsections) {
		start := bullets.DescriptionsStartIndex(sub)
		if start < 0 {
			start = len(sub)
			if len(sub) > workHeaderLines {
				start = workHeaderLines
			}
		}
		info := headerItems(sub, start)
		scores := types.FieldScores{}

		var job types.WorkExperience
		job.Date, scores["date"] = scoring.HighestScoring(info, features.DateFeatureSet, scoring.Options{})
		job.JobTitle, scores["job_title"] = scoring.HighestScoring(info, features.JobTitleFeatureSet, scoring.Options{})
		job.Company, scores["company"] = scoring.HighestScoring(info, features.CompanyFeatureSet(job.Date, job.JobTitle),
			scoring.Options{AllowNonPositive: true})
		job.Descriptions = withoutCoreFields(descriptionsFrom(sub, start), job.Company, job.JobTitle, job.Date)

		if job.Company == "" && job.JobTitle == "" && job.Date == "" && len(job.Descriptions) == 0 {
			continue
		}
		jobs = append(jobs, job)
		debug = append(debug, scores)
	}

	return jobs, debug
}
