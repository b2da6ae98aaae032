package features

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

// jobTitlePhrases are multi-word titles matched as substrings
var jobTitlePhrases = []string{"software engineer", "data scientist", "product manager", "teaching assistant", "research assistant"}

// jobTitleWords are single words that mark a line as a job title
var jobTitleWords = lowerSet(
	"Accountant", "Administrator", "Advisor", "Agent", "Analyst", "Apprentice", "Architect",
	"Assistant", "Associate", "Auditor", "Bartender", "Biologist", "Bookkeeper", "Buyer",
	"Carpenter", "Cashier", "CEO", "Clerk", "Co-op", "Co-Founder", "Consultant", "Coordinator",
	"CTO", "Developer", "Designer", "Director", "Driver", "Editor", "Electrician", "Engineer",
	"Extern", "Founder", "Freelancer", "Head", "Intern", "Janitor", "Journalist", "Laborer",
	"Lawyer", "Lead", "Manager", "Mechanic", "Member", "Nurse", "Officer", "Operator",
	"Operation", "Photographer", "President", "Producer", "Programmer", "Recruiter",
	"Representative", "Researcher", "Sales", "Server", "Scientist", "Specialist", "Supervisor",
	"Teacher", "Technician", "Trader", "Trainee", "Treasurer", "Tutor", "Vice", "VP",
	"Volunteer", "Webmaster", "Worker",
)

func lowerSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, word := range words {
		set[strings.ToLower(word)] = true
	}
	return set
}

// HasJobTitle reports whether the item contains a known job title word or phrase.
func HasJobTitle(item types.TextItem) bool {
	lower := strings.ToLower(item.Text)
	for _, phrase := range jobTitlePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	for _, word := range strings.Fields(lower) {
		if jobTitleWords[strings.Trim(word, ",;:|()")] {
			return true
		}
	}
	return false
}

// JobTitleFeatureSet scores candidates for a job title.
var JobTitleFeatureSet = scoring.FeatureSet{
	scoring.Bool("job_title", HasJobTitle, 4),
	scoring.Bool("number", HasNumber, -4),
	scoring.Bool("long_text", MoreThanWords(5), -2),
}

// CompanyFeatureSet scores candidates for a company name, penalizing the already extracted
// date and job title.
func CompanyFeatureSet(date, jobTitle string) scoring.FeatureSet {
	return scoring.FeatureSet{
		scoring.Bool("bold", IsBold, 2),
		scoring.NotEqualTo(date, -4),
		scoring.NotEqualTo(jobTitle, -4),
	}
}

// ProjectFeatureSet scores candidates for a project name, penalizing the already extracted date.
func ProjectFeatureSet(date string) scoring.FeatureSet {
	return scoring.FeatureSet{
		scoring.Bool("bold", IsBold, 2),
		scoring.NotEqualTo(date, -4),
	}
}
