package features

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/types"
)

var (
	schoolPattern = regexp.MustCompile(`(?i)\b(?:College|University|Institute|School|Academy|Polytechnic|Universit[éy])\b`)

	degreeFieldPattern = regexp.MustCompile(`(?i)\b(?:Degree|Major|Minor|Concentration)\s+in\b`)
	degreePattern      = regexp.MustCompile(`(?i)\b(?:` + strings.Join([]string{
		`Bachelor`, `Master`, `PhD`, `Ph\.D\.?`, `Doctor of`, `Doctorate`, `Associate`, `Diploma`, `Certificate`,
		`B\.S\.?`, `M\.S\.?`, `B\.A\.?`, `M\.A\.?`, `M\.B\.A\.?`, `B\.Eng\.?`, `M\.Eng\.?`, `B\.Tech\.?`, `M\.Tech\.?`,
		`BSc`, `MSc`, `BS`, `MS`, `BA`, `MA`, `MBA`, `BEng`, `MEng`, `BTech`, `MTech`,
	}, "|") + `)(?:\b|\s|,|$)`)
	majorMinorPattern = regexp.MustCompile(`(?i)\b(?:major|minor)\b`)

	strictGPAPattern  = regexp.MustCompile(`(?i)\b(?:GPA[:\s]+)?([0-4]\.\d{1,2})(?:\s*(?:/|out\s+of)\s*[0-5]\.\d{1,2})?\s*(?:GPA)?\b`)
	genericGPAPattern = regexp.MustCompile(`\b[0-4]\.\d{1,2}\b`)
)

// HasSchool reports whether the item names a kind of school.
func HasSchool(item types.TextItem) bool {
	return schoolPattern.MatchString(item.Text)
}

// HasDegree reports whether the item names a degree or a field of study.
func HasDegree(item types.TextItem) bool {
	return degreeFieldPattern.MatchString(item.Text) || degreePattern.MatchString(item.Text)
}

// MatchGPA finds a grade point average and returns only the number, so "GPA: 3.8/4.0"
// yields "3.8".
func MatchGPA(item types.TextItem) scoring.PredicateResult {
	groups := strictGPAPattern.FindStringSubmatchIndex(item.Text)
	if groups == nil || groups[2] < 0 {
		return scoring.NoMatch()
	}
	return scoring.MatchedSpan(item.Text[groups[2]:groups[3]])
}

// MatchDecimalGrade finds any X.XX number in the GPA range.
func MatchDecimalGrade(item types.TextItem) scoring.PredicateResult {
	return scoring.FromRegexp(genericGPAPattern, item.Text)
}

// IsEducationDate reports whether the item reads like a graduation or attendance date:
// a month or season with a year, or a short phrase holding a year that is not ongoing.
func IsEducationDate(item types.TextItem) bool {
	words := WordCount(item)
	if words > 4 || !HasYear(item) {
		return false
	}
	if HasMonth(item) || HasSeason(item) {
		return true
	}
	return words <= 3 && !HasPresent(item)
}

// SchoolFeatureSet scores candidates for a school name.
var SchoolFeatureSet = scoring.FeatureSet{
	scoring.Bool("school", HasSchool, 5),
	scoring.Bool("university", func(item types.TextItem) bool {
		return strings.Contains(strings.ToLower(item.Text), "university")
	}, 3),
	scoring.Bool("degree", HasDegree, -4),
	scoring.Bool("job_title", HasJobTitle, -5),
	scoring.Bool("tech_stack", IsLikelyTechStack, -4),
	scoring.Bool("education_date", IsEducationDate, -4),
}

// DegreeFeatureSet scores candidates for a degree.
var DegreeFeatureSet = scoring.FeatureSet{
	scoring.Bool("degree", HasDegree, 5),
	scoring.Bool("major_minor", func(item types.TextItem) bool {
		return majorMinorPattern.MatchString(item.Text)
	}, 2),
	scoring.Bool("school", HasSchool, -2),
	scoring.Bool("job_title", HasJobTitle, -5),
	scoring.Bool("tech_stack", IsLikelyTechStack, -4),
	scoring.Bool("education_date", IsEducationDate, -4),
}

// GPAFeatureSet scores candidates for a GPA.
var GPAFeatureSet = scoring.FeatureSet{
	scoring.Match("gpa", MatchGPA, 5, true),
	scoring.Match("decimal_grade", MatchDecimalGrade, 2, true),
	scoring.Bool("letter", HasLetter, -4),
}

// EducationDateFeatureSet scores candidates for an education date.
var EducationDateFeatureSet = scoring.FeatureSet{
	scoring.Bool("education_date", IsEducationDate, 4),
	scoring.Bool("year", HasYear, 2),
	scoring.Bool("month", HasMonth, 1),
	scoring.Bool("present", HasPresent, -3),
	scoring.Bool("long_text", MoreThanWords(4), -3),
}
