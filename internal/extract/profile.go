package extract

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/features"
	"github.com/jonathan/resume-parser/internal/scoring"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

// urlSeparator joins multiple profile links
const urlSeparator = " | "

// url priorities, lower sorts first
const (
	linkedInPriority = iota
	gitHubPriority
	otherURLPriority
)

// Profile extracts the contact header and summary. Contact fields are scored over the
// leading profile lines and any contact section. A summary is taken from a block introduced
// by a summary heading when one exists, and otherwise from long profile sentences.
func Profile(secs sections.Sections) (types.Profile, types.FieldScores) {
	header, summaryLines := profileBlocks(secs)
	items := header.Items()
	scores := types.FieldScores{}

	var profile types.Profile
	profile.Name, scores["name"] = scoring.HighestScoring(items, features.NameFeatureSet, scoring.Options{})
	profile.Email, scores["email"] = scoring.HighestScoring(items, features.EmailFeatureSet, scoring.Options{})
	profile.Phone, scores["phone"] = scoring.HighestScoring(items, features.PhoneFeatureSet, scoring.Options{})
	profile.Location, scores["location"] = scoring.HighestScoring(items, features.LocationFeatureSet(profile.Name), scoring.Options{})

	profile.URL = collectURLs(items)
	_, scores["url"] = scoring.HighestScoring(items, features.URLFeatureSet, scoring.Options{})

	profile.Summary = strings.Join(strings.Fields(joinText(summaryLines)), " ")
	if profile.Summary == "" && len(items) > 0 {
		var summary string
		summary, scores["summary"] = scoring.HighestScoring(items, features.SummaryFeatureSet, scoring.Options{ConcatenateTies: true})
		candidate := types.TextItem{Text: summary}
		if !features.HasDegree(candidate) && !features.HasSchool(candidate) {
			profile.Summary = summary
		}
	}

	return profile, scores
}

// profileBlocks splits profile content into contact header lines and summary lines. A
// profile heading ("Summary", "Objective") inside the leading block starts the summary.
// Profile sections opened later by a heading are summary content too.
func profileBlocks(secs sections.Sections) (types.Lines, types.Lines) {
	header := types.Lines{}
	summary := types.Lines{}

	for _, section := range secs {
		switch section.Name {
		case sections.Contact:
			header = append(header, section.Lines...)
		case sections.Profile:
			if section.Title != nil {
				summary = append(summary, section.Lines...)
				continue
			}
			inSummary := false
			for _, line := range section.Lines {
				if !inSummary && len(line) <= 4 && sections.FindExactCategory(line.Text()) == sections.Profile {
					// a heading above the contact lines labels the header, not a summary
					inSummary = len(header) > 0
					continue
				}
				if inSummary {
					summary = append(summary, line)
				} else {
					header = append(header, line)
				}
			}
		}
	}
	return header, summary
}

// collectURLs gathers every distinct profile link, LinkedIn first, then GitHub, then others
func collectURLs(items []types.TextItem) string {
	priorities := make(map[string]int)
	for _, item := range items {
		if span, ok := features.MatchLinkedInURL(item).Span(); ok {
			priorities[strings.TrimSpace(span)] = linkedInPriority
		}
		if span, ok := features.MatchGitHubURL(item).Span(); ok {
			priorities[strings.TrimSpace(span)] = gitHubPriority
		}
		if span, ok := features.MatchOtherURL(item).Span(); ok {
			url := strings.TrimSpace(span)
			if _, seen := priorities[url]; !seen {
				priorities[url] = otherURLPriority
			}
		}
	}

	urls := make([]string, 0, len(priorities))
	for url := range priorities {
		if url != "" {
			urls = append(urls, url)
		}
	}
	sort.Slice(urls, func(i, j int) bool {
		if priorities[urls[i]] != priorities[urls[j]] {
			return priorities[urls[i]] < priorities[urls[j]]
		}
		return urls[i] < urls[j]
	})
	return strings.Join(urls, urlSeparator)
}

func joinText(lines types.Lines) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if text := line.Text(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}
