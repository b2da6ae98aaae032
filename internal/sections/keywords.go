// Package sections splits a document's lines into named top-level resume sections.
package sections

import (
	"slices"
	"strings"
)

// Canonical section names.
const (
	Profile        = "profile"
	Contact        = "contact"
	Education      = "education"
	Experience     = "experience"
	Projects       = "projects"
	Skills         = "skills"
	Awards         = "awards"
	Publications   = "publications"
	Certifications = "certifications"
	Volunteer      = "volunteer experience"
	Languages      = "languages"
	References     = "references"
	Positions      = "positions of responsibility"
)

// prefixSlack is how many characters a title may run past a keyword it starts with
const prefixSlack = 20

// Category is a canonical section name with the heading phrases that introduce it.
type Category struct {
	Name     string
	Keywords []string
}

// categories is the keyword dictionary, in matching priority order
var categories = []Category{
	{Name: Profile, Keywords: []string{"profile", "summary", "objective", "about me", "about", "personal summary", "professional profile", "professional summary", "career objective"}},
	{Name: Contact, Keywords: []string{"contact", "contact information", "contact details"}},
	{Name: Education, Keywords: []string{"education", "academic background", "qualifications", "academic history", "scholastic record", "education and training"}},
	{Name: Experience, Keywords: []string{
		"experience", "work experience", "employment history", "professional experience", "career summary",
		"work history", "relevant experience", "professional background", "career history", "internship",
		"internships", "work and research experience", "employment", "industry experience",
	}},
	{Name: Projects, Keywords: []string{"projects", "personal projects", "portfolio", "technical projects", "academic projects", "selected projects", "project experience", "side projects"}},
	{Name: Skills, Keywords: []string{"skills", "technical skills", "proficiencies", "expertise", "technical expertise", "technologies", "core competencies", "technical proficiency", "skills and tools"}},
	{Name: Awards, Keywords: []string{"awards", "honors", "achievements", "recognitions", "scholarships", "awards and honors", "honors and awards", "honors & awards"}},
	{Name: Publications, Keywords: []string{"publications", "research", "articles", "conference papers", "research and publications"}},
	{Name: Certifications, Keywords: []string{"certifications", "licenses & certifications", "licenses and certifications", "professional certifications", "licenses", "credentials", "certificates"}},
	{Name: Volunteer, Keywords: []string{"volunteer experience", "volunteering", "community involvement", "volunteer work", "community service"}},
	{Name: Languages, Keywords: []string{"languages", "language proficiency"}},
	{Name: References, Keywords: []string{"references"}},
	{Name: Positions, Keywords: []string{"positions of responsibility", "leadership experience", "extracurricular activities", "activities", "leadership roles", "leadership"}},
}

// Categories returns a copy of the keyword dictionary in matching priority order.
func Categories() []Category {
	out := make([]Category, len(categories))
	for i, category := range categories {
		out[i] = Category{Name: category.Name, Keywords: slices.Clone(category.Keywords)}
	}
	return out
}

// normalizeTitle lower-cases a heading and drops surrounding spaces and a trailing colon
func normalizeTitle(text string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	normalized = strings.TrimSpace(strings.TrimSuffix(normalized, ":"))
	return strings.Join(strings.Fields(normalized), " ")
}

// FindExactCategory returns the category whose keyword equals text, ignoring case and spaces.
func FindExactCategory(text string) string {
	normalized := normalizeTitle(text)
	if normalized == "" {
		return ""
	}
	compact := strings.ReplaceAll(normalized, " ", "")
	for _, category := range categories {
		for _, keyword := range category.Keywords {
			if normalized == keyword || compact == strings.ReplaceAll(keyword, " ", "") {
				return category.Name
			}
		}
	}
	return ""
}

// FindCategory returns the category matching text exactly, or else the first category with a
// keyword that text starts with, provided text is at most a few words longer than the keyword.
func FindCategory(text string) string {
	if name := FindExactCategory(text); name != "" {
		return name
	}
	normalized := normalizeTitle(text)
	if normalized == "" {
		return ""
	}
	for _, category := range categories {
		for _, keyword := range category.Keywords {
			if strings.HasPrefix(normalized, keyword) && len(normalized) <= len(keyword)+prefixSlack {
				return category.Name
			}
		}
	}
	return ""
}

// KeyFromTitle turns a heading with no dictionary match into a section name.
func KeyFromTitle(text string) string {
	return normalizeTitle(text)
}
