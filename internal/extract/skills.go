package extract

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/bullets"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

// Skills extracts skill descriptions and fills featured skills from the items that come
// before the first bullet line. Featured skills always hold six slots.
func Skills(lines types.Lines) types.Skills {
	skills := types.Skills{
		FeaturedSkills: types.NewFeaturedSkills(),
		Descriptions:   []string{},
	}
	if len(lines) == 0 {
		return skills
	}

	start := bullets.DescriptionsStartIndex(lines)
	if start < 0 {
		start = 0
	}
	skills.Descriptions = descriptionsFrom(lines, start)

	slot := 0
	for _, item := range lines[:start].Items() {
		if slot >= types.FeaturedSkillCount {
			break
		}
		if text := strings.TrimSpace(item.Text); text != "" {
			skills.FeaturedSkills[slot].Skill = text
			slot++
		}
	}
	return skills
}

// Custom emits every section not in consumed as a custom section keyed by its name.
// Profile and contact content is never custom.
func Custom(secs sections.Sections, consumed map[string]bool) map[string]types.CustomSection {
	custom := map[string]types.CustomSection{}
	for _, name := range secs.Names() {
		if consumed[name] || name == sections.Profile || name == sections.Contact {
			continue
		}
		custom[name] = types.CustomSection{Descriptions: bullets.Extract(secs.Lines(name))}
	}
	return custom
}
