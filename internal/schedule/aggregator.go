package schedule

import (
	"fmt"
	"strings"
)

// estimated section duration in minutes, keyed by category label
var categoryDurations = map[string]int{
	"basic":    30,
	"strength": 45,
	"cardio":   30,
}

const defaultSectionDuration = 30

// SectionID derives the section key from a category label: lowercase,
// whitespace runs replaced with hyphens.
func SectionID(category string) string {
	return strings.Join(strings.Fields(strings.ToLower(category)), "-")
}

// CategoryForSectionID resolves a section id back to the literal
// category label it was derived from, scanning the given assignments.
// Falls back to the id itself when no live assignment matches, which
// covers sections that are currently empty.
func CategoryForSectionID(sectionID string, details []AssignmentDetails) string {
	for _, d := range details {
		if d.Exercise == nil {
			continue
		}
		if SectionID(d.Exercise.Category) == sectionID {
			return d.Exercise.Category
		}
	}
	return sectionID
}

// BuildSections groups assignments by exercise category into display
// sections. Assignments whose catalog entry is missing are silently
// dropped. Section order follows the first encountered assignment per
// category, assignments are expected pre-sorted by their order field.
func BuildSections(details []AssignmentDetails) []Section {
	sections := make([]Section, 0)
	sectionIndex := map[string]int{}

	for _, d := range details {
		if d.Exercise == nil {
			// orphaned assignment, catalog entry deleted
			continue
		}

		category := d.Exercise.Category
		sectionID := SectionID(category)

		idx, ok := sectionIndex[sectionID]
		if !ok {
			duration, mapped := categoryDurations[category]
			if !mapped {
				duration = defaultSectionDuration
			}
			sections = append(sections, Section{
				ID:        sectionID,
				Title:     fmt.Sprintf("%s - %d min", category, duration),
				Exercises: make([]ExerciseView, 0),
			})
			idx = len(sections) - 1
			sectionIndex[sectionID] = idx
		}

		sections[idx].Exercises = append(sections[idx].Exercises, ExerciseView{
			ID:        fmt.Sprintf("%d", d.ID),
			Name:      d.Exercise.Name,
			Category:  category,
			Equipment: splitEquipment(d.Exercise.Equipment),
			SetsData:  buildSetsData(d.ID, d.Sets),
		})
	}

	return sections
}

func splitEquipment(equipment string) []string {
	parts := strings.Split(equipment, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func buildSetsData(assignmentID int, sets []Set) []SetView {
	if len(sets) == 0 {
		// keep the set list non-empty for client rendering
		return []SetView{{
			ID:      fmt.Sprintf("%d-set-0", assignmentID),
			Fatigue: "",
		}}
	}

	setsData := make([]SetView, 0, len(sets))
	for _, s := range sets {
		setsData = append(setsData, SetView{
			ID:       fmt.Sprintf("%d-set-%d", assignmentID, s.ID),
			Weight:   emptyIfNil(s.Weight),
			Reps:     emptyIfNil(s.Reps),
			Duration: emptyIfNil(s.Duration),
			Fatigue:  stringOrEmpty(s.Fatigue),
		})
	}
	return setsData
}

func emptyIfNil(s *string) *string {
	if s == nil {
		empty := ""
		return &empty
	}
	return s
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
