package report

import "strings"

// Category is the heuristic bucket an assessment type string falls
// into. Types are free-form in the document; reports group them.
type Category string

const (
	CategoryExam         Category = "exam"
	CategoryProject      Category = "project"
	CategoryContinuous   Category = "continuous"
	CategoryPractical    Category = "practical"
	CategoryPresentation Category = "presentation"
	CategoryOther        Category = "other"
)

// categoryOrder fixes the rendering order of report rows.
var categoryOrder = []Category{
	CategoryExam, CategoryProject, CategoryContinuous,
	CategoryPractical, CategoryPresentation, CategoryOther,
}

// Categorize maps a free-form assessment type to its bucket by keyword.
func Categorize(typ string) Category {
	t := strings.ToLower(typ)
	switch {
	case strings.Contains(t, "exam") || strings.Contains(t, "test") || strings.Contains(t, "mcq"):
		return CategoryExam
	case strings.Contains(t, "project") || strings.Contains(t, "dissertation") || strings.Contains(t, "thesis"):
		return CategoryProject
	case strings.Contains(t, "assignment") || strings.Contains(t, "continuous") || strings.Contains(t, "portfolio") || strings.Contains(t, "essay") || strings.Contains(t, "quiz"):
		return CategoryContinuous
	case strings.Contains(t, "lab") || strings.Contains(t, "practical") || strings.Contains(t, "skills"):
		return CategoryPractical
	case strings.Contains(t, "presentation") || strings.Contains(t, "viva") || strings.Contains(t, "demo"):
		return CategoryPresentation
	default:
		return CategoryOther
	}
}
