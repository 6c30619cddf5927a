package domain

// CategoryColor is the color token rendering clients use for a tech category
// (calendar dots, card borders).
type CategoryColor string

const DefaultColor CategoryColor = "zinc"

var categoryColors = map[string]CategoryColor{
	"フロントエンド": "blue",
	"バックエンド":  "emerald",
	"インフラ":    "amber",
	"AI・ML":   "violet",
	"モバイル":    "pink",
	"セキュリティ":  "red",
	"データ":     "teal",
}

// ColorForCategory returns the color token for a tech category, or
// DefaultColor for unknown categories.
func ColorForCategory(category string) CategoryColor {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return DefaultColor
}

// PrimaryCategory returns the first tech category, or "" when there is none.
// Multi-event calendar days color by the first event's primary category.
func PrimaryCategory(categories []string) string {
	if len(categories) == 0 {
		return ""
	}
	return categories[0]
}

// PrimaryCategoryColor resolves the color for the primary category.
func PrimaryCategoryColor(categories []string) CategoryColor {
	primary := PrimaryCategory(categories)
	if primary == "" {
		return DefaultColor
	}
	return ColorForCategory(primary)
}
