package audit

import "strings"

// Category is the normalized product category used to steer scoring context
type Category string

const (
	CategoryFood     Category = "Food"
	CategoryCosmetic Category = "Cosmetic"
	CategoryCleaning Category = "Cleaning"
	CategoryOther    Category = "Other"
)

var categoryKeywords = []struct {
	category Category
	keywords []string
}{
	{CategoryFood, []string{"food", "drink", "snack", "beverage", "edible"}},
	{CategoryCosmetic, []string{"cosmetic", "skin", "hair", "face", "makeup", "lotion", "soap"}},
	{CategoryCleaning, []string{"clean", "detergent", "wash"}},
}

// NormalizeCategory maps the extractor's free-text category guess onto one of
// the four allowed categories. The vision model may answer with anything from
// "Food" to "It looks like a snack"; keyword containment handles both.
func NormalizeCategory(raw string) Category {
	text := strings.ToLower(strings.TrimSpace(raw))
	if text == "" {
		return CategoryOther
	}
	for _, entry := range categoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				return entry.category
			}
		}
	}
	return CategoryOther
}
