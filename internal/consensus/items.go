package consensus

// BuildItemSet combines extracted ingredients and claims into the single
// ordered sequence the classifier agents audit: ingredients first, then
// claims, input order and duplicates preserved.
func BuildItemSet(ingredients, claims []string) []string {
	items := make([]string, 0, len(ingredients)+len(claims))
	items = append(items, ingredients...)
	items = append(items, claims...)
	return items
}
