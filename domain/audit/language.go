package audit

import "strings"

// DefaultLanguage is the narrative language used when the request does not
// name a supported one.
const DefaultLanguage = "English"

var supportedLanguages = []string{
	"English", "Arabic", "Spanish", "French", "German", "Chinese",
}

// NormalizeLanguage maps a requested narrative language onto the supported
// set. Unsupported or empty input falls back to English rather than erroring.
func NormalizeLanguage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	for _, lang := range supportedLanguages {
		if strings.EqualFold(trimmed, lang) {
			return lang
		}
	}
	return DefaultLanguage
}
