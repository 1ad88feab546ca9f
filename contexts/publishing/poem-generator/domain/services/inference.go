package services

import "strings"

const (
	StyleHaiku     = "Haiku"
	StyleFreeVerse = "Free Verse"
)

var themeKeywords = []struct {
	theme    string
	keywords []string
}{
	{"love", []string{"love", "heart", "romance"}},
	{"nature", []string{"nature", "forest", "ocean", "mountain"}},
	{"technology", []string{"tech", "digital", "ai", "computer"}},
	{"time", []string{"time", "memory", "past"}},
	{"dreams", []string{"dream", "fantasy", "magic"}},
	{"city-life", []string{"city", "urban", "street"}},
}

var styleKeywords = []struct {
	keyword string
	style   string
}{
	{"haiku", StyleHaiku},
	{"sonnet", "Sonnet"},
	{"limerick", "Limerick"},
	{"ballad", "Ballad"},
	{"acrostic", "Acrostic"},
}

// TemplateTheme picks one of the themes the template table covers.
func TemplateTheme(title string) string {
	theme := InferTheme(title)
	switch theme {
	case "love", "nature", "technology":
		return theme
	default:
		return "nature"
	}
}

// InferTheme matches title keywords by substring; first rule wins.
func InferTheme(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range themeKeywords {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.theme
			}
		}
	}
	return "nature"
}

// TemplateStyle is Haiku for titles of up to three words.
func TemplateStyle(title string) string {
	if len(strings.Fields(title)) <= 3 {
		return StyleHaiku
	}
	return StyleFreeVerse
}

// InferStyle honors a named form in the title before falling back to
// TemplateStyle.
func InferStyle(title string) string {
	lower := strings.ToLower(title)
	for _, rule := range styleKeywords {
		if strings.Contains(lower, rule.keyword) {
			return rule.style
		}
	}
	return TemplateStyle(title)
}

// LengthHint maps a length option to a line-count instruction.
func LengthHint(length string) string {
	switch length {
	case "short":
		return "4-8 lines"
	case "medium":
		return "8-16 lines"
	case "long":
		return "16+ lines"
	default:
		return "medium length"
	}
}
