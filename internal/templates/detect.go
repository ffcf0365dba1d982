package templates

import "strings"

// CategoryCustom is returned when a description matches no known category.
const CategoryCustom = "custom"

// Keyword lists are checked in order; the first category with a hit wins.
var detectRules = []struct {
	category string
	keywords []string
}{
	{"blog-posts", []string{"blog", "article", "post", "content", "write", "writing", "seo", "topic"}},
	{"social-media", []string{"social media", "instagram", "facebook", "twitter", "linkedin", "post", "caption", "hashtag"}},
	{"emails", []string{"email", "newsletter", "message", "send", "contact", "outreach", "pitch"}},
	{"marketing-copy", []string{"marketing", "campaign", "promotion", "sales", "advertising", "copy"}},
	{"creative-writing", []string{"story", "creative", "fiction", "narrative", "character", "plot"}},
}

// DetectCategory guesses a template category from a free-text description
// using simple keyword matching. Unmatched descriptions map to "custom".
func DetectCategory(description string) string {
	lower := strings.ToLower(description)
	for _, rule := range detectRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return CategoryCustom
}
