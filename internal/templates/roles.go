package templates

// roleMapping lists the curated persona suggestions per template category.
var roleMapping = map[string][]string{
	"blog-posts": {
		"SEO content strategist",
		"expert blog writer",
		"content marketing specialist",
		"industry thought leader",
		"digital marketing expert",
	},
	"social-media": {
		"social media manager",
		"brand strategist",
		"community manager",
		"viral content creator",
		"social media influencer",
	},
	"emails": {
		"email marketing specialist",
		"customer success manager",
		"sales professional",
		"business communication expert",
		"relationship manager",
	},
	"creative-writing": {
		"creative writing instructor",
		"storytelling expert",
		"fiction writer",
		"narrative consultant",
		"creative director",
	},
	"marketing-copy": {
		"conversion copywriter",
		"brand strategist",
		"marketing psychologist",
		"sales funnel expert",
		"direct response marketer",
	},
	"idea-generation": {
		"innovation consultant",
		"creative thinking facilitator",
		"design thinking expert",
		"business strategist",
		"brainstorming facilitator",
	},
	"scripts": {
		"YouTube scriptwriter",
		"video content creator",
		"podcast producer",
		"presentation coach",
		"media production expert",
	},
	"code-help": {
		"senior software engineer",
		"coding mentor",
		"technical architect",
		"full-stack developer",
		"programming instructor",
	},
	"resumes-cvs": {
		"career coach",
		"HR specialist",
		"recruitment expert",
		"professional development consultant",
		"executive resume writer",
	},
	"lesson-plans": {
		"educational consultant",
		"curriculum designer",
		"instructional designer",
		"teaching specialist",
		"learning experience designer",
	},
}

var genericRoles = []string{"expert consultant", "specialist", "professional advisor"}

// DefaultRoles returns the curated persona list for a template, falling back
// to the generic trio for categories without a mapping. The result is a copy.
func DefaultRoles(templateID string) []string {
	roles, ok := roleMapping[templateID]
	if !ok {
		roles = genericRoles
	}
	out := make([]string, len(roles))
	copy(out, roles)
	return out
}
