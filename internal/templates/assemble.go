package templates

import (
	"fmt"
	"strings"
)

// assembleFunc builds a local preview prompt from raw form values. The
// functions never validate; callers gate on required fields first.
type assembleFunc func(data map[string]string) string

var assemblers = map[string]assembleFunc{
	"blog-posts":           assembleBlogPost,
	"image-generation":     assembleImage,
	"video-generation":     assembleVideo,
	"customer-support":     assembleCustomerSupport,
	"meeting-prep":         assembleMeetingPrep,
	"product-descriptions": assembleProductDescription,
	"personal-development": assemblePersonalDevelopment,
	"thinking-tools":       assembleThinkingTools,
	"ad-copy":              assembleAdCopy,
	"how-to-generator":     assembleHowTo,
	"roleplay-simulation":  assembleRoleplay,
	"copy-editing":         assembleCopyEditing,
	"travel-planning":      assembleTravelPlanning,
}

// Assemble produces the local preview prompt for a template. It returns ""
// when the template is unknown, has no local assembler, or when any required
// field is missing or whitespace-only.
func Assemble(templateID string, data map[string]string) string {
	tpl, ok := Get(templateID)
	if !ok {
		return ""
	}
	fn, ok := assemblers[templateID]
	if !ok {
		return ""
	}
	for _, f := range tpl.Fields {
		if f.Required && strings.TrimSpace(data[f.Name]) == "" {
			return ""
		}
	}
	return fn(data)
}

// HasAssembler reports whether a template supports local preview assembly.
func HasAssembler(templateID string) bool {
	_, ok := assemblers[templateID]
	return ok
}

func assembleBlogPost(data map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b,
		"Act as an SEO expert and blog writer. Create a detailed outline for a ~1,500 word blog post on '%s'. The tone should be %s, targeting %s.",
		data["topic"], data["tone"], data["audience"])

	if kw := data["keywords"]; strings.TrimSpace(kw) != "" {
		fmt.Fprintf(&b, " Include SEO keywords such as %s.", kw)
	}

	fmt.Fprintf(&b, `

Please structure the outline with:
1. Compelling title options
2. Introduction hook and key points
3. Main sections with subheadings
4. Key takeaways for each section
5. Conclusion that drives action
6. Meta description suggestions

Ensure the content is valuable, engaging, and optimized for search engines while maintaining the %s tone throughout.`, data["tone"])

	return b.String()
}

// partList accumulates optional clauses in declaration order. Select values
// are lower-cased where the clause reads as prose.
type partList []string

func (p *partList) add(v, format string) {
	if v != "" {
		*p = append(*p, fmt.Sprintf(format, v))
	}
}

func (p *partList) addLower(v, format string) {
	p.add(strings.ToLower(v), format)
}

func assembleImage(data map[string]string) string {
	var parts partList
	parts.add(data["subject"], "%s")
	parts.addLower(data["style"], "in %s style")
	parts.addLower(data["mood"], "with a %s atmosphere")
	parts.addLower(data["lighting"], "lit by %s")
	parts.addLower(data["composition"], "%s composition")
	parts.addLower(data["colors"], "featuring %s")
	parts.add(data["details"], "including %s")
	parts = append(parts, "high quality, detailed, professional")
	return strings.Join(parts, ", ")
}

func assembleVideo(data map[string]string) string {
	var parts partList
	parts.add(data["concept"], "%s")
	parts.addLower(data["duration"], "Duration: %s")
	parts.addLower(data["movement"], "Camera: %s")
	parts.addLower(data["style"], "Style: %s")
	parts.addLower(data["mood"], "Mood: %s")
	parts.addLower(data["lighting"], "Lighting: %s")
	parts.add(data["setting"], "Setting: %s")
	parts.add(data["details"], "Details: %s")
	parts = append(parts, "high quality, smooth motion, professional cinematography")
	return strings.Join(parts, ". ")
}

func assembleCustomerSupport(data map[string]string) string {
	var parts partList
	parts.add(data["situation"], "Customer situation: %s")
	parts.addLower(data["responseType"], "Type: %s")
	parts.addLower(data["tone"], "Tone: %s")
	parts.addLower(data["outcome"], "Goal: %s")
	parts.add(data["constraints"], "Constraints: %s")
	parts = append(parts, "professional customer service, clear communication, solution-oriented")
	return strings.Join(parts, ". ")
}

func assembleMeetingPrep(data map[string]string) string {
	var parts partList
	parts.addLower(data["taskType"], "Task: %s")
	parts.add(data["content"], "Content: %s")
	parts.addLower(data["meetingType"], "Meeting type: %s")
	parts.add(data["audience"], "Audience: %s")
	parts.add(data["focus"], "Focus areas: %s")
	parts = append(parts, "clear structure, actionable outcomes, professional format")
	return strings.Join(parts, ". ")
}

func assembleProductDescription(data map[string]string) string {
	var parts partList
	parts.add(data["platform"], "Platform: %s")
	parts.add(data["product"], "Product: %s")
	parts.add(data["targetAudience"], "Target audience: %s")
	parts.add(data["keyFeatures"], "Key features: %s")
	parts.add(data["keywords"], "Keywords: %s")
	parts.add(data["priceRange"], "Price range: %s")
	parts = append(parts, "persuasive copy, SEO-optimized, conversion-focused")
	return strings.Join(parts, ". ")
}

func assemblePersonalDevelopment(data map[string]string) string {
	var parts partList
	parts.addLower(data["journalType"], "Journal type: %s")
	parts.addLower(data["timeframe"], "Timeframe: %s")
	parts.addLower(data["focus"], "Focus: %s")
	parts.add(data["challenge"], "Current challenge: %s")
	parts.addLower(data["tone"], "Tone: %s")
	parts = append(parts, "thoughtful questions, personal growth, self-reflection")
	return strings.Join(parts, ". ")
}

func assembleThinkingTools(data map[string]string) string {
	var parts partList
	parts.add(data["framework"], "Framework: %s")
	parts.add(data["context"], "Context: %s")
	parts.add(data["rawThoughts"], "Raw thoughts: %s")
	parts.addLower(data["timeHorizon"], "Time horizon: %s")
	parts.add(data["stakeholders"], "Stakeholders: %s")
	parts = append(parts, "structured thinking, clear analysis, actionable insights")
	return strings.Join(parts, ". ")
}

func assembleAdCopy(data map[string]string) string {
	var parts partList
	parts.add(data["platform"], "Platform: %s")
	parts.add(data["product"], "Product: %s")
	parts.add(data["targetAudience"], "Target: %s")
	parts.add(data["painPoint"], "Pain point: %s")
	parts.add(data["benefit"], "Benefit: %s")
	parts.add(data["callToAction"], "CTA: %s")
	parts.add(data["urgency"], "Urgency: %s")
	parts = append(parts, "compelling copy, conversion-focused, platform-optimized")
	return strings.Join(parts, ". ")
}

func assembleHowTo(data map[string]string) string {
	var parts partList
	parts.add(data["topic"], "Topic: %s")
	parts.addLower(data["audience"], "Audience: %s")
	parts.addLower(data["format"], "Format: %s")
	parts.addLower(data["timeframe"], "Duration: %s")
	parts.add(data["tools"], "Tools needed: %s")
	parts.add(data["commonMistakes"], "Avoid: %s")
	parts = append(parts, "clear instructions, step-by-step guidance, practical advice")
	return strings.Join(parts, ". ")
}

func assembleRoleplay(data map[string]string) string {
	var parts partList
	parts.addLower(data["simulationType"], "Simulation: %s")
	parts.add(data["topic"], "Topic: %s")
	parts.add(data["role"], "Role: %s")
	parts.addLower(data["perspective"], "Perspective: %s")
	parts.add(data["goals"], "Goals: %s")
	parts.add(data["context"], "Context: %s")
	parts = append(parts, "engaging roleplay, authentic character, educational dialogue")
	return strings.Join(parts, ". ")
}

func assembleCopyEditing(data map[string]string) string {
	var parts partList
	parts.add(data["originalText"], "Original text: %s")
	parts.addLower(data["editingGoal"], "Goal: %s")
	parts.addLower(data["targetTone"], "Target tone: %s")
	parts.addLower(data["targetFormat"], "Format: %s")
	parts.add(data["audience"], "Audience: %s")
	parts.add(data["constraints"], "Constraints: %s")
	parts = append(parts, "improved clarity, better flow, enhanced readability")
	return strings.Join(parts, ". ")
}

func assembleTravelPlanning(data map[string]string) string {
	var parts partList
	parts.addLower(data["planningType"], "Planning type: %s")
	parts.add(data["destination"], "Destination: %s")
	parts.addLower(data["duration"], "Duration: %s")
	parts.addLower(data["budget"], "Budget: %s")
	parts.add(data["interests"], "Interests: %s")
	parts.addLower(data["travelStyle"], "Travel style: %s")
	parts.add(data["constraints"], "Considerations: %s")
	parts = append(parts, "practical recommendations, local insights, detailed planning")
	return strings.Join(parts, ". ")
}
