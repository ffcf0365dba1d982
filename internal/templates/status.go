package templates

// Status describes how far along a prompt draft is.
type Status string

const (
	// StatusEmpty means required fields are still missing.
	StatusEmpty Status = "empty"
	// StatusPreview means every required field is filled, so a local
	// assembly exists, but no remote generation has completed.
	StatusPreview Status = "preview"
	// StatusReady means a remotely generated prompt is present.
	StatusReady Status = "ready"
)

// StatusOf derives the draft status from form data and whether a generated
// prompt already exists. A generated prompt always wins over form state.
func StatusOf(tpl *Template, data map[string]string, hasGenerated bool) Status {
	if hasGenerated {
		return StatusReady
	}
	if len(Validate(tpl, data)) == 0 {
		return StatusPreview
	}
	return StatusEmpty
}
