package templates

import "strings"

// Validate checks form data against a template's required fields. The
// returned map is keyed by field name with a human-readable message, empty
// when the data is complete. Whitespace-only values count as missing.
func Validate(tpl *Template, data map[string]string) map[string]string {
	errs := make(map[string]string)
	for _, f := range tpl.Fields {
		if f.Required && strings.TrimSpace(data[f.Name]) == "" {
			errs[f.Name] = f.Label + " is required"
		}
	}
	return errs
}
