package templates

import "fmt"

type FieldKind string

const (
	FieldKindText     FieldKind = "text"
	FieldKindTextarea FieldKind = "textarea"
	FieldKindSelect   FieldKind = "select"
)

// Field describes one user-input slot within a template.
type Field struct {
	Name        string    `json:"name"`
	Label       string    `json:"label"`
	Kind        FieldKind `json:"type"`
	Required    bool      `json:"required"`
	Placeholder string    `json:"placeholder,omitempty"`
	Options     []string  `json:"options,omitempty"`
	HelpText    string    `json:"helpText,omitempty"`
}

// Template is a named task category with declared input fields. Templates
// are immutable and defined at process start; the matching assembly
// strategy lives in the strategy table keyed by template id.
type Template struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	Available   bool    `json:"available"`
	Fields      []Field `json:"fields"`
}

var templateIndex map[string]*Template

func init() {
	templateIndex = make(map[string]*Template, len(catalog))
	for i := range catalog {
		t := &catalog[i]
		if _, dup := templateIndex[t.ID]; dup {
			panic(fmt.Sprintf("templates: duplicate template id %q", t.ID))
		}
		for _, f := range t.Fields {
			if f.Kind == FieldKindSelect && len(f.Options) == 0 {
				panic(fmt.Sprintf("templates: select field %q of %q has no options", f.Name, t.ID))
			}
		}
		templateIndex[t.ID] = t
	}
}

// Get looks up a template by id. Missing ids are a caller concern (404),
// never an internal error.
func Get(id string) (*Template, bool) {
	t, ok := templateIndex[id]
	return t, ok
}

// List returns the catalog in its declared order.
func List() []*Template {
	out := make([]*Template, 0, len(catalog))
	for i := range catalog {
		out = append(out, &catalog[i])
	}
	return out
}
