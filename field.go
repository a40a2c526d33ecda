package apidocopenapi

import "strings"

// Field group names with a fixed meaning during parameter classification.
const (
	GroupHeader    = "Header"
	GroupParameter = "Parameter"
)

// FieldDescriptor is one documented field. Field is a dot separated path; a
// field whose path is a strict dotted prefix of another is that field's parent.
type FieldDescriptor struct {
	Field       string `json:"field"`
	Type        string `json:"type"`
	Optional    bool   `json:"optional"`
	Description string `json:"description,omitempty"`
	Group       string `json:"group"`
}

// IsRoot reports whether the field has no parent.
func (f FieldDescriptor) IsRoot() bool {
	return !strings.Contains(f.Field, ".")
}

// FieldGroup is an ordered list of fields sharing a label such as
// "Success 200" or "Error 4xx".
type FieldGroup struct {
	Label  string
	Fields []FieldDescriptor
}

// Endpoint is one documented operation.
type Endpoint struct {
	URL         string
	Method      string
	Title       string
	Name        string
	Description string
	Group       string
	Version     string
	Deprecated  bool

	Header    []FieldDescriptor
	Parameter []FieldDescriptor
	Success   []FieldGroup
	Error     []FieldGroup
}

// Project describes the documented API as a whole.
type Project struct {
	Name        string
	Title       string
	Description string
	Version     string
	URL         string
}

// DisplayTitle returns Title, falling back to Name.
func (p Project) DisplayTitle() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// rootFields drops every field that has a parent. Nested fields are only
// reachable through their root's schema.
func rootFields(fields []FieldDescriptor) []FieldDescriptor {
	roots := make([]FieldDescriptor, 0, len(fields))
	for _, f := range fields {
		if f.IsRoot() {
			roots = append(roots, f)
		}
	}
	return roots
}
