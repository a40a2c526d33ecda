package apidoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	ao "github.com/Gobd/apidocopenapi"
)

// rawEndpoint is one entry of api_data.json.
type rawEndpoint struct {
	Type        string          `json:"type"`
	URL         string          `json:"url"`
	Title       string          `json:"title"`
	Name        string          `json:"name"`
	Group       string          `json:"group"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Deprecated  json.RawMessage `json:"deprecated"`
	Header      *section        `json:"header"`
	Parameter   *section        `json:"parameter"`
	Success     *section        `json:"success"`
	Error       *section        `json:"error"`
}

type section struct {
	Fields fieldGroups `json:"fields"`
}

func (s *section) groups() []ao.FieldGroup {
	if s == nil {
		return nil
	}
	return s.Fields
}

// fieldGroups decodes a JSON object of label -> field list, keeping the
// labels in document order. Response groups are emitted in that order.
type fieldGroups []ao.FieldGroup

func (g *fieldGroups) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("fields: expected an object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("fields: unexpected key %v", tok)
		}
		var fields []ao.FieldDescriptor
		if err := dec.Decode(&fields); err != nil {
			return fmt.Errorf("fields %q: %w", label, err)
		}
		*g = append(*g, ao.FieldGroup{Label: label, Fields: fields})
	}
	_, err = dec.Token()
	return err
}

// rawProject is api_project.json. Generator and template settings are ignored.
type rawProject struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Version     string `json:"version"`
	URL         string `json:"url"`
}

// DecodeEndpoints reads the contents of api_data.json. The records are
// normalized but not validated.
func DecodeEndpoints(r io.Reader) ([]ao.Endpoint, error) {
	var raw []rawEndpoint
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode api data: %w", err)
	}

	endpoints := make([]ao.Endpoint, len(raw))
	for i, re := range raw {
		endpoints[i] = Normalize(re.endpoint())
	}
	return endpoints, nil
}

// DecodeProject reads the contents of api_project.json.
func DecodeProject(r io.Reader) (ao.Project, error) {
	var raw rawProject
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return ao.Project{}, fmt.Errorf("failed to decode project: %w", err)
	}
	return NormalizeProject(ao.Project{
		Name:        raw.Name,
		Title:       raw.Title,
		Description: raw.Description,
		Version:     raw.Version,
		URL:         raw.URL,
	}), nil
}

func (re rawEndpoint) endpoint() ao.Endpoint {
	return ao.Endpoint{
		URL:         re.URL,
		Method:      re.Type,
		Title:       re.Title,
		Name:        re.Name,
		Description: re.Description,
		Group:       re.Group,
		Version:     re.Version,
		Deprecated:  isDeprecated(re.Deprecated),
		Header:      flatten(re.Header.groups()),
		Parameter:   flatten(re.Parameter.groups()),
		Success:     re.Success.groups(),
		Error:       re.Error.groups(),
	}
}

// isDeprecated accepts both {"content": "..."} and a plain boolean.
func isDeprecated(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "false":
		return false
	}
	return true
}

// flatten joins the fields of all groups, filling in the group of fields that
// do not name one.
func flatten(groups []ao.FieldGroup) []ao.FieldDescriptor {
	var fields []ao.FieldDescriptor
	for _, g := range groups {
		for _, f := range g.Fields {
			if f.Group == "" {
				f.Group = g.Label
			}
			fields = append(fields, f)
		}
	}
	return fields
}
