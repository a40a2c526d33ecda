package apidoc

import (
	"strings"

	ao "github.com/Gobd/apidocopenapi"
)

// Normalize trims surrounding white space from every string of ep and its
// fields, and lower-cases the HTTP method.
func Normalize(ep ao.Endpoint) ao.Endpoint {
	ep.URL = strings.TrimSpace(ep.URL)
	ep.Method = strings.ToLower(strings.TrimSpace(ep.Method))
	ep.Title = strings.TrimSpace(ep.Title)
	ep.Name = strings.TrimSpace(ep.Name)
	ep.Description = strings.TrimSpace(ep.Description)
	ep.Group = strings.TrimSpace(ep.Group)
	ep.Version = strings.TrimSpace(ep.Version)

	ep.Header = normalizeFields(ep.Header)
	ep.Parameter = normalizeFields(ep.Parameter)
	ep.Success = normalizeGroups(ep.Success)
	ep.Error = normalizeGroups(ep.Error)
	return ep
}

// NormalizeProject trims surrounding white space from every string of p.
func NormalizeProject(p ao.Project) ao.Project {
	p.Name = strings.TrimSpace(p.Name)
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	p.Version = strings.TrimSpace(p.Version)
	p.URL = strings.TrimSpace(p.URL)
	return p
}

func normalizeGroups(groups []ao.FieldGroup) []ao.FieldGroup {
	if groups == nil {
		return nil
	}
	out := make([]ao.FieldGroup, len(groups))
	for i, g := range groups {
		out[i] = ao.FieldGroup{
			Label:  strings.TrimSpace(g.Label),
			Fields: normalizeFields(g.Fields),
		}
	}
	return out
}

func normalizeFields(fields []ao.FieldDescriptor) []ao.FieldDescriptor {
	if fields == nil {
		return nil
	}
	out := make([]ao.FieldDescriptor, len(fields))
	for i, f := range fields {
		out[i] = ao.FieldDescriptor{
			Field:       strings.TrimSpace(f.Field),
			Type:        strings.TrimSpace(f.Type),
			Optional:    f.Optional,
			Description: strings.TrimSpace(f.Description),
			Group:       strings.TrimSpace(f.Group),
		}
	}
	return out
}
