package apidocopenapi

import (
	"github.com/Gobd/apidocopenapi/openapi"
	"github.com/getkin/kin-openapi/openapi3"
)

// Compile builds the OpenAPI document for project from endpoints. Endpoints
// are compiled in order with a fresh registry; the registry ends up as the
// document's components.
func Compile(project Project, endpoints []Endpoint) *openapi3.T {
	doc := openapi.DocBase(project.DisplayTitle(), project.Description, project.Version, project.URL)

	reg := NewRegistry()
	doc.Paths = BuildPaths(endpoints, reg)
	doc.Components.Schemas = reg.Schemas
	doc.Components.Responses = reg.Responses
	return doc
}
