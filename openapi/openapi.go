package openapi

import (
	"net/http"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-openapi/jsonpointer"
)

// Version is the OpenAPI version written into every document.
const Version = "3.0.1"

// ContentType is the only media type used for bodies.
const ContentType = "application/json"

// DocBase returns an empty document with info, a single server, empty
// components and stub security, tags and external docs.
func DocBase(title, description, version, serverURL string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: Version,
		Info: &openapi3.Info{
			Title:       title,
			Description: description,
			Version:     version,
		},
		Servers: openapi3.Servers{
			&openapi3.Server{URL: serverURL},
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas:   openapi3.Schemas{},
			Responses: openapi3.ResponseBodies{},
		},
		Security:     openapi3.SecurityRequirements{},
		Tags:         openapi3.Tags{},
		ExternalDocs: &openapi3.ExternalDocs{},
	}
}

// AddPath registers op under path for method, which may be in any case.
// Methods OpenAPI has no slot for are ignored.
func AddPath(paths *openapi3.Paths, path, method string, op *openapi3.Operation) bool {
	method = strings.ToUpper(method)
	switch method {
	case http.MethodGet, http.MethodPut, http.MethodPost, http.MethodDelete,
		http.MethodOptions, http.MethodHead, http.MethodPatch, http.MethodTrace:
	default:
		return false
	}

	p := paths.Value(path)
	if p == nil {
		p = &openapi3.PathItem{}
	}
	p.SetOperation(method, op)
	paths.Set(path, p)
	return true
}

// SchemaPointer returns a local reference to property name of the model
// schema group.
func SchemaPointer(group, name string) string {
	return "#/components/schemas/" + jsonpointer.Escape(group) + "/properties/" + jsonpointer.Escape(name)
}

// ResponsePointer returns a local reference to the shared response for code.
func ResponsePointer(code string) string {
	return "#/components/responses/" + jsonpointer.Escape(code)
}

// NewObjectBody returns an inline object schema wrapped for use as a body.
func NewObjectBody() (*openapi3.Schema, openapi3.Content) {
	schema := openapi3.NewObjectSchema()
	return schema, openapi3.NewContentWithJSONSchema(schema)
}
