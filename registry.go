package apidocopenapi

import (
	"github.com/Gobd/apidocopenapi/openapi"
	"github.com/getkin/kin-openapi/openapi3"
)

// ErrorModel is the model every error response property is merged into.
const ErrorModel = "error"

// Registry accumulates the shared parts of one document: a model schema per
// endpoint group plus the error model, and one response per shared status
// code. Entries are created on first use and never replaced, so the first
// endpoint to declare a property or a shared response defines it.
type Registry struct {
	Schemas   openapi3.Schemas
	Responses openapi3.ResponseBodies
}

// NewRegistry returns a registry holding only the empty error model.
func NewRegistry() *Registry {
	return &Registry{
		Schemas: openapi3.Schemas{
			ErrorModel: openapi3.NewSchemaRef("", openapi3.NewObjectSchema()),
		},
		Responses: openapi3.ResponseBodies{},
	}
}

// Model returns the object schema registered under name, creating it if needed.
func (r *Registry) Model(name string) *openapi3.Schema {
	ref, ok := r.Schemas[name]
	if !ok {
		ref = openapi3.NewSchemaRef("", openapi3.NewObjectSchema())
		r.Schemas[name] = ref
	}
	if ref.Value.Properties == nil {
		ref.Value.Properties = openapi3.Schemas{}
	}
	return ref.Value
}

// addProperty stores schema as property name of model unless the model
// already has one, and returns a reference to the stored property.
func (r *Registry) addProperty(model, name string, schema *openapi3.SchemaRef, description string) *openapi3.SchemaRef {
	m := r.Model(model)
	if _, ok := m.Properties[name]; !ok {
		if schema.Value != nil && schema.Value.Description == "" {
			schema.Value.Description = description
		}
		m.Properties[name] = schema
	}
	return openapi3.NewSchemaRef(openapi.SchemaPointer(model, name), nil)
}

// objectBody merges the given root fields into model and returns an inline
// object schema whose properties reference them.
func (r *Registry) objectBody(model string, compiler *SchemaCompiler, roots []FieldDescriptor) (*openapi3.Schema, openapi3.Content) {
	schema, content := openapi.NewObjectBody()
	for _, f := range roots {
		r.addBodyField(schema, model, compiler, f)
	}
	return schema, content
}

func (r *Registry) addBodyField(body *openapi3.Schema, model string, compiler *SchemaCompiler, f FieldDescriptor) {
	body.Properties[f.Field] = r.addProperty(model, f.Field, compiler.Schema(f), f.Description)
	if !f.Optional {
		body.Required = append(body.Required, f.Field)
	}
}

// sharedResponse returns a reference to the shared response for code,
// storing resp if code is not registered yet.
func (r *Registry) sharedResponse(code string, resp *openapi3.Response) *openapi3.ResponseRef {
	if _, ok := r.Responses[code]; !ok {
		r.Responses[code] = &openapi3.ResponseRef{Value: resp}
	}
	return &openapi3.ResponseRef{Ref: openapi.ResponsePointer(code)}
}
