package apidocopenapi

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

const (
	typeObject  = "Object"
	arraySuffix = "[]"
)

// SchemaCompiler turns the flat field list of one scope (all parameters, or
// one response group) into nested schemas. Children are indexed by their
// parent path once, so compiling every root of a scope stays linear.
type SchemaCompiler struct {
	children map[string][]FieldDescriptor
}

// NewSchemaCompiler indexes fields by parent path. Children keep their list order.
func NewSchemaCompiler(fields []FieldDescriptor) *SchemaCompiler {
	c := &SchemaCompiler{children: make(map[string][]FieldDescriptor)}
	for _, f := range fields {
		i := strings.LastIndex(f.Field, ".")
		if i < 0 {
			continue
		}
		parent := f.Field[:i]
		c.children[parent] = append(c.children[parent], f)
	}
	return c
}

// BuildSchema compiles target against the fields in scope. Callers compiling
// many fields of one scope should reuse a SchemaCompiler instead.
func BuildSchema(fields []FieldDescriptor, target FieldDescriptor) *openapi3.SchemaRef {
	return NewSchemaCompiler(fields).Schema(target)
}

// Schema compiles target and its descendants.
//
//   - "Object" becomes an object whose properties are the immediate children.
//   - "T[]" becomes an array whose items are the schema of the same field typed T.
//     "Object[]" therefore becomes an array of objects built from the children.
//   - Anything else becomes {type: lowercase(T)}; the name is not checked.
func (c *SchemaCompiler) Schema(target FieldDescriptor) *openapi3.SchemaRef {
	switch {
	case target.Type == typeObject:
		schema := openapi3.NewObjectSchema()
		prefix := target.Field + "."
		for _, child := range c.children[target.Field] {
			name := strings.TrimPrefix(child.Field, prefix)
			schema.Properties[name] = c.Schema(child)
			if !child.Optional {
				schema.Required = append(schema.Required, name)
			}
		}
		return openapi3.NewSchemaRef("", schema)
	case strings.HasSuffix(target.Type, arraySuffix):
		elem := target
		elem.Type = strings.TrimSuffix(target.Type, arraySuffix)
		schema := openapi3.NewArraySchema()
		schema.Items = c.Schema(elem)
		return openapi3.NewSchemaRef("", schema)
	case target.Type == "":
		return openapi3.NewSchemaRef("", &openapi3.Schema{})
	default:
		return openapi3.NewSchemaRef("", &openapi3.Schema{
			Type: &openapi3.Types{strings.ToLower(target.Type)},
		})
	}
}
