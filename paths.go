package apidocopenapi

import (
	"strings"

	"github.com/Gobd/apidocopenapi/openapi"
	"github.com/getkin/kin-openapi/openapi3"
)

// BuildPaths compiles endpoints into path items, in order. Models and shared
// responses are accumulated in reg, so later endpoints reuse what earlier
// ones registered.
func BuildPaths(endpoints []Endpoint, reg *Registry) *openapi3.Paths {
	paths := openapi3.NewPaths()
	for _, ep := range endpoints {
		openapi.AddPath(paths, PathTemplate(ep.URL), ep.Method, reg.Operation(ep))
	}
	return paths
}

// Operation compiles a single endpoint, registering its group model and any
// shared responses in reg.
func (r *Registry) Operation(ep Endpoint) *openapi3.Operation {
	model := strings.ToLower(ep.Group)
	r.Model(model)

	op := &openapi3.Operation{
		Summary:     ep.Title,
		Description: ep.Description,
		OperationID: ep.Group + "." + ep.Name,
		Responses:   openapi3.NewResponsesWithCapacity(len(ep.Success) + len(ep.Error)),
		Deprecated:  ep.Deprecated,
	}

	r.addParameters(op, ep, model)

	for _, g := range ep.Success {
		r.addResponse(op, g, model)
	}
	for _, g := range ep.Error {
		r.addResponse(op, g, ErrorModel)
	}
	return op
}

// parameterIn picks the location of a root parameter: path, then header,
// then query for get and delete. An empty result means the request body.
func parameterIn(f FieldDescriptor, route map[string]bool, method string) string {
	switch {
	case route[f.Field]:
		return openapi3.ParameterInPath
	case f.Group == GroupHeader:
		return openapi3.ParameterInHeader
	case method == "get" || method == "delete":
		return openapi3.ParameterInQuery
	default:
		return ""
	}
}

func (r *Registry) addParameters(op *openapi3.Operation, ep Endpoint, model string) {
	params := make([]FieldDescriptor, 0, len(ep.Header)+len(ep.Parameter))
	params = append(params, ep.Header...)
	params = append(params, ep.Parameter...)

	compiler := NewSchemaCompiler(params)
	route := routeParams(ep.URL)
	method := strings.ToLower(ep.Method)

	var body *openapi3.Schema
	for _, f := range rootFields(params) {
		in := parameterIn(f, route, method)
		if in == "" {
			if body == nil {
				var content openapi3.Content
				body, content = openapi.NewObjectBody()
				op.RequestBody = &openapi3.RequestBodyRef{
					Value: openapi3.NewRequestBody().WithRequired(true).WithContent(content),
				}
			}
			r.addBodyField(body, model, compiler, f)
			continue
		}

		op.Parameters = append(op.Parameters, &openapi3.ParameterRef{
			Value: &openapi3.Parameter{
				Name:        f.Field,
				In:          in,
				Description: f.Description,
				// OpenAPI requires path parameters to be required.
				Required: !f.Optional || in == openapi3.ParameterInPath,
				Schema:   r.addProperty(model, f.Field, compiler.Schema(f), f.Description),
			},
		})
	}
}

// addResponse compiles one response group. Groups without root fields add
// nothing.
func (r *Registry) addResponse(op *openapi3.Operation, g FieldGroup, model string) {
	roots := rootFields(g.Fields)
	if len(roots) == 0 {
		return
	}
	code := StatusCode(g.Label)
	// Fields are merged into the model even when the response itself is
	// already shared by an earlier endpoint.
	_, content := r.objectBody(model, NewSchemaCompiler(g.Fields), roots)
	resp := openapi3.NewResponse().WithDescription(g.Label).WithContent(content)

	if IsShared(code) {
		op.Responses.Set(code, r.sharedResponse(code, resp))
		return
	}
	op.Responses.Set(code, &openapi3.ResponseRef{Value: resp})
}
