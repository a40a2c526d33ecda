// Package apidocopenapi compiles apiDoc endpoint descriptions into an
// OpenAPI 3 document.
//
// apiDoc describes every field as a flat record with a dotted path:
//
//	{"field": "address", "type": "Object"}
//	{"field": "address.city", "type": "String"}
//
// [BuildSchema] turns such a list into nested JSON schemas. [Compile] walks
// the endpoints in order and assembles the document: every field is stored
// once as a property of its group's model under components/schemas, and
// operations only reference it. Client error responses (4xx) are shared
// through components/responses.
//
//	doc := apidocopenapi.Compile(project, endpoints)
//	b, err := openapi.Marshal(doc, openapi.FormatYAML)
//
// Sub-packages:
//   - apidoc – reading, validating and filtering apiDoc output files
//   - openapi – document scaffolding, encoding and Swagger UI serving
package apidocopenapi
