// Package openapi holds the document level helpers shared by the compiler and
// the command line tool: the base document, operation registration, local
// reference pointers, JSON/YAML encoding and a Swagger UI handler.
//
//	doc := openapi.DocBase("My API", "Example API", "1.0.0", "https://api.example.com")
//	openapi.AddPath(doc.Paths, "/orders/{id}", "get", &openapi3.Operation{OperationID: "Order.GetOrder"})
//	b, err := openapi.Marshal(doc, openapi.FormatYAML)
package openapi
