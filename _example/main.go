// Command example compiles a small hand written endpoint list and serves a
// Swagger UI for it.
//
// Run:
//
//	go run ./_example
//
// Then open http://localhost:8080/swagger/ in your browser.
package main

import (
	"fmt"
	"log"
	"net/http"

	ao "github.com/Gobd/apidocopenapi"
	"github.com/Gobd/apidocopenapi/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gorilla/mux"
)

var project = ao.Project{
	Name:        "orders",
	Title:       "Example API",
	Description: "Demonstrates apidocopenapi",
	Version:     "0.1.0",
	URL:         "http://localhost:8080",
}

var endpoints = []ao.Endpoint{
	{
		URL:    "/orders",
		Method: "post",
		Title:  "Create an order",
		Name:   "CreateOrder",
		Group:  "Order",
		Parameter: []ao.FieldDescriptor{
			{Field: "customer_name", Type: "String", Group: ao.GroupParameter},
			{Field: "items", Type: "Object[]", Group: ao.GroupParameter},
			{Field: "items.sku", Type: "String", Group: ao.GroupParameter},
			{Field: "items.count", Type: "Number", Group: ao.GroupParameter},
			{Field: "note", Type: "String", Optional: true, Group: ao.GroupParameter},
		},
		Success: []ao.FieldGroup{{Label: "Success 201", Fields: []ao.FieldDescriptor{
			{Field: "id", Type: "Number", Group: "Success 201", Description: "Order number."},
		}}},
		Error: []ao.FieldGroup{{Label: "Error 400", Fields: []ao.FieldDescriptor{
			{Field: "error", Type: "String", Group: "Error 400", Description: "Validation error."},
		}}},
	},
	{
		URL:    "/orders/:id",
		Method: "get",
		Title:  "Read an order",
		Name:   "GetOrder",
		Group:  "Order",
		Parameter: []ao.FieldDescriptor{
			{Field: "id", Type: "Number", Group: ao.GroupParameter},
		},
		Success: []ao.FieldGroup{{Label: "Success 200", Fields: []ao.FieldDescriptor{
			{Field: "customer_name", Type: "String", Group: "Success 200"},
			{Field: "total", Type: "Number", Group: "Success 200"},
		}}},
		Error: []ao.FieldGroup{{Label: "Error 404", Fields: []ao.FieldDescriptor{
			{Field: "error", Type: "String", Group: "Error 404"},
		}}},
	},
}

func main() {
	doc := ao.Compile(project, endpoints)

	r := mux.NewRouter()
	r.PathPrefix("/swagger/").Handler(openapi.SwaggerHandlerMust("/swagger/", project.Title, func() *openapi3.T { return doc }))
	r.HandleFunc("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		b, err := openapi.Marshal(doc, openapi.FormatYAML)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		_, _ = w.Write(b)
	}).Methods(http.MethodGet)

	fmt.Println("Listening on http://localhost:8080")
	fmt.Println("Swagger UI: http://localhost:8080/swagger/")
	log.Fatal(http.ListenAndServe(":8080", r))
}
