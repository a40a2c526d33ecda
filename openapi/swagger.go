package openapi

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed swagger/*
var swagFS embed.FS

// DocSource returns the document to serve, or nil while none is available.
// It is called on every request for the document so a recompiled document is
// picked up without a restart.
type DocSource func() *openapi3.T

// SwaggerHandler returns an http.Handler that serves the Swagger UI for the
// documents returned by src. The prefix is stripped automatically, so just
// mount it:
//
//	http.Handle("/swagger/", openapi.SwaggerHandlerMust("/swagger/", "My API", src))
//
// The document itself is served at docs.json below the prefix. It is not
// validated.
func SwaggerHandler(prefix, title string, src DocSource) (http.Handler, error) {
	tmpl, err := template.ParseFS(swagFS, "swagger/index.html")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{"Title": title, "SpecURL": "docs.json"}); err != nil {
		return nil, err
	}
	index := buf.Bytes()

	static, err := fs.Sub(swagFS, "swagger")
	if err != nil {
		return nil, err
	}
	files := http.FileServer(http.FS(static))

	return http.StripPrefix(prefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "", "/", "index.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(index)
		case "docs.json":
			doc := src()
			if doc == nil {
				http.Error(w, "document not available", http.StatusServiceUnavailable)
				return
			}
			specJSON, err := Marshal(doc, FormatJSON)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", ContentType)
			_, _ = w.Write(specJSON)
		default:
			files.ServeHTTP(w, r)
		}
	})), nil
}

// SwaggerHandlerMust is like SwaggerHandler but panics on error.
func SwaggerHandlerMust(prefix, title string, src DocSource) http.Handler {
	h, err := SwaggerHandler(prefix, title, src)
	if err != nil {
		panic(err)
	}
	return h
}
