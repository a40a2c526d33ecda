package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gobd/apidocopenapi/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDoc() *openapi3.T {
	doc := openapi.DocBase("Pets", "Pet store", "2.0.0", "https://pets.example.com")
	schema, content := openapi.NewObjectBody()
	schema.Properties["name"] = openapi3.NewSchemaRef(openapi.SchemaPointer("pet", "name"), nil)
	schema.Required = []string{"name"}
	doc.Components.Schemas["pet"] = openapi3.NewSchemaRef("", openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()))

	op := &openapi3.Operation{
		OperationID: "Pet.Create",
		RequestBody: &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().WithRequired(true).WithContent(content)},
		Responses:   openapi3.NewResponses(),
	}
	openapi.AddPath(doc.Paths, "/pets", "post", op)
	return doc
}

func TestDocBase(t *testing.T) {
	doc := openapi.DocBase("T", "D", "1.0.0", "http://x")

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(b, &tree))
	assert.Equal(t, "3.0.1", tree["openapi"])
	assert.Equal(t, map[string]any{"title": "T", "description": "D", "version": "1.0.0"}, tree["info"])
	assert.Equal(t, []any{map[string]any{"url": "http://x"}}, tree["servers"])
	assert.Contains(t, tree, "paths")
	assert.Contains(t, tree, "components")
}

func TestAddPath(t *testing.T) {
	paths := openapi3.NewPaths()

	get := &openapi3.Operation{OperationID: "get"}
	post := &openapi3.Operation{OperationID: "post"}
	assert.True(t, openapi.AddPath(paths, "/a", "get", get))
	assert.True(t, openapi.AddPath(paths, "/a", "POST", post))

	item := paths.Value("/a")
	require.NotNil(t, item)
	assert.Same(t, get, item.Get)
	assert.Same(t, post, item.Post)
	assert.Equal(t, 1, paths.Len())
}

func TestAddPath_LastWins(t *testing.T) {
	paths := openapi3.NewPaths()
	openapi.AddPath(paths, "/a", "get", &openapi3.Operation{OperationID: "first"})
	openapi.AddPath(paths, "/a", "get", &openapi3.Operation{OperationID: "second"})

	assert.Equal(t, "second", paths.Value("/a").Get.OperationID)
}

func TestAddPath_UnknownMethod(t *testing.T) {
	paths := openapi3.NewPaths()

	for _, method := range []string{"subscribe", "", "connect"} {
		assert.False(t, openapi.AddPath(paths, "/a", method, &openapi3.Operation{}), method)
	}
	assert.Equal(t, 0, paths.Len())
}

func TestPointers(t *testing.T) {
	assert.Equal(t, "#/components/schemas/user/properties/id", openapi.SchemaPointer("user", "id"))
	assert.Equal(t, "#/components/schemas/a~1b/properties/x~0y", openapi.SchemaPointer("a/b", "x~y"))
	assert.Equal(t, "#/components/responses/4XX", openapi.ResponsePointer("4XX"))
}

func TestMarshal_JSONAndYAMLAgree(t *testing.T) {
	doc := sampleDoc()

	js, err := openapi.Marshal(doc, openapi.FormatJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(js), "}\n"))
	assert.Contains(t, string(js), "\n  \"openapi\": \"3.0.1\"")

	ym, err := openapi.Marshal(doc, openapi.FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(ym), "openapi: 3.0.1")

	var fromJSON, fromYAML any
	require.NoError(t, json.Unmarshal(js, &fromJSON))
	require.NoError(t, yaml.Unmarshal(ym, &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)
}

func TestMarshal_UnknownFormat(t *testing.T) {
	_, err := openapi.Marshal(sampleDoc(), "toml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestSwaggerHandler(t *testing.T) {
	var doc *openapi3.T
	h, err := openapi.SwaggerHandler("/swagger/", "Pets", func() *openapi3.T { return doc })
	require.NoError(t, err)

	mux := http.NewServeMux()
	mux.Handle("/swagger/", h)

	get := func(path string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		return rec
	}

	t.Run("index", func(t *testing.T) {
		rec := get("/swagger/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "<title>Pets</title>")
		assert.Contains(t, rec.Body.String(), "docs.json")
	})

	t.Run("no document yet", func(t *testing.T) {
		assert.Equal(t, http.StatusServiceUnavailable, get("/swagger/docs.json").Code)
	})

	t.Run("document", func(t *testing.T) {
		doc = sampleDoc()
		rec := get("/swagger/docs.json")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, openapi.ContentType, rec.Header().Get("Content-Type"))

		var tree map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tree))
		assert.Equal(t, "Pets", tree["info"].(map[string]any)["title"])
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, get("/swagger/nope.js").Code)
	})
}
