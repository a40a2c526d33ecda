package apidoc_test

import (
	"strings"
	"testing"

	ao "github.com/Gobd/apidocopenapi"
	"github.com/Gobd/apidocopenapi/apidoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const apiData = `[
  {
    "type": " GET ",
    "url": "/user/:id",
    "title": "Read data of a User",
    "name": "GetUser",
    "group": "User",
    "version": "0.3.0",
    "description": "  Compare version 0.3.0 with 0.2.0  ",
    "header": {
      "fields": {
        "Header": [
          {"group": "Header", "type": "String", "optional": false, "field": "Authorization", "description": "Bearer token."}
        ]
      }
    },
    "parameter": {
      "fields": {
        "Parameter": [
          {"group": "Parameter", "type": "Number", "optional": false, "field": "id", "description": "The Users-ID."}
        ],
        "Login": [
          {"type": "String", "optional": true, "field": "session"}
        ]
      }
    },
    "success": {
      "fields": {
        "Success 200": [
          {"group": "Success 200", "type": "String", "optional": false, "field": "name"}
        ],
        "Success 202": [
          {"group": "Success 202", "type": "Boolean", "optional": false, "field": "queued"}
        ]
      }
    },
    "error": {
      "fields": {
        "Error 4xx": [
          {"group": "Error 4xx", "optional": false, "field": "NoAccessRight"},
          {"group": "Error 4xx", "optional": false, "field": "UserNotFound"}
        ]
      }
    },
    "deprecated": {"content": "use now (#Users:GetUserV2)."},
    "filename": "source/example.js",
    "groupTitle": "User"
  },
  {
    "type": "post",
    "url": "/user",
    "title": "Create a new User",
    "name": "PostUser",
    "group": "User",
    "version": "0.3.0"
  }
]`

func TestDecodeEndpoints(t *testing.T) {
	endpoints, err := apidoc.DecodeEndpoints(strings.NewReader(apiData))
	require.NoError(t, err)
	require.Len(t, endpoints, 2)

	ep := endpoints[0]
	assert.Equal(t, "/user/:id", ep.URL)
	assert.Equal(t, "get", ep.Method)
	assert.Equal(t, "Read data of a User", ep.Title)
	assert.Equal(t, "GetUser", ep.Name)
	assert.Equal(t, "User", ep.Group)
	assert.Equal(t, "0.3.0", ep.Version)
	assert.Equal(t, "Compare version 0.3.0 with 0.2.0", ep.Description)
	assert.True(t, ep.Deprecated)

	assert.Equal(t, []ao.FieldDescriptor{
		{Field: "Authorization", Type: "String", Description: "Bearer token.", Group: "Header"},
	}, ep.Header)
	assert.Equal(t, []ao.FieldDescriptor{
		{Field: "id", Type: "Number", Description: "The Users-ID.", Group: "Parameter"},
		{Field: "session", Type: "String", Optional: true, Group: "Login"},
	}, ep.Parameter)

	require.Len(t, ep.Success, 2)
	assert.Equal(t, "Success 200", ep.Success[0].Label)
	assert.Equal(t, "Success 202", ep.Success[1].Label)
	require.Len(t, ep.Error, 1)
	assert.Equal(t, "Error 4xx", ep.Error[0].Label)
	assert.Equal(t, []string{"NoAccessRight", "UserNotFound"},
		[]string{ep.Error[0].Fields[0].Field, ep.Error[0].Fields[1].Field})
	assert.Empty(t, ep.Error[0].Fields[0].Type)

	empty := endpoints[1]
	assert.Equal(t, "post", empty.Method)
	assert.False(t, empty.Deprecated)
	assert.Nil(t, empty.Header)
	assert.Nil(t, empty.Parameter)
	assert.Nil(t, empty.Success)
	assert.Nil(t, empty.Error)
}

func TestDecodeEndpoints_GroupOrderFollowsDocument(t *testing.T) {
	const data = `[{"type":"get","url":"/x","success":{"fields":{
		"Success 204": [{"field":"z"}],
		"Success 200": [{"field":"a"}],
		"Success 201": [{"field":"m"}]
	}}}]`

	endpoints, err := apidoc.DecodeEndpoints(strings.NewReader(data))
	require.NoError(t, err)

	var labels []string
	for _, g := range endpoints[0].Success {
		labels = append(labels, g.Label)
	}
	assert.Equal(t, []string{"Success 204", "Success 200", "Success 201"}, labels)
}

func TestDecodeEndpoints_Deprecated(t *testing.T) {
	tests := map[string]bool{
		`true`:              true,
		`false`:             false,
		`null`:              false,
		`{"content":"old"}`: true,
		`{}`:                true,
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			data := `[{"type":"get","url":"/x","deprecated":` + raw + `}]`
			endpoints, err := apidoc.DecodeEndpoints(strings.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, want, endpoints[0].Deprecated)
		})
	}
}

func TestDecodeEndpoints_NullFields(t *testing.T) {
	data := `[{"type":"get","url":"/x","parameter":{"fields":null},"success":null}]`
	endpoints, err := apidoc.DecodeEndpoints(strings.NewReader(data))
	require.NoError(t, err)
	assert.Nil(t, endpoints[0].Parameter)
	assert.Nil(t, endpoints[0].Success)
}

func TestDecodeEndpoints_Errors(t *testing.T) {
	tests := map[string]string{
		"not json":           `nope`,
		"not an array":       `{"type":"get"}`,
		"fields not object":  `[{"type":"get","url":"/x","success":{"fields":[1,2]}}]`,
		"group not a list":   `[{"type":"get","url":"/x","success":{"fields":{"Success 200":"x"}}}]`,
		"field not a record": `[{"type":"get","url":"/x","header":{"fields":{"Header":[1]}}}]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := apidoc.DecodeEndpoints(strings.NewReader(data))
			assert.ErrorContains(t, err, "failed to decode api data")
		})
	}
}

func TestDecodeProject(t *testing.T) {
	const data = `{
		"name": "example",
		"version": "0.1.0",
		"description": " apiDoc basic example ",
		"title": "Custom apiDoc browser title",
		"url": "https://api.github.com/v1",
		"template": {"withCompare": true},
		"generator": {"name": "apidoc", "version": "0.17.6"}
	}`

	p, err := apidoc.DecodeProject(strings.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, ao.Project{
		Name:        "example",
		Title:       "Custom apiDoc browser title",
		Description: "apiDoc basic example",
		Version:     "0.1.0",
		URL:         "https://api.github.com/v1",
	}, p)
}

func TestNormalize(t *testing.T) {
	ep := apidoc.Normalize(ao.Endpoint{
		URL:    " /a ",
		Method: "PoSt",
		Name:   "\tCreate\n",
		Parameter: []ao.FieldDescriptor{
			{Field: " name ", Type: " String ", Optional: true, Description: " The name. ", Group: " Parameter "},
		},
		Error: []ao.FieldGroup{{Label: " Error 404 ", Fields: []ao.FieldDescriptor{{Field: "NotFound "}}}},
	})

	assert.Equal(t, "/a", ep.URL)
	assert.Equal(t, "post", ep.Method)
	assert.Equal(t, "Create", ep.Name)
	assert.Equal(t, ao.FieldDescriptor{
		Field: "name", Type: "String", Optional: true, Description: "The name.", Group: "Parameter",
	}, ep.Parameter[0])
	assert.Equal(t, "Error 404", ep.Error[0].Label)
	assert.Equal(t, "NotFound", ep.Error[0].Fields[0].Field)
	assert.Nil(t, ep.Header)
	assert.Nil(t, ep.Success)
}

func TestNormalize_DoesNotModifyInput(t *testing.T) {
	in := ao.Endpoint{Parameter: []ao.FieldDescriptor{{Field: " id "}}}
	_ = apidoc.Normalize(in)
	assert.Equal(t, " id ", in.Parameter[0].Field)
}
