package apidoc

import (
	"strconv"

	ao "github.com/Gobd/apidocopenapi"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Methods lists the HTTP methods an endpoint may declare, lower-cased.
var Methods = []any{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// ValidationErrors maps a record key to its validation error.
type ValidationErrors = validation.Errors

// ValidateProject checks the project descriptor. Only the URL is constrained,
// and only when present.
func ValidateProject(p ao.Project) error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.URL, is.URL),
	)
}

// ValidateEndpoints checks every endpoint and returns a [ValidationErrors]
// keyed by the endpoint's index, or nil.
func ValidateEndpoints(endpoints []ao.Endpoint) error {
	errs := ValidationErrors{}
	for i := range endpoints {
		if err := ValidateEndpoint(endpoints[i]); err != nil {
			errs[strconv.Itoa(i)] = err
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateEndpoint checks the parts of ep the compiler cannot do without: a
// URL, a known method and a path for every field.
func ValidateEndpoint(ep ao.Endpoint) error {
	return validation.ValidateStruct(&ep,
		validation.Field(&ep.URL, validation.Required),
		validation.Field(&ep.Method, validation.Required, validation.In(Methods...)),
		validation.Field(&ep.Header, validation.Each(fieldRule)),
		validation.Field(&ep.Parameter, validation.Each(fieldRule)),
		validation.Field(&ep.Success, validation.Each(groupRule)),
		validation.Field(&ep.Error, validation.Each(groupRule)),
	)
}

var fieldRule = validation.By(func(value any) error {
	f, ok := value.(ao.FieldDescriptor)
	if !ok {
		return nil
	}
	return validation.ValidateStruct(&f,
		validation.Field(&f.Field, validation.Required),
	)
})

var groupRule = validation.By(func(value any) error {
	g, ok := value.(ao.FieldGroup)
	if !ok {
		return nil
	}
	return validation.ValidateStruct(&g,
		validation.Field(&g.Label, validation.Required),
		validation.Field(&g.Fields, validation.Each(fieldRule)),
	)
})
