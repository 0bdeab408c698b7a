package ingress

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"

	icsv1 "github.com/suffiks/ingress-extension/apis/ingress/v1"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Decode parses the opaque spec payload handed over by the orchestrator.
// The payload is JSON (or YAML) of the form {"ingress": {"routes": [...]}}.
func Decode(payload []byte) (*icsv1.Ingress, error) {
	var spec icsv1.XIngressSpec
	if err := yaml.Unmarshal(payload, &spec); err != nil {
		return nil, &DecodeError{Payload: payload, Err: err}
	}
	if err := validate.Struct(&spec); err != nil {
		return nil, &DecodeError{Payload: payload, Err: err}
	}
	return spec.Ingress, nil
}

// FieldPath converts a validator namespace such as XIngressSpec.ingress.routes[0].host
// into a path relative to the spec root
func FieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// Describe returns a short human readable message for a field error
func Describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "startswith":
		return fmt.Sprintf("must start with %q", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
