package docs

import (
	"fmt"
	"regexp"
	"strings"

	extv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"sigs.k8s.io/yaml"

	"github.com/suffiks/ingress-extension/config/crd"
)

// Object is a simplified representation of JSON Schema Object
type Object struct {
	ID          string
	Description string
	Properties  map[string]*Property
}

// Property is an Object property, that may be either an atomic value, reference to an object, a list or a map
type Property struct {
	ID          string
	Description string
	Required    bool

	ObjectOrAtomic
	// List is set when the property is a list of ObjectOrAtomic
	List bool
	Map  *ObjectOrAtomic
}

// Atomic is a scalar type with its schema constraints
type Atomic struct {
	Format  string
	Type    string
	Pattern string
	Enum    []string
	Min     *float64
	Max     *float64
}

// ExplainFormat returns a human readable explanation for a known format, i.e. hostname
func (a *Atomic) ExplainFormat() *string {
	if txt, ok := knownFormats[a.Format]; ok {
		return &txt
	}
	return nil
}

// Range renders numeric bounds as min..max, empty if the value is unbounded
func (a *Atomic) Range() string {
	if a.Min == nil && a.Max == nil {
		return ""
	}
	bound := func(v *float64) string {
		if v == nil {
			return ""
		}
		return fmt.Sprintf("%g", *v)
	}
	return bound(a.Min) + ".." + bound(a.Max)
}

// ObjectOrAtomic represents either an object reference or an atomic value
type ObjectOrAtomic struct {
	// ObjectRef if set, represents a reference to an object key
	ObjectRef *string
	// Atomic if set, represents an atomic type
	Atomic *Atomic
}

// Load parses the embedded XIngress CRD
func Load() (*extv1.CustomResourceDefinition, error) {
	var spec extv1.CustomResourceDefinition
	if err := yaml.Unmarshal(crd.XIngressCRD, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Flatten walks the JSON Schema and returns every nested object keyed by the property name
// it was found under. Items of object arrays are registered under the array key.
func Flatten(key string, src extv1.JSONSchemaProps) (map[string]*Object, error) {
	f := flattener{objects: make(map[string]*Object)}
	if err := f.object(key, src); err != nil {
		return nil, err
	}
	return f.objects, nil
}

var reWS = regexp.MustCompile(`(?:[\s\n\t]|\\t|\\n)+`)

func describe(s string) string {
	return strings.TrimSpace(reWS.ReplaceAllString(s, " "))
}

type flattener struct {
	objects map[string]*Object
}

func (f *flattener) object(key string, src extv1.JSONSchemaProps) error {
	if _, ok := f.objects[key]; ok {
		return fmt.Errorf("cannot flatten: duplicate key %s", key)
	}
	obj := &Object{
		ID:          key,
		Description: describe(src.Description),
		Properties:  make(map[string]*Property, len(src.Properties)),
	}
	f.objects[key] = obj

	for name, prop := range src.Properties {
		p, err := f.property(name, prop)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		p.ID = name
		p.Description = describe(prop.Description)
		obj.Properties[name] = p
	}

	for _, name := range src.Required {
		p, ok := obj.Properties[name]
		if !ok {
			return fmt.Errorf("required field %s not found", name)
		}
		p.Required = true
	}
	return nil
}

func (f *flattener) property(key string, prop extv1.JSONSchemaProps) (*Property, error) {
	switch prop.Type {
	case "string", "boolean", "integer", "number":
		return &Property{ObjectOrAtomic: ObjectOrAtomic{Atomic: atomic(prop)}}, nil
	case "array":
		if prop.Items == nil || prop.Items.Schema == nil {
			return nil, fmt.Errorf("array without item schema")
		}
		item, err := f.value(key, *prop.Items.Schema)
		if err != nil {
			return nil, err
		}
		return &Property{ObjectOrAtomic: item, List: true}, nil
	case "object":
		if prop.AdditionalProperties != nil && prop.AdditionalProperties.Schema != nil {
			val, err := f.value(key, *prop.AdditionalProperties.Schema)
			if err != nil {
				return nil, err
			}
			return &Property{Map: &val}, nil
		}
		val, err := f.value(key, prop)
		if err != nil {
			return nil, err
		}
		return &Property{ObjectOrAtomic: val}, nil
	default:
		return nil, fmt.Errorf("don't know how to handle type %q", prop.Type)
	}
}

// value registers objects under key and returns a reference to them, scalars are returned as is
func (f *flattener) value(key string, prop extv1.JSONSchemaProps) (ObjectOrAtomic, error) {
	if prop.Type != "object" {
		return ObjectOrAtomic{Atomic: atomic(prop)}, nil
	}
	if err := f.object(key, prop); err != nil {
		return ObjectOrAtomic{}, err
	}
	return ObjectOrAtomic{ObjectRef: &key}, nil
}

func atomic(src extv1.JSONSchemaProps) *Atomic {
	a := &Atomic{
		Format:  src.Format,
		Type:    src.Type,
		Pattern: src.Pattern,
		Min:     src.Minimum,
		Max:     src.Maximum,
	}
	for _, v := range src.Enum {
		a.Enum = append(a.Enum, strings.Trim(string(v.Raw), `"`))
	}
	return a
}
