// Package docs renders user documentation from the extension CRD
package docs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/iancoleman/strcase"
)

// Generate writes markdown documentation of the CRD spec
func Generate(w io.Writer) error {
	crd, err := Load()
	if err != nil {
		return fmt.Errorf("loading CRD: %w", err)
	}

	tmpl, err := LoadTemplates()
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	if err := tmpl.ExecuteTemplate(w, "header", nil); err != nil {
		return err
	}

	if len(crd.Spec.Versions) == 0 || crd.Spec.Versions[0].Schema == nil {
		return fmt.Errorf("CRD %s has no schema", crd.Name)
	}
	root := crd.Spec.Versions[0].Schema.OpenAPIV3Schema

	for _, key := range []string{"spec"} {
		objects, err := Flatten(key, root.Properties[key])
		if err != nil {
			return fmt.Errorf("parsing %s: %w", key, err)
		}

		fmt.Fprintf(w, "## %s\n\n", strcase.ToCamel(key))
		if err := tmpl.ExecuteTemplate(w, "object", objects[key]); err != nil {
			return fmt.Errorf("exec template: %w", err)
		}
		delete(objects, key)

		if err := tmpl.ExecuteTemplate(w, "objects", objects); err != nil {
			return fmt.Errorf("exec template: %w", err)
		}
	}

	return nil
}

// Pages returns the documentation split into pages, as served to suffiks
func Pages() ([][]byte, error) {
	var buf bytes.Buffer
	if err := Generate(&buf); err != nil {
		return nil, err
	}
	return [][]byte{buf.Bytes()}, nil
}
