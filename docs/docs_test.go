package docs_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suffiks/ingress-extension/docs"
)

func TestFlatten(t *testing.T) {
	crd, err := docs.Load()
	require.NoError(t, err)
	assert.Equal(t, "xingresses.suffiks.com", crd.Name)

	objects, err := docs.Flatten("spec", crd.Spec.Versions[0].Schema.OpenAPIV3Schema.Properties["spec"])
	require.NoError(t, err)
	require.Contains(t, objects, "spec")
	require.Contains(t, objects, "ingress")
	require.Contains(t, objects, "routes")

	assert.True(t, objects["spec"].Properties["ingress"].Required)

	routes := objects["ingress"].Properties["routes"]
	assert.True(t, routes.List)
	assert.True(t, routes.Required)
	if assert.NotNil(t, routes.ObjectRef) {
		assert.Equal(t, "routes", *routes.ObjectRef)
	}
	assert.False(t, objects["ingress"].Properties["ingressClass"].Required)

	route := objects["routes"]
	for _, key := range []string{"host", "path", "port", "type"} {
		if assert.Contains(t, route.Properties, key) {
			assert.True(t, route.Properties[key].Required, key)
		}
	}
	assert.Equal(t, []string{"http", "grpc"}, route.Properties["type"].Atomic.Enum)
	assert.Equal(t, "^/", route.Properties["path"].Atomic.Pattern)
	assert.NotNil(t, route.Properties["host"].Atomic.ExplainFormat())
	assert.Equal(t, "1..65535", route.Properties["port"].Atomic.Range())
	assert.Empty(t, route.Properties["host"].Atomic.Range())
}

func TestGenerate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, docs.Generate(&buf))

	md := buf.String()
	assert.Contains(t, md, "# Ingress")
	assert.Contains(t, md, "## Spec")
	assert.Contains(t, md, "### routes")
	assert.Contains(t, md, "| `routes` | [][routes](#routes) | yes |")
	assert.Contains(t, md, "One of: `http`, `grpc`.")
	assert.Contains(t, md, "Range: `1..65535`.")
	assert.NotContains(t, md, "<no value>")
}

func TestPages(t *testing.T) {
	pages, err := docs.Pages()
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.Contains(t, string(pages[0]), "routes")
}
