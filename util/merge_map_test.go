package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suffiks/ingress-extension/util"
)

func TestMergeStringMaps(t *testing.T) {
	for _, tc := range []struct {
		name   string
		dst    map[string]string
		src    map[string]string
		expect map[string]string
	}{
		{name: "nothing", dst: nil, src: nil, expect: map[string]string{}},
		{name: "nil dst", dst: nil, src: map[string]string{
			"k1": "v1",
		}, expect: map[string]string{
			"k1": "v1",
		}},
		{name: "overwrite", dst: map[string]string{
			"k1": "v1.1",
			"k2": "v2",
		}, src: map[string]string{
			"k1": "v1",
		}, expect: map[string]string{
			"k1": "v1",
			"k2": "v2",
		}},
		{name: "no overlap", dst: map[string]string{
			"k2": "v2",
		}, src: map[string]string{
			"k1": "v1",
		}, expect: map[string]string{
			"k1": "v1",
			"k2": "v2",
		}},
	} {
		assert.Equal(t, tc.expect, util.MergeStringMaps(tc.dst, tc.src), tc.name)
	}
}
