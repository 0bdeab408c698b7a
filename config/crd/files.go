// Package crd embeds CRD spec
package crd

import _ "embed"

// XIngressCRD is the ingress extension CRD Yaml
//
//go:embed bases/suffiks.com_xingresses.yaml
var XIngressCRD []byte
