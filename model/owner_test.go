package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/suffiks/ingress-extension/model"
)

func TestOwner(t *testing.T) {
	owner := model.Owner{
		APIVersion: "suffiks.com/v1",
		Kind:       "Application",
		Name:       "svc1",
		Namespace:  "ns1",
		UID:        "u1",
	}

	assert.Equal(t, types.NamespacedName{Namespace: "ns1", Name: "svc1"}, owner.NamespacedName())
	assert.Equal(t, metav1.OwnerReference{
		APIVersion: "suffiks.com/v1",
		Kind:       "Application",
		Name:       "svc1",
		UID:        "u1",
	}, owner.OwnerReference())

	ref := owner.ObjectReference()
	assert.Equal(t, "ns1", ref.Namespace)
	assert.Equal(t, types.UID("u1"), ref.UID)
	assert.Equal(t, "Application/ns1/svc1", owner.String())
}

func TestRuleSet(t *testing.T) {
	rs := model.RuleSet{
		Rules: []model.Rule{
			{Host: "a.example.com", Path: "/", ServiceName: "svc1", ServicePort: 8080},
			{Host: "b.example.com", Path: "/api", ServiceName: "svc1", ServicePort: 9090},
		},
		TLSHosts:   []string{"a.example.com", "b.example.com"},
		SecretName: "svc1-ingress-cert",
	}

	rules := rs.IngressRules()
	if assert.Len(t, rules, 2) {
		assert.Equal(t, "b.example.com", rules[1].Host)
		paths := rules[1].HTTP.Paths
		if assert.Len(t, paths, 1) {
			assert.Equal(t, "/api", paths[0].Path)
			assert.Equal(t, "Prefix", string(*paths[0].PathType))
			assert.Equal(t, "svc1", paths[0].Backend.Service.Name)
			assert.Equal(t, int32(9090), paths[0].Backend.Service.Port.Number)
		}
	}

	tls := rs.IngressTLS()
	if assert.Len(t, tls, 1) {
		assert.Equal(t, []string{"a.example.com", "b.example.com"}, tls[0].Hosts)
		assert.Equal(t, "svc1-ingress-cert", tls[0].SecretName)
	}
}
