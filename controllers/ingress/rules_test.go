package ingress_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	icsv1 "github.com/suffiks/ingress-extension/apis/ingress/v1"
	"github.com/suffiks/ingress-extension/controllers/ingress"
	"github.com/suffiks/ingress-extension/model"
)

func TestBuildRules(t *testing.T) {
	owner := model.Owner{Name: "svc1", Namespace: "ns1", UID: "u1"}

	for _, tc := range []struct {
		name   string
		routes []icsv1.Route
		expect model.RuleSet
	}{
		{
			"single route",
			[]icsv1.Route{{Host: "a.example.com", Path: "/", Port: 8080, Type: icsv1.RouteTypeHTTP}},
			model.RuleSet{
				Rules:      []model.Rule{{Host: "a.example.com", Path: "/", ServiceName: "svc1", ServicePort: 8080}},
				TLSHosts:   []string{"a.example.com"},
				SecretName: "svc1-ingress-cert",
			},
		},
		{
			"order and duplicates are kept",
			[]icsv1.Route{
				{Host: "b.example.com", Path: "/b", Port: 80, Type: icsv1.RouteTypeHTTP},
				{Host: "a.example.com", Path: "/a", Port: 81, Type: icsv1.RouteTypeHTTP},
				{Host: "b.example.com", Path: "/c", Port: 82, Type: icsv1.RouteTypeHTTP},
			},
			model.RuleSet{
				Rules: []model.Rule{
					{Host: "b.example.com", Path: "/b", ServiceName: "svc1", ServicePort: 80},
					{Host: "a.example.com", Path: "/a", ServiceName: "svc1", ServicePort: 81},
					{Host: "b.example.com", Path: "/c", ServiceName: "svc1", ServicePort: 82},
				},
				TLSHosts:   []string{"b.example.com", "a.example.com", "b.example.com"},
				SecretName: "svc1-ingress-cert",
			},
		},
		{
			"no routes",
			[]icsv1.Route{},
			model.RuleSet{
				Rules:      []model.Rule{},
				TLSHosts:   []string{},
				SecretName: "svc1-ingress-cert",
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, ingress.BuildRules(owner, &icsv1.Ingress{Routes: tc.routes}))
		})
	}
}

func TestBuildRulesIgnoresRouteType(t *testing.T) {
	owner := model.Owner{Name: "svc1", Namespace: "ns1"}
	route := icsv1.Route{Host: "a.example.com", Path: "/", Port: 8080}

	route.Type = icsv1.RouteTypeHTTP
	http := ingress.BuildRules(owner, &icsv1.Ingress{Routes: []icsv1.Route{route}})
	route.Type = icsv1.RouteTypeGRPC
	grpc := ingress.BuildRules(owner, &icsv1.Ingress{Routes: []icsv1.Route{route}})

	assert.Equal(t, http, grpc)
}
