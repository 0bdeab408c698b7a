package model

import (
	"github.com/samber/lo"
	networkingv1 "k8s.io/api/networking/v1"
)

// Rule forwards a host and path prefix to a service port
type Rule struct {
	Host        string
	Path        string
	ServiceName string
	ServicePort int32
}

// RuleSet is the routing part of the desired Ingress
type RuleSet struct {
	Rules []Rule
	// TLSHosts lists every rule host in rule order, duplicates included
	TLSHosts []string
	// SecretName holds the certificate for TLSHosts
	SecretName string
}

// IngressRules converts rules into Ingress rules, each with a single Prefix path
func (rs RuleSet) IngressRules() []networkingv1.IngressRule {
	return lo.Map(rs.Rules, func(r Rule, _ int) networkingv1.IngressRule {
		pathType := networkingv1.PathTypePrefix
		return networkingv1.IngressRule{
			Host: r.Host,
			IngressRuleValue: networkingv1.IngressRuleValue{
				HTTP: &networkingv1.HTTPIngressRuleValue{
					Paths: []networkingv1.HTTPIngressPath{{
						Path:     r.Path,
						PathType: &pathType,
						Backend: networkingv1.IngressBackend{
							Service: &networkingv1.IngressServiceBackend{
								Name: r.ServiceName,
								Port: networkingv1.ServiceBackendPort{Number: r.ServicePort},
							},
						},
					}},
				},
			},
		}
	})
}

// IngressTLS returns the single TLS entry covering all hosts
func (rs RuleSet) IngressTLS() []networkingv1.IngressTLS {
	return []networkingv1.IngressTLS{{
		Hosts:      rs.TLSHosts,
		SecretName: rs.SecretName,
	}}
}
