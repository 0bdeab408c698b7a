package ingress

import (
	"github.com/samber/lo"

	icsv1 "github.com/suffiks/ingress-extension/apis/ingress/v1"
	"github.com/suffiks/ingress-extension/model"
)

const tlsSecretSuffix = "-ingress-cert"

// BuildRules derives the routing part of the Ingress from the spec.
// Every route becomes a prefix rule pointing to the owner's service, in order;
// hosts are not de-duplicated. Route type does not affect the result.
func BuildRules(owner model.Owner, spec *icsv1.Ingress) model.RuleSet {
	return model.RuleSet{
		Rules: lo.Map(spec.Routes, func(r icsv1.Route, _ int) model.Rule {
			return model.Rule{
				Host:        r.Host,
				Path:        r.Path,
				ServiceName: owner.Name,
				ServicePort: int32(r.Port),
			}
		}),
		TLSHosts: lo.Map(spec.Routes, func(r icsv1.Route, _ int) string {
			return r.Host
		}),
		SecretName: owner.Name + tlsSecretSuffix,
	}
}
