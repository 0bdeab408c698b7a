package ingress

import (
	"github.com/sergi/go-diff/diffmatchpatch"
	networkingv1 "k8s.io/api/networking/v1"
	"sigs.k8s.io/yaml"
)

func debugDumpIngressDiff(prev, next *networkingv1.Ingress) []byte {
	dmp := diffmatchpatch.New()
	txt1, err := yaml.Marshal(prev)
	if err != nil {
		return []byte(err.Error())
	}
	txt2, err := yaml.Marshal(next)
	if err != nil {
		return []byte(err.Error())
	}
	diffs := dmp.DiffMain(string(txt1), string(txt2), true)
	return []byte(dmp.DiffPrettyText(diffs))
}
