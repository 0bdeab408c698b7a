package ingress

import (
	certmanagerv1 "github.com/cert-manager/cert-manager/pkg/apis/certmanager/v1"

	"github.com/suffiks/ingress-extension/model"
)

const (
	// LabelName is the recommended application name label
	LabelName = "app.kubernetes.io/name"
	// LabelInstance is the recommended application instance label
	LabelInstance = "app.kubernetes.io/instance"
	// LabelManagedBy marks Ingresses written by this extension
	LabelManagedBy = "app.kubernetes.io/managed-by"
	// ManagedBy is the value of LabelManagedBy
	ManagedBy = "suffiks"

	// DefaultClusterIssuer is the cert-manager ClusterIssuer requested for the Ingress certificate
	DefaultClusterIssuer = "letsencrypt"
)

func managedLabels(owner model.Owner) map[string]string {
	return map[string]string{
		LabelName:      owner.Name,
		LabelInstance:  owner.Name,
		LabelManagedBy: ManagedBy,
	}
}

func managedAnnotations(clusterIssuer string) map[string]string {
	return map[string]string{
		certmanagerv1.IngressClusterIssuerNameAnnotationKey: clusterIssuer,
	}
}
