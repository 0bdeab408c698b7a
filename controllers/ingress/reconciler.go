// Package ingress turns extension spec payloads into Ingress objects owned by the extension owner
package ingress

import (
	"context"
	"errors"

	networkingv1 "k8s.io/api/networking/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	icsv1 "github.com/suffiks/ingress-extension/apis/ingress/v1"
	"github.com/suffiks/ingress-extension/controllers/reporter"
	"github.com/suffiks/ingress-extension/metrics"
	"github.com/suffiks/ingress-extension/model"
	"github.com/suffiks/ingress-extension/util"
)

// Reconciler brings the Ingress of an owner in line with the owner's spec
type Reconciler interface {
	// Reconcile decodes the spec payload and creates or updates the Ingress.
	// It returns *DecodeError if the payload is invalid, and *StoreError if the API server rejected a call.
	Reconcile(ctx context.Context, owner model.Owner, spec []byte) (controllerutil.OperationResult, error)
}

var _ = Reconciler(new(KubeReconciler))

// KubeReconciler keeps Ingress objects in the Kubernetes API up to date.
// It performs a single read and at most one write per call, and does not retry.
// Concurrent writers are detected by the API server through the resourceVersion
// carried by the fetched object.
type KubeReconciler struct {
	client.Client

	clusterIssuer string
	debugDumpDiff bool

	reporter.MultiIngressStatusReporter
}

// Option customizes the reconciler
type Option func(r *KubeReconciler)

// WithClusterIssuer sets the cert-manager ClusterIssuer requested by the Ingress
func WithClusterIssuer(name string) Option {
	return func(r *KubeReconciler) {
		r.clusterIssuer = name
	}
}

// WithDebugDumpDiff logs the difference between the stored and the updated Ingress
func WithDebugDumpDiff() Option {
	return func(r *KubeReconciler) {
		r.debugDumpDiff = true
	}
}

// WithIngressStatusReporter adds ingress status reporting option, multiple may be added
func WithIngressStatusReporter(reporters ...reporter.IngressStatusReporter) Option {
	return func(r *KubeReconciler) {
		r.MultiIngressStatusReporter = append(r.MultiIngressStatusReporter, reporters...)
	}
}

// NewReconciler creates a reconciler on top of the provided client
func NewReconciler(c client.Client, opts ...Option) *KubeReconciler {
	r := &KubeReconciler{
		Client:        c,
		clusterIssuer: DefaultClusterIssuer,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Reconcile implements Reconciler
func (r *KubeReconciler) Reconcile(ctx context.Context, owner model.Owner, payload []byte) (controllerutil.OperationResult, error) {
	ctx = log.IntoContext(ctx, log.FromContext(ctx).WithValues("ingress", owner.NamespacedName().String()))

	op, err := r.reconcile(ctx, owner, payload)
	metrics.ReconcileCompleted(resultLabel(op, err))
	if err != nil {
		r.IngressNotReconciled(ctx, owner, err)
		return op, err
	}
	return op, nil
}

func (r *KubeReconciler) reconcile(ctx context.Context, owner model.Owner, payload []byte) (controllerutil.OperationResult, error) {
	spec, err := Decode(payload)
	if err != nil {
		return controllerutil.OperationResultNone, err
	}
	rules := BuildRules(owner, spec)

	key := owner.NamespacedName()
	ingress := new(networkingv1.Ingress)
	err = r.Get(ctx, key, ingress)
	switch {
	case apierrors.IsNotFound(err):
		return r.create(ctx, owner, spec, rules)
	case err != nil:
		return controllerutil.OperationResultNone, &StoreError{Op: "get", Key: key, Err: err}
	default:
		return r.update(ctx, owner, ingress, spec, rules)
	}
}

func (r *KubeReconciler) create(ctx context.Context, owner model.Owner, spec *icsv1.Ingress, rules model.RuleSet) (controllerutil.OperationResult, error) {
	ingress := &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:      owner.Name,
			Namespace: owner.Namespace,
		},
	}
	r.apply(ingress, owner, spec, rules)

	if err := r.Create(ctx, ingress); err != nil {
		return controllerutil.OperationResultNone, &StoreError{Op: "create", Key: owner.NamespacedName(), Err: err}
	}
	log.FromContext(ctx).V(1).Info("created", "rules", len(rules.Rules))
	r.IngressReconciled(ctx, owner, ingress, controllerutil.OperationResultCreated)
	return controllerutil.OperationResultCreated, nil
}

func (r *KubeReconciler) update(ctx context.Context, owner model.Owner, ingress *networkingv1.Ingress, spec *icsv1.Ingress, rules model.RuleSet) (controllerutil.OperationResult, error) {
	var prev *networkingv1.Ingress
	if r.debugDumpDiff {
		prev = ingress.DeepCopy()
	}
	r.apply(ingress, owner, spec, rules)

	if err := r.Update(ctx, ingress); err != nil {
		return controllerutil.OperationResultNone, &StoreError{Op: "update", Key: owner.NamespacedName(), Err: err}
	}

	logger := log.FromContext(ctx)
	if prev != nil {
		logger.Info("ingress diff", "diff", string(debugDumpIngressDiff(prev, ingress)))
	}
	logger.V(1).Info("updated", "rules", len(rules.Rules))
	r.IngressReconciled(ctx, owner, ingress, controllerutil.OperationResultUpdated)
	return controllerutil.OperationResultUpdated, nil
}

func resultLabel(op controllerutil.OperationResult, err error) string {
	var decodeErr *DecodeError
	var storeErr *StoreError
	switch {
	case errors.As(err, &decodeErr):
		return metrics.ResultInvalidSpec
	case errors.As(err, &storeErr):
		return metrics.ResultStoreError
	case err != nil:
		return metrics.ResultError
	case op == controllerutil.OperationResultCreated:
		return metrics.ResultCreated
	default:
		return metrics.ResultUpdated
	}
}

// apply sets the desired state onto the ingress.
// Ownership, rules, TLS and class are replaced; labels and annotations are merged.
func (r *KubeReconciler) apply(ingress *networkingv1.Ingress, owner model.Owner, spec *icsv1.Ingress, rules model.RuleSet) {
	ingress.OwnerReferences = []metav1.OwnerReference{owner.OwnerReference()}
	ingress.Labels = util.MergeStringMaps(ingress.Labels, managedLabels(owner))
	ingress.Annotations = util.MergeStringMaps(ingress.Annotations, managedAnnotations(r.clusterIssuer))

	ingress.Spec.Rules = rules.IngressRules()
	ingress.Spec.TLS = rules.IngressTLS()
	ingress.Spec.IngressClassName = spec.IngressClass
}
