// Package reporter contains various methods to report status updates
package reporter

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/suffiks/ingress-extension/model"
)

// IngressStatusReporter is notified about the outcome of an owner's Ingress reconciliation
type IngressStatusReporter interface {
	// IngressReconciled the ingress was created or updated to match the owner spec
	IngressReconciled(ctx context.Context, owner model.Owner, ingress *networkingv1.Ingress, op controllerutil.OperationResult) error
	// IngressNotReconciled the owner spec could not be applied
	IngressNotReconciled(ctx context.Context, owner model.Owner, reason error) error
}

// IngressEventReporter reflects updates as events posted to the owner
type IngressEventReporter struct {
	record.EventRecorder
}

const (
	reasonIngressCreated        = "IngressCreated"
	reasonIngressUpdated        = "IngressUpdated"
	reasonIngressReconcileError = "IngressReconcileError"
)

// IngressReconciled the ingress was created or updated to match the owner spec
func (r *IngressEventReporter) IngressReconciled(_ context.Context, owner model.Owner, ingress *networkingv1.Ingress, op controllerutil.OperationResult) error {
	reason := reasonIngressUpdated
	if op == controllerutil.OperationResultCreated {
		reason = reasonIngressCreated
	}
	r.EventRecorder.Eventf(owner.ObjectReference(), corev1.EventTypeNormal, reason,
		"ingress %s/%s %s with %d rules", ingress.Namespace, ingress.Name, op, len(ingress.Spec.Rules))
	return nil
}

// IngressNotReconciled the owner spec could not be applied
func (r *IngressEventReporter) IngressNotReconciled(_ context.Context, owner model.Owner, reason error) error {
	if reason == nil {
		return fmt.Errorf("no reason provided")
	}
	r.EventRecorder.Event(owner.ObjectReference(), corev1.EventTypeWarning, reasonIngressReconcileError, reason.Error())
	return nil
}

// IngressLogReporter reflects updates as log messages
type IngressLogReporter struct {
	// V is target log level verbosity
	V int
	// Name is the name of the logger
	Name string
}

func (r *IngressLogReporter) logger(ctx context.Context, owner model.Owner) logr.Logger {
	return log.FromContext(ctx).
		WithName(r.Name).
		WithValues("owner", owner.String()).
		V(r.V)
}

// IngressReconciled the ingress was created or updated to match the owner spec
func (r *IngressLogReporter) IngressReconciled(ctx context.Context, owner model.Owner, _ *networkingv1.Ingress, op controllerutil.OperationResult) error {
	r.logger(ctx, owner).Info("ok", "operation", op)
	return nil
}

// IngressNotReconciled the owner spec could not be applied
func (r *IngressLogReporter) IngressNotReconciled(ctx context.Context, owner model.Owner, reason error) error {
	r.logger(ctx, owner).Error(reason, "not reconciled")
	return nil
}
