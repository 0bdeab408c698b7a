package reporter

import (
	"context"

	"github.com/hashicorp/go-multierror"
	networkingv1 "k8s.io/api/networking/v1"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/suffiks/ingress-extension/model"
)

// MultiIngressStatusReporter dispatches updates over multiple reporters
type MultiIngressStatusReporter []IngressStatusReporter

func logErrorIfAny(ctx context.Context, err error, kvs ...any) {
	if err == nil {
		return
	}
	log.FromContext(ctx).Error(err, "reporting ingress status", kvs...)
}

// IngressReconciled the ingress was created or updated to match the owner spec
func (r MultiIngressStatusReporter) IngressReconciled(ctx context.Context, owner model.Owner, ingress *networkingv1.Ingress, op controllerutil.OperationResult) {
	var errs *multierror.Error
	for _, u := range r {
		if err := u.IngressReconciled(ctx, owner, ingress, op); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	logErrorIfAny(ctx, errs.ErrorOrNil(), "owner", owner.String())
}

// IngressNotReconciled the owner spec could not be applied
func (r MultiIngressStatusReporter) IngressNotReconciled(ctx context.Context, owner model.Owner, reason error) {
	var errs *multierror.Error
	for _, u := range r {
		if err := u.IngressNotReconciled(ctx, owner, reason); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	logErrorIfAny(ctx, errs.ErrorOrNil(), "owner", owner.String())
}
