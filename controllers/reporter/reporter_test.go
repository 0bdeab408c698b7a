package reporter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/zapr"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	mock_test "github.com/suffiks/ingress-extension/controllers/mock"
	"github.com/suffiks/ingress-extension/controllers/reporter"
	"github.com/suffiks/ingress-extension/model"
)

var owner = model.Owner{
	APIVersion: "suffiks.com/v1",
	Kind:       "Application",
	Name:       "svc1",
	Namespace:  "ns1",
	UID:        "u1",
}

func testIngress() *networkingv1.Ingress {
	return &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{Name: "svc1", Namespace: "ns1"},
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{{Host: "a.example.com"}},
		},
	}
}

func TestMultiIngressStatusReporter(t *testing.T) {
	ctx := log.IntoContext(context.Background(), zapr.NewLogger(zaptest.NewLogger(t)))
	mc := gomock.NewController(t)
	failing := mock_test.NewMockIngressStatusReporter(mc)
	ok := mock_test.NewMockIngressStatusReporter(mc)
	multi := reporter.MultiIngressStatusReporter{failing, ok}

	ing := testIngress()
	failing.EXPECT().IngressReconciled(ctx, owner, ing, controllerutil.OperationResultCreated).Return(errors.New("boom"))
	ok.EXPECT().IngressReconciled(ctx, owner, ing, controllerutil.OperationResultCreated).Return(nil)
	multi.IngressReconciled(ctx, owner, ing, controllerutil.OperationResultCreated)

	reason := errors.New("rejected")
	failing.EXPECT().IngressNotReconciled(ctx, owner, reason).Return(errors.New("boom"))
	ok.EXPECT().IngressNotReconciled(ctx, owner, reason).Return(nil)
	multi.IngressNotReconciled(ctx, owner, reason)
}

func TestIngressEventReporter(t *testing.T) {
	ctx := context.Background()
	rec := record.NewFakeRecorder(10)
	r := &reporter.IngressEventReporter{EventRecorder: rec}

	assert.NoError(t, r.IngressReconciled(ctx, owner, testIngress(), controllerutil.OperationResultCreated))
	assert.Equal(t, "Normal IngressCreated ingress ns1/svc1 created with 1 rules", <-rec.Events)

	assert.NoError(t, r.IngressReconciled(ctx, owner, testIngress(), controllerutil.OperationResultUpdated))
	assert.Equal(t, "Normal IngressUpdated ingress ns1/svc1 updated with 1 rules", <-rec.Events)

	assert.NoError(t, r.IngressNotReconciled(ctx, owner, errors.New("update ingress ns1/svc1: conflict")))
	assert.Equal(t, "Warning IngressReconcileError update ingress ns1/svc1: conflict", <-rec.Events)

	assert.Error(t, r.IngressNotReconciled(ctx, owner, nil))
}

func TestIngressLogReporter(t *testing.T) {
	ctx := log.IntoContext(context.Background(), zapr.NewLogger(zaptest.NewLogger(t)))
	r := &reporter.IngressLogReporter{V: 1, Name: "ingress"}
	assert.NoError(t, r.IngressReconciled(ctx, owner, testIngress(), controllerutil.OperationResultUpdated))
	assert.NoError(t, r.IngressNotReconciled(ctx, owner, errors.New("boom")))
}
