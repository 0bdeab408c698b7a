package ingress_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-logr/zapr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	networkingv1 "k8s.io/api/networking/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/utils/pointer"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/controller-runtime/pkg/client/interceptor"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/suffiks/ingress-extension/controllers/ingress"
	"github.com/suffiks/ingress-extension/model"
)

const clusterIssuerAnnotation = "cert-manager.io/cluster-issuer"

var testOwner = model.Owner{
	APIVersion: "suffiks.com/v1",
	Kind:       "Application",
	Name:       "svc1",
	Namespace:  "ns1",
	UID:        "u1",
}

const singleRouteSpec = `{"ingress":{"routes":[{"host":"a.example.com","path":"/","port":8080,"type":"http"}]}}`

// calls counts store calls that went through the fake client
type calls struct {
	get, create, update int
}

func (c *calls) funcs(override interceptor.Funcs) interceptor.Funcs {
	return interceptor.Funcs{
		Get: func(ctx context.Context, cl client.WithWatch, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
			c.get++
			if override.Get != nil {
				return override.Get(ctx, cl, key, obj, opts...)
			}
			return cl.Get(ctx, key, obj, opts...)
		},
		Create: func(ctx context.Context, cl client.WithWatch, obj client.Object, opts ...client.CreateOption) error {
			c.create++
			if override.Create != nil {
				return override.Create(ctx, cl, obj, opts...)
			}
			return cl.Create(ctx, obj, opts...)
		},
		Update: func(ctx context.Context, cl client.WithWatch, obj client.Object, opts ...client.UpdateOption) error {
			c.update++
			if override.Update != nil {
				return override.Update(ctx, cl, obj, opts...)
			}
			return cl.Update(ctx, obj, opts...)
		},
	}
}

type recordingReporter struct {
	reconciled    []controllerutil.OperationResult
	notReconciled []error
}

func (r *recordingReporter) IngressReconciled(_ context.Context, _ model.Owner, _ *networkingv1.Ingress, op controllerutil.OperationResult) error {
	r.reconciled = append(r.reconciled, op)
	return nil
}

func (r *recordingReporter) IngressNotReconciled(_ context.Context, _ model.Owner, reason error) error {
	r.notReconciled = append(r.notReconciled, reason)
	return nil
}

func testContext(t *testing.T) context.Context {
	return log.IntoContext(context.Background(), zapr.NewLogger(zaptest.NewLogger(t)))
}

func newScheme(t *testing.T) *runtime.Scheme {
	scheme := runtime.NewScheme()
	require.NoError(t, clientgoscheme.AddToScheme(scheme))
	return scheme
}

type testEnv struct {
	client.Client
	*calls
	*recordingReporter
	reconciler *ingress.KubeReconciler
}

func newTestEnv(t *testing.T, override interceptor.Funcs, objs ...client.Object) *testEnv {
	env := &testEnv{calls: new(calls), recordingReporter: new(recordingReporter)}
	env.Client = fake.NewClientBuilder().
		WithScheme(newScheme(t)).
		WithObjects(objs...).
		WithInterceptorFuncs(env.calls.funcs(override)).
		Build()
	env.reconciler = ingress.NewReconciler(env.Client,
		ingress.WithClusterIssuer("letsencrypt-prod"),
		ingress.WithDebugDumpDiff(),
		ingress.WithIngressStatusReporter(env.recordingReporter),
	)
	return env
}

func (env *testEnv) stored(t *testing.T) *networkingv1.Ingress {
	t.Helper()
	ing := new(networkingv1.Ingress)
	require.NoError(t, env.Client.Get(context.Background(), testOwner.NamespacedName(), ing))
	return ing
}

func TestReconcileCreate(t *testing.T) {
	ctx := testContext(t)
	env := newTestEnv(t, interceptor.Funcs{})

	op, err := env.reconciler.Reconcile(ctx, testOwner, []byte(singleRouteSpec))
	require.NoError(t, err)
	assert.Equal(t, controllerutil.OperationResultCreated, op)
	assert.Equal(t, calls{get: 1, create: 1}, *env.calls)
	assert.Equal(t, []controllerutil.OperationResult{controllerutil.OperationResultCreated}, env.reconciled)

	ing := env.stored(t)
	assert.Equal(t, "svc1", ing.Name)
	assert.Equal(t, "ns1", ing.Namespace)
	assert.Equal(t, []metav1.OwnerReference{{
		APIVersion: "suffiks.com/v1",
		Kind:       "Application",
		Name:       "svc1",
		UID:        "u1",
	}}, ing.OwnerReferences)
	assert.Equal(t, map[string]string{
		ingress.LabelName:      "svc1",
		ingress.LabelInstance:  "svc1",
		ingress.LabelManagedBy: ingress.ManagedBy,
	}, ing.Labels)
	assert.Equal(t, map[string]string{clusterIssuerAnnotation: "letsencrypt-prod"}, ing.Annotations)

	pathType := networkingv1.PathTypePrefix
	assert.Empty(t, cmp.Diff(networkingv1.IngressSpec{
		Rules: []networkingv1.IngressRule{{
			Host: "a.example.com",
			IngressRuleValue: networkingv1.IngressRuleValue{
				HTTP: &networkingv1.HTTPIngressRuleValue{
					Paths: []networkingv1.HTTPIngressPath{{
						Path:     "/",
						PathType: &pathType,
						Backend: networkingv1.IngressBackend{
							Service: &networkingv1.IngressServiceBackend{
								Name: "svc1",
								Port: networkingv1.ServiceBackendPort{Number: 8080},
							},
						},
					}},
				},
			},
		}},
		TLS: []networkingv1.IngressTLS{{
			Hosts:      []string{"a.example.com"},
			SecretName: "svc1-ingress-cert",
		}},
	}, ing.Spec))
}

func TestReconcileDefaultClusterIssuer(t *testing.T) {
	c := fake.NewClientBuilder().WithScheme(newScheme(t)).Build()
	_, err := ingress.NewReconciler(c).Reconcile(testContext(t), testOwner, []byte(singleRouteSpec))
	require.NoError(t, err)

	ing := new(networkingv1.Ingress)
	require.NoError(t, c.Get(context.Background(), testOwner.NamespacedName(), ing))
	assert.Equal(t, ingress.DefaultClusterIssuer, ing.Annotations[clusterIssuerAnnotation])
}

func existingIngress() *networkingv1.Ingress {
	pathType := networkingv1.PathTypeExact
	return &networkingv1.Ingress{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "svc1",
			Namespace: "ns1",
			Labels: map[string]string{
				"team":                 "payments",
				ingress.LabelManagedBy: "someone-else",
			},
			Annotations: map[string]string{
				"nginx.ingress.kubernetes.io/rewrite-target": "/",
				clusterIssuerAnnotation:                      "staging",
			},
			OwnerReferences: []metav1.OwnerReference{
				{APIVersion: "v1", Kind: "ConfigMap", Name: "stale", UID: "u0"},
				{APIVersion: "suffiks.com/v1", Kind: "Application", Name: "svc1", UID: "u-old"},
			},
		},
		Spec: networkingv1.IngressSpec{
			IngressClassName: pointer.String("traefik"),
			Rules: []networkingv1.IngressRule{
				{Host: "old.example.com", IngressRuleValue: networkingv1.IngressRuleValue{
					HTTP: &networkingv1.HTTPIngressRuleValue{Paths: []networkingv1.HTTPIngressPath{{
						Path:     "/old",
						PathType: &pathType,
						Backend: networkingv1.IngressBackend{Service: &networkingv1.IngressServiceBackend{
							Name: "legacy", Port: networkingv1.ServiceBackendPort{Name: "http"},
						}},
					}}},
				}},
				{Host: "older.example.com"},
			},
			TLS: []networkingv1.IngressTLS{
				{Hosts: []string{"old.example.com"}, SecretName: "old-cert"},
				{Hosts: []string{"older.example.com"}, SecretName: "older-cert"},
			},
		},
	}
}

func TestReconcileUpdate(t *testing.T) {
	ctx := testContext(t)
	env := newTestEnv(t, interceptor.Funcs{}, existingIngress())

	op, err := env.reconciler.Reconcile(ctx, testOwner, []byte(singleRouteSpec))
	require.NoError(t, err)
	assert.Equal(t, controllerutil.OperationResultUpdated, op)
	assert.Equal(t, calls{get: 1, update: 1}, *env.calls)

	ing := env.stored(t)
	t.Run("labels and annotations are merged", func(t *testing.T) {
		assert.Equal(t, map[string]string{
			"team":                 "payments",
			ingress.LabelName:      "svc1",
			ingress.LabelInstance:  "svc1",
			ingress.LabelManagedBy: ingress.ManagedBy,
		}, ing.Labels)
		assert.Equal(t, map[string]string{
			"nginx.ingress.kubernetes.io/rewrite-target": "/",
			clusterIssuerAnnotation:                      "letsencrypt-prod",
		}, ing.Annotations)
	})
	t.Run("structure is replaced", func(t *testing.T) {
		assert.Equal(t, []metav1.OwnerReference{testOwner.OwnerReference()}, ing.OwnerReferences)
		if assert.Len(t, ing.Spec.Rules, 1) {
			assert.Equal(t, "a.example.com", ing.Spec.Rules[0].Host)
			assert.Equal(t, "svc1", ing.Spec.Rules[0].HTTP.Paths[0].Backend.Service.Name)
		}
		assert.Equal(t, []networkingv1.IngressTLS{{
			Hosts:      []string{"a.example.com"},
			SecretName: "svc1-ingress-cert",
		}}, ing.Spec.TLS)
		assert.Nil(t, ing.Spec.IngressClassName)
	})
}

func TestReconcileIdempotent(t *testing.T) {
	ctx := testContext(t)
	env := newTestEnv(t, interceptor.Funcs{}, existingIngress())
	spec := []byte(`{"ingress":{"ingressClass":"nginx","routes":[
		{"host":"a.example.com","path":"/","port":8080,"type":"http"},
		{"host":"a.example.com","path":"/api","port":8081,"type":"grpc"}
	]}}`)

	_, err := env.reconciler.Reconcile(ctx, testOwner, spec)
	require.NoError(t, err)
	first := env.stored(t)

	_, err = env.reconciler.Reconcile(ctx, testOwner, spec)
	require.NoError(t, err)
	second := env.stored(t)

	assert.Empty(t, cmp.Diff(first.Spec, second.Spec))
	assert.Equal(t, first.Labels, second.Labels)
	assert.Equal(t, first.Annotations, second.Annotations)
	assert.Equal(t, first.OwnerReferences, second.OwnerReferences)
	assert.Equal(t, pointer.String("nginx"), second.Spec.IngressClassName)
	assert.Equal(t, []string{"a.example.com", "a.example.com"}, second.Spec.TLS[0].Hosts)
}

func TestReconcileEmptyRoutes(t *testing.T) {
	ctx := testContext(t)
	env := newTestEnv(t, interceptor.Funcs{})

	_, err := env.reconciler.Reconcile(ctx, testOwner, []byte(`{"ingress":{"routes":[]}}`))
	require.NoError(t, err)

	ing := env.stored(t)
	assert.Empty(t, ing.Spec.Rules)
	if assert.Len(t, ing.Spec.TLS, 1) {
		assert.Empty(t, ing.Spec.TLS[0].Hosts)
		assert.Equal(t, "svc1-ingress-cert", ing.Spec.TLS[0].SecretName)
	}
	assert.Len(t, ing.OwnerReferences, 1)
}

func TestReconcileDecodeError(t *testing.T) {
	ctx := testContext(t)
	env := newTestEnv(t, interceptor.Funcs{})

	op, err := env.reconciler.Reconcile(ctx, testOwner, []byte(`{"ingress":{"routes":[{"host":"a.example.com"`))
	var decodeErr *ingress.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, controllerutil.OperationResultNone, op)
	assert.Equal(t, calls{}, *env.calls)
	assert.Len(t, env.notReconciled, 1)
	assert.Empty(t, env.reconciled)
}

func TestReconcileStoreErrors(t *testing.T) {
	errBoom := errors.New("boom")
	gr := schema.GroupResource{Group: "networking.k8s.io", Resource: "ingresses"}

	for _, tc := range []struct {
		name     string
		existing []client.Object
		override interceptor.Funcs
		op       string
		calls    calls
		check    func(t *testing.T, err error)
	}{
		{
			name: "get fails",
			override: interceptor.Funcs{
				Get: func(context.Context, client.WithWatch, client.ObjectKey, client.Object, ...client.GetOption) error {
					return apierrors.NewServiceUnavailable("etcd is down")
				},
			},
			op:    "get",
			calls: calls{get: 1},
			check: func(t *testing.T, err error) { assert.True(t, apierrors.IsServiceUnavailable(err)) },
		},
		{
			name: "create fails",
			override: interceptor.Funcs{
				Create: func(context.Context, client.WithWatch, client.Object, ...client.CreateOption) error {
					return apierrors.NewForbidden(gr, "svc1", errBoom)
				},
			},
			op:    "create",
			calls: calls{get: 1, create: 1},
			check: func(t *testing.T, err error) { assert.True(t, apierrors.IsForbidden(err)) },
		},
		{
			name:     "update fails",
			existing: []client.Object{existingIngress()},
			override: interceptor.Funcs{
				Update: func(context.Context, client.WithWatch, client.Object, ...client.UpdateOption) error {
					return errBoom
				},
			},
			op:    "update",
			calls: calls{get: 1, update: 1},
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, errBoom) },
		},
		{
			name:     "concurrent modification",
			existing: []client.Object{existingIngress()},
			override: interceptor.Funcs{
				Get: func(ctx context.Context, cl client.WithWatch, key client.ObjectKey, obj client.Object, opts ...client.GetOption) error {
					if err := cl.Get(ctx, key, obj, opts...); err != nil {
						return err
					}
					concurrent := obj.DeepCopyObject().(*networkingv1.Ingress)
					concurrent.Labels["team"] = "billing"
					return cl.Update(ctx, concurrent)
				},
			},
			op:    "update",
			calls: calls{get: 1, update: 1},
			check: func(t *testing.T, err error) { assert.True(t, apierrors.IsConflict(err)) },
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t, tc.override, tc.existing...)
			op, err := env.reconciler.Reconcile(testContext(t), testOwner, []byte(singleRouteSpec))
			assert.Equal(t, controllerutil.OperationResultNone, op)

			var storeErr *ingress.StoreError
			require.True(t, errors.As(err, &storeErr), "%v", err)
			assert.Equal(t, tc.op, storeErr.Op)
			assert.Equal(t, testOwner.NamespacedName(), storeErr.Key)
			tc.check(t, err)

			assert.Equal(t, tc.calls, *env.calls)
			assert.Len(t, env.notReconciled, 1)
			assert.Empty(t, env.reconciled)
		})
	}
}
