// Package metrics registers extension metrics with the controller-runtime registry
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const (
	resultLabel = "result"
	methodLabel = "method"
	codeLabel   = "code"
)

// Reconcile results
const (
	ResultCreated     = "created"
	ResultUpdated     = "updated"
	ResultInvalidSpec = "invalid_spec"
	ResultStoreError  = "store_error"
	ResultError       = "error"
)

var (
	reconcileTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suffiks_ingress_reconcile_total",
			Help: "Ingress reconciliations by result",
		},
		[]string{resultLabel})

	grpcRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suffiks_ingress_grpc_requests_total",
			Help: "Extension gRPC requests by method and status code",
		},
		[]string{methodLabel, codeLabel})
)

// ReconcileCompleted counts a reconciliation outcome
func ReconcileCompleted(result string) {
	reconcileTotal.WithLabelValues(result).Inc()
}

// GRPCRequestHandled counts a finished extension RPC
func GRPCRequestHandled(method, code string) {
	grpcRequestsTotal.WithLabelValues(method, code).Inc()
}

func init() {
	metrics.Registry.MustRegister(reconcileTotal, grpcRequestsTotal)
}
