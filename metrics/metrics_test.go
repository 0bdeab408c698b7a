package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestReconcileCompleted(t *testing.T) {
	before := testutil.ToFloat64(reconcileTotal.WithLabelValues(ResultCreated))
	ReconcileCompleted(ResultCreated)
	ReconcileCompleted(ResultCreated)
	assert.Equal(t, before+2, testutil.ToFloat64(reconcileTotal.WithLabelValues(ResultCreated)))
}

func TestGRPCRequestHandled(t *testing.T) {
	before := testutil.ToFloat64(grpcRequestsTotal.WithLabelValues("/extension.Extension/Sync", "Aborted"))
	GRPCRequestHandled("/extension.Extension/Sync", "Aborted")
	assert.Equal(t, before+1, testutil.ToFloat64(grpcRequestsTotal.WithLabelValues("/extension.Extension/Sync", "Aborted")))
}
