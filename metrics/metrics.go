package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// approximate cardinality: 5 (provider_name) × 30 (method) × 5 (error_type) × 20 (status_code)
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rpc_requests_total",
		Help: "Total number of JSON-RPC requests dispatched",
	}, []string{
		"provider_name", // Provider name for identification
		"method",        // JSON-RPC method name
		"error_type",    // Categorized error type (none, network_error, http_error, jsonrpc_error, unknown_error)
		"status_code",   // Combined status code: HTTP status or JSON-RPC error code
	})

	// cardinality: 1
	rpcRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "rpc_request_duration_seconds",
		Help: "Duration of JSON-RPC requests in seconds",
	})
)

// RPCRequestMetrics contains all the parameters needed for recording RPC request metrics
type RPCRequestMetrics struct {
	ProviderName string
	Method       string
	RequestErr   error
	HTTPStatus   int
	RPCErrorCode int
	Elapsed      time.Duration
}

// RecordRPCRequest records a single RPC request with its metadata and error information
func RecordRPCRequest(metrics RPCRequestMetrics) {
	errCategory := CategorizeError(metrics.RequestErr, metrics.HTTPStatus, metrics.RPCErrorCode)

	statusCode := "0"
	if errCategory == HTTPError {
		statusCode = fmt.Sprintf("http_%d", metrics.HTTPStatus)
	} else if errCategory == JSONRPCError && metrics.RPCErrorCode != 0 {
		statusCode = fmt.Sprintf("rpc_%d", metrics.RPCErrorCode)
	}

	rpcRequestsTotal.WithLabelValues(
		metrics.ProviderName,
		metrics.Method,
		string(errCategory),
		statusCode,
	).Inc()

	rpcRequestDuration.Observe(metrics.Elapsed.Seconds())
}
