package metrics

import (
	"context"
	"errors"
	"net"
	"strings"
)

// ErrorCategory represents a categorized error type for RPC requests
type ErrorCategory string

const (
	// NoError indicates a successful request
	NoError ErrorCategory = "none"

	// NetworkError indicates network-related issues (timeouts, connection resets, etc.)
	NetworkError ErrorCategory = "network_error"

	// HTTPError indicates HTTP-level errors (non-200 status codes)
	HTTPError ErrorCategory = "http_error"

	// JSONRPCError indicates JSON-RPC protocol errors reported by the endpoint
	JSONRPCError ErrorCategory = "jsonrpc_error"

	// UnknownError indicates unclassified errors
	UnknownError ErrorCategory = "unknown_error"
)

// CategorizeError takes an error and returns the appropriate ErrorCategory
func CategorizeError(err error, httpStatus, rpcErrorCode int) ErrorCategory {
	if err == nil {
		return NoError
	}

	// Check for network-related errors
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return NetworkError
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return NetworkError
	}
	errStr := err.Error()
	if strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "i/o timeout") {
		return NetworkError
	}

	// Check for HTTP errors
	if httpStatus != 0 && httpStatus != 200 {
		return HTTPError
	}

	// Check for JSON-RPC errors reported in the response body
	if rpcErrorCode != 0 {
		return JSONRPCError
	}

	// Default to unknown error
	return UnknownError
}
