package rpcclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/status-im/eth-test-rpc/config"
	"github.com/status-im/eth-test-rpc/metrics"
	rpcprovider "github.com/status-im/eth-test-rpc/provider"
)

// Addressable is implemented by parameter values that carry an account
// identity. Such parameters are dispatched as their address string.
type Addressable interface {
	Address() string
}

// Client dispatches JSON-RPC 2.0 requests to a single endpoint over HTTP.
// Request ids start at 0 and increase by 1 per dispatched request for the
// lifetime of the client; the counter is atomic, so concurrent Send calls
// never observe the same id.
type Client struct {
	endpoint rpcprovider.RPCProvider
	http     *http.Client
	nextID   atomic.Uint64
	debug    bool
	logger   *zap.Logger
}

// New creates a Client for the endpoint described by settings. The logger is
// only written to when the diagnostic flag in settings is enabled; a nil
// logger disables diagnostic output entirely.
func New(settings config.Settings, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		endpoint: settings.Endpoint,
		http:     &http.Client{},
		debug:    settings.Debug,
		logger:   logger,
	}
}

// Endpoint returns the provider this client dispatches to.
func (c *Client) Endpoint() rpcprovider.RPCProvider {
	return c.endpoint
}

// Send dispatches a single JSON-RPC request and returns the raw result
// member of the response. Account-bearing parameters are replaced by their
// address strings before dispatch. Transport failures, non-200 statuses and
// JSON-RPC error responses are returned as errors; a response carrying
// neither result nor error yields (nil, nil). Cancellation comes only from
// ctx, the client imposes no timeout of its own.
func (c *Client) Send(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	startTime := time.Now()
	var httpStatus int
	var requestErr error
	var rpcErrorCode int

	// Defer the metrics recording
	defer func() {
		metrics.RecordRPCRequest(metrics.RPCRequestMetrics{
			ProviderName: c.endpoint.Name,
			Method:       method,
			RequestErr:   requestErr,
			HTTPStatus:   httpStatus,
			RPCErrorCode: rpcErrorCode,
			Elapsed:      time.Since(startTime),
		})
	}()

	request := Request{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1) - 1,
		Method:  method,
		Params:  NormalizeParams(params),
	}

	jsonBody, err := json.Marshal(request)
	if err != nil {
		requestErr = fmt.Errorf("failed to marshal request body: %w", err)
		return nil, requestErr
	}

	if c.debug {
		c.logger.Info("rpc request",
			zap.Uint64("id", request.ID),
			zap.String("method", method),
			zap.ByteString("payload", jsonBody),
		)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		requestErr = fmt.Errorf("failed to create request: %w", err)
		return nil, requestErr
	}

	// Set headers
	req.Header.Set("Content-Type", "application/json")

	// Set authentication based on provider type
	switch c.endpoint.AuthType {
	case rpcprovider.BasicAuth:
		req.SetBasicAuth(c.endpoint.AuthLogin, c.endpoint.AuthPassword)
	case rpcprovider.TokenAuth:
		req.URL.Path = strings.TrimRight(req.URL.Path, "/") + fmt.Sprintf("/%s", c.endpoint.AuthToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		requestErr = fmt.Errorf("request failed: %w", err)
		return nil, requestErr
	}
	defer resp.Body.Close()

	httpStatus = resp.StatusCode

	if resp.StatusCode != http.StatusOK {
		requestErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		return nil, requestErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestErr = fmt.Errorf("failed to read response: %w", err)
		return nil, requestErr
	}

	if c.debug {
		c.logger.Info("rpc response",
			zap.Uint64("id", request.ID),
			zap.String("method", method),
			zap.ByteString("payload", body),
		)
	}

	var response Response
	if err := json.Unmarshal(body, &response); err != nil {
		requestErr = fmt.Errorf("failed to parse JSON response: %w", err)
		return nil, requestErr
	}

	if response.Error != nil {
		rpcErrorCode = response.Error.Code
		requestErr = response.Error
		return nil, requestErr
	}

	return response.Result, nil
}

// NormalizeParams replaces account-bearing parameters with their address
// strings, preserving positions. All other values pass through unchanged.
// The result is never nil: endpoints expect an empty params array, not null.
func NormalizeParams(params []interface{}) []interface{} {
	normalized := make([]interface{}, len(params))
	for i, param := range params {
		if account, ok := param.(Addressable); ok {
			normalized[i] = account.Address()
		} else {
			normalized[i] = param
		}
	}
	return normalized
}
