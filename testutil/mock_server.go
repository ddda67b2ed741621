package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/gorilla/mux"

	"github.com/status-im/eth-test-rpc/rpcclient"
)

// MockRPCServer is an httptest-backed JSON-RPC endpoint with canned
// per-method responses. It records every request envelope it receives so
// tests can assert on ids and parameter lists.
type MockRPCServer struct {
	server *httptest.Server

	mu         sync.RWMutex
	results    map[string]interface{}
	rpcErrors  map[string]*rpcclient.RPCError
	statusCode int
	requests   []rpcclient.Request
}

// NewMockRPCServer starts a mock JSON-RPC server. Callers must Close it.
func NewMockRPCServer() *MockRPCServer {
	m := &MockRPCServer{
		results:   make(map[string]interface{}),
		rpcErrors: make(map[string]*rpcclient.RPCError),
	}

	router := mux.NewRouter()
	router.HandleFunc("/", m.handler).Methods(http.MethodPost)
	m.server = httptest.NewServer(router)

	return m
}

// URL returns the server URL.
func (m *MockRPCServer) URL() string {
	return m.server.URL
}

// Close shuts the server down.
func (m *MockRPCServer) Close() {
	m.server.Close()
}

// SetResult sets the canned result for a method. Methods without a canned
// result are answered with a response carrying no result member at all.
func (m *MockRPCServer) SetResult(method string, result interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[method] = result
}

// SetError makes the server answer a method with a JSON-RPC error member.
func (m *MockRPCServer) SetError(method string, code int, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rpcErrors[method] = &rpcclient.RPCError{Code: code, Message: message}
}

// SetStatusCode forces a bare HTTP status for every request; 0 restores
// normal behavior.
func (m *MockRPCServer) SetStatusCode(code int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statusCode = code
}

// Requests returns a copy of all request envelopes received so far.
func (m *MockRPCServer) Requests() []rpcclient.Request {
	m.mu.RLock()
	defer m.mu.RUnlock()
	requests := make([]rpcclient.Request, len(m.requests))
	copy(requests, m.requests)
	return requests
}

func (m *MockRPCServer) handler(w http.ResponseWriter, r *http.Request) {
	var request rpcclient.Request
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid JSON-RPC request", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	m.requests = append(m.requests, request)
	statusCode := m.statusCode
	rpcErr := m.rpcErrors[request.Method]
	result, hasResult := m.results[request.Method]
	m.mu.Unlock()

	if statusCode != 0 {
		w.WriteHeader(statusCode)
		return
	}

	response := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      request.ID,
	}
	switch {
	case rpcErr != nil:
		response["error"] = rpcErr
	case hasResult:
		response["result"] = result
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
