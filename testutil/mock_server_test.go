package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postRPC(t *testing.T, url string, body string) map[string]interface{} {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return decoded
}

func TestMockRPCServer(t *testing.T) {
	mock := NewMockRPCServer()
	defer mock.Close()

	mock.SetResult("eth_blockNumber", "0x10")
	mock.SetError("eth_call", -32601, "method not found")

	t.Run("canned result", func(t *testing.T) {
		response := postRPC(t, mock.URL(), `{"jsonrpc":"2.0","id":1,"method":"eth_blockNumber","params":[]}`)
		assert.Equal(t, "0x10", response["result"])
	})

	t.Run("canned error", func(t *testing.T) {
		response := postRPC(t, mock.URL(), `{"jsonrpc":"2.0","id":2,"method":"eth_call","params":[]}`)
		require.Contains(t, response, "error")
		errObj := response["error"].(map[string]interface{})
		assert.Equal(t, float64(-32601), errObj["code"])
	})

	t.Run("unknown method answers without result member", func(t *testing.T) {
		response := postRPC(t, mock.URL(), `{"jsonrpc":"2.0","id":3,"method":"eth_other","params":[]}`)
		assert.NotContains(t, response, "result")
		assert.NotContains(t, response, "error")
	})

	t.Run("records request envelopes", func(t *testing.T) {
		requests := mock.Requests()
		require.Len(t, requests, 3)
		assert.Equal(t, "eth_blockNumber", requests[0].Method)
		assert.Equal(t, uint64(2), requests[1].ID)
	})

	t.Run("forced status code", func(t *testing.T) {
		mock.SetStatusCode(http.StatusServiceUnavailable)
		defer mock.SetStatusCode(0)

		resp, err := http.Post(mock.URL(), "application/json", bytes.NewBufferString(`{"jsonrpc":"2.0","id":4,"method":"eth_blockNumber","params":[]}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("rejects malformed requests", func(t *testing.T) {
		resp, err := http.Post(mock.URL(), "application/json", bytes.NewBufferString("{not json"))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
