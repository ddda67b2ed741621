package ethtest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/status-im/eth-test-rpc/rpcclient"
)

// Signer exposes the account identity and signing capability used to deploy
// test contracts. Implementations come from the surrounding test suite.
// Signer satisfies rpcclient.Addressable, so a Signer passed as an RPC
// parameter is dispatched as its address string.
type Signer interface {
	Address() string
	SignTx(ctx context.Context, tx []byte) ([]byte, error)
}

// DeployedContract is the handle returned by the contract factory.
type DeployedContract interface {
	Address() string
}

// ContractFactory compiles and deploys contracts. The implementation is an
// external collaborator of the test kit.
type ContractFactory interface {
	Deploy(ctx context.Context, signer Signer, name string) (DeployedContract, error)
}

// TestContractName is the contract deployed by DeployTestContract.
const TestContractName = "TestContract"

// Kit bundles the RPC client and contract factory used by a contract test
// suite.
type Kit struct {
	Client  *rpcclient.Client
	Factory ContractFactory
}

// NewKit creates a Kit around the given client and factory. The factory may
// be nil for suites that never deploy contracts.
func NewKit(client *rpcclient.Client, factory ContractFactory) *Kit {
	return &Kit{
		Client:  client,
		Factory: factory,
	}
}

// Send dispatches a raw JSON-RPC request through the kit's client.
func (k *Kit) Send(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	return k.Client.Send(ctx, method, params...)
}

// SendExpect dispatches a request and fails the test immediately when the
// call errors, returning the raw result for further assertions.
func (k *Kit) SendExpect(t *testing.T, ctx context.Context, method string, params ...interface{}) json.RawMessage {
	t.Helper()
	result, err := k.Client.Send(ctx, method, params...)
	require.NoError(t, err, "RPC call %s failed", method)
	return result
}

// DeployTestContract deploys the standard test contract with the given
// signer.
func (k *Kit) DeployTestContract(ctx context.Context, signer Signer) (DeployedContract, error) {
	if k.Factory == nil {
		return nil, errors.New("no contract factory configured")
	}
	return k.Factory.Deploy(ctx, signer, TestContractName)
}

// GetNonce returns the transaction count of the account at the latest block
// as a decimal integer.
func (k *Kit) GetNonce(ctx context.Context, address string) (uint64, error) {
	result, err := k.Client.Send(ctx, "eth_getTransactionCount", address, "latest")
	if err != nil {
		return 0, err
	}
	return decodeHexResult(result)
}

// GetBlockNumber returns the current block number of the endpoint as a
// decimal integer.
func (k *Kit) GetBlockNumber(ctx context.Context) (uint64, error) {
	result, err := k.Client.Send(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}
	return decodeHexResult(result)
}

// decodeHexResult unwraps a JSON string result and parses it as a hex
// quantity.
func decodeHexResult(result json.RawMessage) (uint64, error) {
	if len(result) == 0 {
		return 0, errors.New("empty result in JSON-RPC response")
	}
	var hex string
	if err := json.Unmarshal(result, &hex); err != nil {
		return 0, fmt.Errorf("failed to unmarshal JSON-RPC result: %w", err)
	}
	return ParseHexUint64(hex)
}
