package mocks

import (
	"context"

	"github.com/status-im/eth-test-rpc/ethtest"
)

// DeployCall records one Deploy invocation.
type DeployCall struct {
	Signer string
	Name   string
}

// Contract implements the ethtest.DeployedContract interface for testing
type Contract struct {
	Addr string
}

func (c Contract) Address() string {
	return c.Addr
}

// ContractFactory implements the ethtest.ContractFactory interface for testing
type ContractFactory struct {
	Addresses map[string]string // contract name -> deployed address
	Err       error
	Calls     []DeployCall
}

func (m *ContractFactory) Deploy(
	ctx context.Context,
	signer ethtest.Signer,
	name string,
) (ethtest.DeployedContract, error) {
	m.Calls = append(m.Calls, DeployCall{Signer: signer.Address(), Name: name})
	if m.Err != nil {
		return nil, m.Err
	}
	return Contract{Addr: m.Addresses[name]}, nil
}
