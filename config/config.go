package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/status-im/eth-test-rpc/provider"
)

// Environment variables consulted by FromEnv.
const (
	EnvNetworks = "ETH_RPC_NETWORKS" // path to the networks JSON file
	EnvNetwork  = "ETH_RPC_NETWORK"  // name of the network to target
	EnvDebug    = "ETH_RPC_DEBUG"    // enables diagnostic request/response logging
)

// DefaultNetwork is targeted when no network name is configured.
const DefaultNetwork = "local"

// Settings carries the runtime configuration of the test kit. It is resolved
// once at startup and passed to every component that needs it, so the
// diagnostic flag cannot be observed at different values by different
// components.
type Settings struct {
	Endpoint provider.RPCProvider
	Debug    bool
}

// Resolve builds Settings from explicit values. An empty networksPath selects
// the local default endpoint; an empty name selects DefaultNetwork.
func Resolve(networksPath, name, debug string) (Settings, error) {
	if name == "" {
		name = DefaultNetwork
	}

	var networks []provider.NetworkConfig
	if networksPath != "" {
		loaded, err := provider.ReadNetworks(networksPath)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read networks config: %w", err)
		}
		networks = loaded
	}

	return Settings{
		Endpoint: provider.ResolveEndpoint(networks, name),
		Debug:    DebugEnabled(debug),
	}, nil
}

// FromEnv resolves settings from the process environment.
func FromEnv() (Settings, error) {
	return Resolve(os.Getenv(EnvNetworks), os.Getenv(EnvNetwork), os.Getenv(EnvDebug))
}

// DebugEnabled reports whether the given flag value turns on diagnostic
// logging. Any non-empty value other than "0" and "false" is truthy.
func DebugEnabled(value string) bool {
	switch strings.ToLower(value) {
	case "", "0", "false":
		return false
	}
	return true
}
