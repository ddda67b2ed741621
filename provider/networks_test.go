package provider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadNetworks(t *testing.T) {
	content := `{
		"networks": [
			{
				"name": "mainnet",
				"provider": {
					"name": "infura",
					"url": "https://mainnet.infura.io/v3",
					"authType": "token-auth",
					"authToken": "test",
					"chain_id": 1
				}
			},
			{
				"name": "Local",
				"provider": {
					"name": "anvil",
					"url": "http://localhost:8545",
					"authType": "no-auth"
				}
			}
		]
	}`

	path := filepath.Join(t.TempDir(), "networks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Run("successful load", func(t *testing.T) {
		networks, err := ReadNetworks(path)
		require.NoError(t, err)
		require.Len(t, networks, 2)
		assert.Equal(t, "mainnet", networks[0].Name)
		assert.Equal(t, "infura", networks[0].Provider.Name)
		assert.Equal(t, TokenAuth, networks[0].Provider.AuthType)
		assert.Equal(t, int64(1), networks[0].Provider.ChainID)
		// Network names are normalized to lowercase
		assert.Equal(t, "local", networks[1].Name)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := ReadNetworks(filepath.Join(t.TempDir(), "missing.json"))
		assert.Error(t, err)
	})

	t.Run("invalid json", func(t *testing.T) {
		badPath := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0644))
		_, err := ReadNetworks(badPath)
		assert.Error(t, err)
	})

	t.Run("validation failure", func(t *testing.T) {
		badPath := filepath.Join(t.TempDir(), "invalid.json")
		noURL := `{"networks":[{"name":"mainnet","provider":{"name":"infura","authType":"no-auth"}}]}`
		require.NoError(t, os.WriteFile(badPath, []byte(noURL), 0644))
		_, err := ReadNetworks(badPath)
		assert.Error(t, err)
	})
}

func TestWriteNetworks(t *testing.T) {
	networks := []NetworkConfig{
		{
			Name: "Testnet",
			Provider: RPCProvider{
				Name:     "geth",
				URL:      "http://localhost:8545",
				AuthType: NoAuth,
			},
		},
	}

	path := filepath.Join(t.TempDir(), "networks.json")
	require.NoError(t, WriteNetworks(path, networks))

	loaded, err := ReadNetworks(path)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "testnet", loaded[0].Name)
	assert.Equal(t, "geth", loaded[0].Provider.Name)

	t.Run("invalid provider rejected", func(t *testing.T) {
		bad := []NetworkConfig{{Name: "x", Provider: RPCProvider{Name: "missing-url", AuthType: NoAuth}}}
		err := WriteNetworks(filepath.Join(t.TempDir(), "bad.json"), bad)
		assert.Error(t, err)
	})
}

func TestResolveEndpoint(t *testing.T) {
	networks := []NetworkConfig{
		{
			Name: "staging",
			Provider: RPCProvider{
				Name:     "staging-node",
				URL:      "https://staging.example.com",
				AuthType: NoAuth,
			},
		},
	}

	t.Run("configured network", func(t *testing.T) {
		p := ResolveEndpoint(networks, "staging")
		assert.Equal(t, "staging-node", p.Name)
		assert.Equal(t, "https://staging.example.com", p.URL)
	})

	t.Run("name matching is case insensitive", func(t *testing.T) {
		p := ResolveEndpoint(networks, "STAGING")
		assert.Equal(t, "staging-node", p.Name)
	})

	t.Run("unknown network falls back to local default", func(t *testing.T) {
		p := ResolveEndpoint(networks, "unknown")
		assert.Equal(t, DefaultEndpoint, p.URL)
		assert.Equal(t, NoAuth, p.AuthType)
	})

	t.Run("nil networks fall back to local default", func(t *testing.T) {
		p := ResolveEndpoint(nil, "anything")
		assert.Equal(t, DefaultEndpoint, p.URL)
	})
}
