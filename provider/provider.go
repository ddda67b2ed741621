package provider

// RPCProviderAuthType defines various authentication types for RPC providers
type RPCProviderAuthType string

const (
	NoAuth    RPCProviderAuthType = "no-auth"    // No authentication
	BasicAuth RPCProviderAuthType = "basic-auth" // HTTP Header "Authorization: Basic base64(username:password)"
	TokenAuth RPCProviderAuthType = "token-auth" // URL Token-based authentication "https://api.example.com/YOUR_TOKEN"
)

// RPCProvider represents the configuration of a JSON-RPC endpoint with various options
type RPCProvider struct {
	Name         string              `json:"name" validate:"required,min=1"`                                          // Provider name for identification
	URL          string              `json:"url" validate:"required,url"`                                             // URL of the endpoint
	AuthType     RPCProviderAuthType `json:"authType" validate:"required,oneof=no-auth basic-auth token-auth"`        // Authentication type
	AuthLogin    string              `json:"authLogin" validate:"required_if=AuthType basic-auth,omitempty,min=1"`    // Login for BasicAuth
	AuthPassword string              `json:"authPassword" validate:"required_if=AuthType basic-auth,omitempty,min=1"` // Password for BasicAuth
	AuthToken    string              `json:"authToken" validate:"required_if=AuthType token-auth,omitempty,min=1"`    // Token for TokenAuth
	ChainID      int64               `json:"chain_id"`
}

// DefaultEndpoint is used when no network configuration names an endpoint.
const DefaultEndpoint = "http://localhost:8545"

// DefaultProvider returns the local development node endpoint.
func DefaultProvider() RPCProvider {
	return RPCProvider{
		Name:     "local",
		URL:      DefaultEndpoint,
		AuthType: NoAuth,
	}
}
