package provider

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NetworkConfig binds a network name to the provider serving it.
type NetworkConfig struct {
	Name     string      `json:"name" validate:"required,lowercase"`
	Provider RPCProvider `json:"provider" validate:"required"`
}

// NetworksFile describes the structure of the root JSON file for networks.
type NetworksFile struct {
	Networks []NetworkConfig `json:"networks" validate:"required,dive"` // List of named networks
}

var validate = validator.New()

// ReadNetworks reads the list of named networks from a JSON file with validation.
func ReadNetworks(filename string) ([]NetworkConfig, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var nf NetworksFile
	if err := json.NewDecoder(f).Decode(&nf); err != nil {
		return nil, err
	}

	for i := range nf.Networks {
		nf.Networks[i].normalize()
	}

	if err := validate.Struct(nf); err != nil {
		return nil, err
	}

	return nf.Networks, nil
}

// WriteNetworks writes the list of named networks to a JSON file with validation.
func WriteNetworks(filename string, networks []NetworkConfig) error {
	nf := NetworksFile{
		Networks: networks,
	}
	for i := range nf.Networks {
		nf.Networks[i].normalize()
	}
	if err := validate.Struct(nf); err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ") // For readability
	return encoder.Encode(nf)
}

// ResolveEndpoint finds the provider for the named network. When the name is
// not configured it falls back to the local default endpoint.
func ResolveEndpoint(networks []NetworkConfig, name string) RPCProvider {
	name = strings.ToLower(name)
	for _, network := range networks {
		if network.Name == name {
			return network.Provider
		}
	}
	return DefaultProvider()
}

// normalize ensures the network name is lowercase.
func (n *NetworkConfig) normalize() {
	n.Name = strings.ToLower(n.Name)
}
