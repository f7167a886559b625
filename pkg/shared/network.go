package shared

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	NetworkBaseMainnet = "base"
	NetworkBaseSepolia = "base-sepolia"
)

const (
	baseMainnetChainID = 8453
	baseSepoliaChainID = 84532

	baseMainnetRPCURL = "https://mainnet.base.org"
	baseSepoliaRPCURL = "https://sepolia.base.org"
)

// NormalizeNetwork resolves a caller-supplied network name. An empty value
// defaults to Base mainnet, where the CustosNetwork proxy is deployed.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkBaseMainnet, nil
	}

	switch normalized {
	case NetworkBaseMainnet, "base-mainnet", "mainnet":
		return NetworkBaseMainnet, nil
	case NetworkBaseSepolia, "sepolia", "testnet":
		return NetworkBaseSepolia, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// ChainID returns the EIP-155 chain ID for the given network.
func ChainID(network string) (*big.Int, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}

	if normalized == NetworkBaseSepolia {
		return big.NewInt(baseSepoliaChainID), nil
	}
	return big.NewInt(baseMainnetChainID), nil
}

// DefaultRPCURL returns the public node endpoint for the given network.
func DefaultRPCURL(network string) (string, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return "", err
	}

	if normalized == NetworkBaseSepolia {
		return baseSepoliaRPCURL, nil
	}
	return baseMainnetRPCURL, nil
}
