package shared

import "testing"

func TestNormalizeNetworkDefaultsToBase(t *testing.T) {
	result, err := NormalizeNetwork("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != NetworkBaseMainnet {
		t.Fatalf("expected %q, got %q", NetworkBaseMainnet, result)
	}
}

func TestNormalizeNetworkAliases(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"base", NetworkBaseMainnet},
		{"BASE", NetworkBaseMainnet},
		{"mainnet", NetworkBaseMainnet},
		{"  base-mainnet  ", NetworkBaseMainnet},
		{"base-sepolia", NetworkBaseSepolia},
		{"sepolia", NetworkBaseSepolia},
		{"testnet", NetworkBaseSepolia},
	}

	for _, testCase := range cases {
		result, err := NormalizeNetwork(testCase.input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", testCase.input, err)
		}
		if result != testCase.expected {
			t.Fatalf("expected %q for %q, got %q", testCase.expected, testCase.input, result)
		}
	}
}

func TestNormalizeNetworkUnsupported(t *testing.T) {
	if _, err := NormalizeNetwork("polygon"); err == nil {
		t.Fatal("expected error for unsupported network")
	}
}

func TestChainID(t *testing.T) {
	mainnetChainID, err := ChainID(NetworkBaseMainnet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mainnetChainID.Int64() != 8453 {
		t.Fatalf("expected chain ID 8453, got %d", mainnetChainID.Int64())
	}

	sepoliaChainID, err := ChainID(NetworkBaseSepolia)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sepoliaChainID.Int64() != 84532 {
		t.Fatalf("expected chain ID 84532, got %d", sepoliaChainID.Int64())
	}
}

func TestDefaultRPCURL(t *testing.T) {
	mainnetURL, err := DefaultRPCURL(NetworkBaseMainnet)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mainnetURL != "https://mainnet.base.org" {
		t.Fatalf("unexpected mainnet endpoint %q", mainnetURL)
	}

	sepoliaURL, err := DefaultRPCURL(NetworkBaseSepolia)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sepoliaURL != "https://sepolia.base.org" {
		t.Fatalf("unexpected sepolia endpoint %q", sepoliaURL)
	}
}
