package shared

import (
	"sync"
	"testing"
)

const testWalletKey = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

var agentEnvKeys = []string{
	"CUSTOS_NETWORK",
	"NETWORK",
	"CUSTOS_PRIVATE_KEY",
	"AGENT_KEY",
	"PRIVATE_KEY",
	"CUSTOS_AGENT_ID",
	"AGENT_ID",
	"CUSTOS_RPC_URL",
	"RPC_URL",
	"BASE_CUSTOS_PRIVATE_KEY",
	"BASE_AGENT_KEY",
	"BASE_CUSTOS_RPC_URL",
	"SEPOLIA_CUSTOS_PRIVATE_KEY",
	"SEPOLIA_AGENT_KEY",
	"SEPOLIA_CUSTOS_RPC_URL",
}

func resetAgentEnv(t *testing.T) {
	t.Helper()
	dotenvLoadOnce = sync.Once{}
	dotenvLoadOnce.Do(func() {})
	for _, key := range agentEnvKeys {
		t.Setenv(key, "")
	}
}

func TestAgentConfigFromEnv(t *testing.T) {
	resetAgentEnv(t)
	t.Setenv("AGENT_KEY", testWalletKey)
	t.Setenv("CUSTOS_AGENT_ID", "7")

	config, err := AgentConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.PrivateKey != testWalletKey {
		t.Fatal("expected AGENT_KEY to be picked up")
	}
	if config.AgentID != 7 {
		t.Fatalf("expected agent ID 7, got %d", config.AgentID)
	}
	if config.Network != NetworkBaseMainnet {
		t.Fatalf("expected default network base, got %q", config.Network)
	}
}

func TestAgentConfigFromEnvDefaultsAgentID(t *testing.T) {
	resetAgentEnv(t)
	t.Setenv("AGENT_KEY", testWalletKey)

	config, err := AgentConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.AgentID != 1 {
		t.Fatalf("expected default agent ID 1, got %d", config.AgentID)
	}
}

func TestAgentConfigFromEnvPrefersCustosKey(t *testing.T) {
	resetAgentEnv(t)
	t.Setenv("AGENT_KEY", "ignored")
	t.Setenv("CUSTOS_PRIVATE_KEY", testWalletKey)

	config, err := AgentConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.PrivateKey != testWalletKey {
		t.Fatal("expected CUSTOS_PRIVATE_KEY to take precedence")
	}
}

func TestAgentConfigFromEnvScopedOverride(t *testing.T) {
	resetAgentEnv(t)
	t.Setenv("CUSTOS_NETWORK", "base-sepolia")
	t.Setenv("AGENT_KEY", "unscoped")
	t.Setenv("SEPOLIA_AGENT_KEY", testWalletKey)

	config, err := AgentConfigFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.PrivateKey != testWalletKey {
		t.Fatal("expected network-scoped key to take precedence")
	}
}

func TestAgentConfigFromEnvMissingKey(t *testing.T) {
	resetAgentEnv(t)
	if _, err := AgentConfigFromEnv(); err == nil {
		t.Fatal("expected error when no key is configured")
	}
}

func TestAgentConfigFromEnvInvalidAgentID(t *testing.T) {
	resetAgentEnv(t)
	t.Setenv("AGENT_KEY", testWalletKey)
	t.Setenv("CUSTOS_AGENT_ID", "not-a-number")

	if _, err := AgentConfigFromEnv(); err == nil {
		t.Fatal("expected error for non-numeric agent ID")
	}
}

func TestParsePrivateKey(t *testing.T) {
	withoutPrefix, err := ParsePrivateKey(testWalletKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	withPrefix, err := ParsePrivateKey("0x" + testWalletKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if withoutPrefix.D.Cmp(withPrefix.D) != 0 {
		t.Fatal("expected identical keys regardless of 0x prefix")
	}
}

func TestParsePrivateKeyEdge(t *testing.T) {
	if _, err := ParsePrivateKey(""); err == nil {
		t.Fatal("expected error for empty key")
	}
	if _, err := ParsePrivateKey("0xinvalidhex"); err == nil {
		t.Fatal("expected error for invalid hex")
	}
}
