package shared

import (
	"bufio"
	"crypto/ecdsa"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/crypto"
)

type AgentConfig struct {
	PrivateKey string
	AgentID    uint64
	Network    string
	RPCURL     string
}

var dotenvLoadOnce sync.Once

// AgentConfigFromEnv loads the agent wallet key, agent ID, and network
// selection from environment variables, reading a .env file first when one is
// present. AGENT_KEY is the variable agent frameworks conventionally export;
// the CUSTOS_-prefixed names take precedence when both are set.
func AgentConfigFromEnv() (AgentConfig, error) {
	loadDotEnvIfPresent()

	network := firstNonEmptyEnv("CUSTOS_NETWORK", "NETWORK")
	normalizedNetwork, err := NormalizeNetwork(network)
	if err != nil {
		return AgentConfig{}, err
	}

	privateKey := firstNonEmptyEnv("CUSTOS_PRIVATE_KEY", "AGENT_KEY", "PRIVATE_KEY")
	rpcURL := firstNonEmptyEnv("CUSTOS_RPC_URL", "RPC_URL")

	switch normalizedNetwork {
	case NetworkBaseMainnet:
		if scopedKey := firstNonEmptyEnv("BASE_CUSTOS_PRIVATE_KEY", "BASE_AGENT_KEY"); scopedKey != "" {
			privateKey = scopedKey
		}
		if scopedURL := firstNonEmptyEnv("BASE_CUSTOS_RPC_URL"); scopedURL != "" {
			rpcURL = scopedURL
		}
	case NetworkBaseSepolia:
		if scopedKey := firstNonEmptyEnv("SEPOLIA_CUSTOS_PRIVATE_KEY", "SEPOLIA_AGENT_KEY"); scopedKey != "" {
			privateKey = scopedKey
		}
		if scopedURL := firstNonEmptyEnv("SEPOLIA_CUSTOS_RPC_URL"); scopedURL != "" {
			rpcURL = scopedURL
		}
	}

	if privateKey == "" {
		return AgentConfig{}, fmt.Errorf("AGENT_KEY is required")
	}

	agentID := uint64(1)
	if rawAgentID := firstNonEmptyEnv("CUSTOS_AGENT_ID", "AGENT_ID"); rawAgentID != "" {
		parsedAgentID, parseErr := strconv.ParseUint(rawAgentID, 10, 64)
		if parseErr != nil {
			return AgentConfig{}, fmt.Errorf("invalid CUSTOS_AGENT_ID %q: %w", rawAgentID, parseErr)
		}
		agentID = parsedAgentID
	}

	return AgentConfig{
		PrivateKey: privateKey,
		AgentID:    agentID,
		Network:    normalizedNetwork,
		RPCURL:     rpcURL,
	}, nil
}

func loadDotEnvIfPresent() {
	dotenvLoadOnce.Do(func() {
		startPaths := make([]string, 0, 2)

		if cwd, err := os.Getwd(); err == nil {
			startPaths = append(startPaths, cwd)
		}
		if _, currentFile, _, ok := runtime.Caller(0); ok {
			startPaths = append(startPaths, filepath.Dir(currentFile))
		}

		seenCandidates := make(map[string]struct{})
		for _, start := range startPaths {
			current := start
			for {
				candidate := filepath.Join(current, ".env")
				if _, exists := seenCandidates[candidate]; !exists {
					seenCandidates[candidate] = struct{}{}
					if _, statErr := os.Stat(candidate); statErr == nil {
						loadDotEnvFile(candidate)
						return
					}
				}

				parent := filepath.Dir(current)
				if parent == current {
					break
				}
				current = parent
			}
		}
	})
}

func loadDotEnvFile(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	loadedAny := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}

		separator := strings.Index(line, "=")
		if separator <= 0 {
			continue
		}

		key := strings.TrimSpace(line[:separator])
		if !isValidEnvKey(key) {
			continue
		}
		if _, alreadySet := os.LookupEnv(key); alreadySet {
			continue
		}

		value := strings.TrimSpace(line[separator+1:])
		if len(value) >= 2 {
			first := value[0]
			last := value[len(value)-1]
			if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
				value = value[1 : len(value)-1]
			}
		}

		if setErr := os.Setenv(key, value); setErr == nil {
			loadedAny = true
		}
	}

	return loadedAny
}

func isValidEnvKey(key string) bool {
	if key == "" {
		return false
	}
	for index, character := range key {
		if (character >= 'A' && character <= 'Z') ||
			(character >= 'a' && character <= 'z') ||
			(index > 0 && character >= '0' && character <= '9') ||
			character == '_' {
			continue
		}
		return false
	}
	return true
}

func firstNonEmptyEnv(keys ...string) string {
	for _, key := range keys {
		value := strings.TrimSpace(os.Getenv(key))
		if value != "" {
			return value
		}
	}
	return ""
}

// ParsePrivateKey parses an agent wallet key supplied as hex, with or
// without a 0x prefix.
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil, fmt.Errorf("private key cannot be empty")
	}
	candidate = strings.TrimPrefix(candidate, "0x")

	privateKey, err := crypto.HexToECDSA(candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return privateKey, nil
}
