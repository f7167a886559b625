// Package shared provides common utilities used across the Custos SDK for
// Go. It includes network normalization for the Base networks the
// CustosNetwork proxy ships on, agent environment variable loading, and
// wallet key parsing helpers.
//
// This package is typically used internally by other SDK packages but is
// also available for direct use when wiring the SDK into custom agent
// runtimes.
//
// # Environment Variables
//
// The shared package supports loading agent credentials from environment
// variables or .env files: AGENT_KEY / CUSTOS_PRIVATE_KEY for the wallet
// key, CUSTOS_AGENT_ID for the agent identifier, CUSTOS_NETWORK and
// CUSTOS_RPC_URL for network selection, plus BASE_- and SEPOLIA_-scoped
// overrides.
package shared
