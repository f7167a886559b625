package custos

import (
	"math/big"
	"time"
)

// Category labels the kind of work an inscription commits to. The mapping to
// on-chain codes is part of the contract protocol and must stay in lockstep
// with the deployed CustosNetwork enumeration.
type Category string

const (
	CategoryBuild      Category = "build"
	CategoryResearch   Category = "research"
	CategoryMarket     Category = "market"
	CategorySystem     Category = "system"
	CategoryGovernance Category = "governance"
)

const (
	// DefaultContractAddress is the CustosNetwork proxy on Base mainnet.
	DefaultContractAddress = "0x9B5FD0B02355E954F159F33D7886e4198ee777b9"

	// MaxSummaryLength bounds the summary surfaced in the on-chain activity
	// feed. Counted in runes, enforced before any network interaction.
	MaxSummaryLength = 140

	DefaultAgentID             = 1
	DefaultGasLimit            = 300_000
	DefaultConfirmationTimeout = 120 * time.Second
	DefaultPollInterval        = 2 * time.Second
)

// Sources for InscribeResult.ProofHashSource.
const (
	// ProofSourceEvent marks a proof hash decoded from the CycleInscribed
	// log the contract emitted, i.e. the value the contract itself computed.
	ProofSourceEvent = "event"

	// ProofSourceLocalDigest marks a proof hash recomputed client-side from
	// the content. It is an approximation used only when the transaction's
	// logs carry no CycleInscribed event, and is not verified against the
	// emitted value.
	ProofSourceLocalDigest = "local-digest"
)

var categoryCodes = map[Category]uint8{
	CategoryBuild:      0,
	CategoryResearch:   1,
	CategoryMarket:     2,
	CategorySystem:     3,
	CategoryGovernance: 4,
}

type ClientConfig struct {
	// PrivateKey is the agent wallet key as hex, with or without a 0x prefix.
	PrivateKey string
	// AgentID is the numeric CustosNetwork agent identifier.
	AgentID uint64
	// ContractAddress overrides the proxy contract address.
	ContractAddress string
	// Network selects chain parameters ("base" or "base-sepolia").
	Network string
	// RPCURL overrides the node endpoint for the selected network.
	RPCURL string
	// GasLimit caps gas for inscribe/attest transactions.
	GasLimit uint64
	// ConfirmationTimeout bounds the receipt wait after submission.
	ConfirmationTimeout time.Duration
	// PollInterval is the receipt polling cadence.
	PollInterval time.Duration
	// Backend, when set, replaces the dialed RPC backend. RPCURL is ignored.
	Backend ChainBackend
}

// InscribeResult reports a confirmed inscription. It is only ever constructed
// after the transaction is confirmed and the network counter has been read.
type InscribeResult struct {
	TransactionHash string `json:"transactionHash"`
	ProofHash       string `json:"proofHash"`
	ProofHashSource string `json:"proofHashSource"`
	CycleID         uint64 `json:"cycleId"`
	NetworkCycles   uint64 `json:"networkCycles"`
}

// AttestResult reports a confirmed attestation.
type AttestResult struct {
	TransactionHash string `json:"transactionHash"`
}

type InscribeTxParams struct {
	Category Category
	Summary  string
	Content  string
}

type AttestTxParams struct {
	AgentID   uint64
	ProofHash string
	Valid     bool
}

func bigToUint64(value *big.Int) uint64 {
	if value == nil || !value.IsUint64() {
		return 0
	}
	return value.Uint64()
}
