package custos

import (
	"fmt"
	"math/big"
)

// BuildInscribeCallData validates inscribe input and encodes the
// inscribeCycle calldata. It also returns the content digest so the caller
// can use it as the local proof-hash approximation. No network interaction
// happens here; all validation failures are ValidationErrors.
func BuildInscribeCallData(params InscribeTxParams) ([]byte, [32]byte, error) {
	var contentHash [32]byte

	if err := ValidateSummary(params.Summary); err != nil {
		return nil, contentHash, err
	}
	categoryCode, err := ResolveCategory(params.Category)
	if err != nil {
		return nil, contentHash, err
	}
	contentHash = DigestContent([]byte(params.Content))

	parsedABI, err := ProxyABI()
	if err != nil {
		return nil, contentHash, err
	}
	callData, err := parsedABI.Pack("inscribeCycle", categoryCode, params.Summary, contentHash)
	if err != nil {
		return nil, contentHash, fmt.Errorf("failed to encode inscribeCycle call: %w", err)
	}

	return callData, contentHash, nil
}

// BuildAttestCallData normalizes the referenced proof hash and encodes the
// attestProof calldata.
func BuildAttestCallData(params AttestTxParams) ([]byte, error) {
	proofHash, err := NormalizeProofHash(params.ProofHash)
	if err != nil {
		return nil, err
	}

	parsedABI, err := ProxyABI()
	if err != nil {
		return nil, err
	}
	callData, err := parsedABI.Pack("attestProof", new(big.Int).SetUint64(params.AgentID), proofHash, params.Valid)
	if err != nil {
		return nil, fmt.Errorf("failed to encode attestProof call: %w", err)
	}

	return callData, nil
}

// BuildTotalCyclesCallData encodes the read-only totalCycles call.
func BuildTotalCyclesCallData() ([]byte, error) {
	parsedABI, err := ProxyABI()
	if err != nil {
		return nil, err
	}
	callData, err := parsedABI.Pack("totalCycles")
	if err != nil {
		return nil, fmt.Errorf("failed to encode totalCycles call: %w", err)
	}
	return callData, nil
}
