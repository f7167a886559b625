package custos

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"
)

// ValidateSummary rejects summaries longer than MaxSummaryLength runes. The
// summary is surfaced in the contract's size-constrained activity feed, so
// oversized input is caught here instead of wasting a transaction.
func ValidateSummary(summary string) error {
	length := utf8.RuneCountInString(summary)
	if length > MaxSummaryLength {
		return NewValidationError("summary", "summary must be <= %d characters (got %d)", MaxSummaryLength, length)
	}
	return nil
}

// ResolveCategory maps a category name to its on-chain code. The mapping is a
// closed, static bijection; an unknown category is a usage error.
func ResolveCategory(category Category) (uint8, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(string(category))))
	code, known := categoryCodes[normalized]
	if !known {
		return 0, NewValidationError("category", "unknown category %q (must be one of build|research|market|system|governance)", category)
	}
	return code, nil
}

// DigestContent computes the SHA-256 commitment of the raw content bytes.
// The digest is deterministic and content-addressed: a verifier recomputes it
// from the externally retrieved content, so this must stay the algorithm the
// deployed contract treats as canonical.
func DigestContent(content []byte) [32]byte {
	return sha256.Sum256(content)
}

// NormalizeProofHash converts caller-supplied hex (0x prefix optional) into
// the fixed 32-byte form attestProof expects. Input shorter than 32 bytes is
// right-padded with zero bytes; longer input is truncated to the first 32
// bytes, which silently drops the remainder. Both behaviors are part of the
// API contract.
func NormalizeProofHash(proofHash string) ([32]byte, error) {
	var normalized [32]byte

	trimmed := strings.TrimPrefix(strings.TrimSpace(proofHash), "0x")
	if trimmed == "" {
		return normalized, NewValidationError("proofHash", "proof hash is required")
	}

	decoded, err := hex.DecodeString(trimmed)
	if err != nil {
		return normalized, NewValidationError("proofHash", "proof hash is not valid hex: %v", err)
	}

	copy(normalized[:], decoded)
	return normalized, nil
}
