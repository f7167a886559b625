package custos

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// proxyABIJSON is the fixed, versioned surface of the CustosNetwork proxy.
// Only the functions and the event the SDK consumes are declared; a contract
// upgrade changing these shapes is a breaking external-interface change.
const proxyABIJSON = `[
  {
    "name": "inscribeCycle",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "blockType",   "type": "uint8"},
      {"name": "summary",     "type": "string"},
      {"name": "contentHash", "type": "bytes32"}
    ],
    "outputs": [
      {"name": "cycleId",   "type": "uint256"},
      {"name": "proofHash", "type": "bytes32"}
    ]
  },
  {
    "name": "attestProof",
    "type": "function",
    "stateMutability": "nonpayable",
    "inputs": [
      {"name": "agentId",   "type": "uint256"},
      {"name": "proofHash", "type": "bytes32"},
      {"name": "valid",     "type": "bool"}
    ],
    "outputs": []
  },
  {
    "name": "totalCycles",
    "type": "function",
    "stateMutability": "view",
    "inputs": [],
    "outputs": [{"name": "", "type": "uint256"}]
  },
  {
    "name": "CycleInscribed",
    "type": "event",
    "anonymous": false,
    "inputs": [
      {"name": "agent",     "type": "address", "indexed": true},
      {"name": "cycleId",   "type": "uint256", "indexed": false},
      {"name": "proofHash", "type": "bytes32", "indexed": false}
    ]
  }
]`

var (
	proxyABIOnce  sync.Once
	proxyABIValue abi.ABI
	proxyABIErr   error
)

// ProxyABI returns the parsed CustosNetwork proxy ABI.
func ProxyABI() (abi.ABI, error) {
	proxyABIOnce.Do(func() {
		proxyABIValue, proxyABIErr = abi.JSON(strings.NewReader(proxyABIJSON))
	})
	if proxyABIErr != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse proxy ABI: %w", proxyABIErr)
	}
	return proxyABIValue, nil
}

// UnpackTotalCycles decodes the return data of a totalCycles call.
func UnpackTotalCycles(returnData []byte) (uint64, error) {
	parsedABI, err := ProxyABI()
	if err != nil {
		return 0, err
	}

	values, err := parsedABI.Unpack("totalCycles", returnData)
	if err != nil {
		return 0, fmt.Errorf("failed to decode totalCycles output: %w", err)
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("totalCycles returned %d values, expected 1", len(values))
	}

	counter, ok := values[0].(*big.Int)
	if !ok {
		return 0, fmt.Errorf("totalCycles returned %T, expected *big.Int", values[0])
	}
	return bigToUint64(counter), nil
}

// CycleInscribedLog is the decoded CycleInscribed event a successful
// inscribeCycle transaction emits.
type CycleInscribedLog struct {
	Agent     common.Address
	CycleID   *big.Int
	ProofHash [32]byte
}

// DecodeCycleInscribed scans a receipt for the CycleInscribed event emitted by
// the given contract. It returns (nil, nil) when the receipt carries no such
// log, which callers treat as "fall back to the local digest".
func DecodeCycleInscribed(receipt *types.Receipt, contract common.Address) (*CycleInscribedLog, error) {
	parsedABI, err := ProxyABI()
	if err != nil {
		return nil, err
	}

	event, declared := parsedABI.Events["CycleInscribed"]
	if !declared {
		return nil, fmt.Errorf("proxy ABI does not declare CycleInscribed")
	}

	for _, logEntry := range receipt.Logs {
		if logEntry == nil || logEntry.Address != contract {
			continue
		}
		if len(logEntry.Topics) < 2 || logEntry.Topics[0] != event.ID {
			continue
		}

		values, unpackErr := parsedABI.Unpack("CycleInscribed", logEntry.Data)
		if unpackErr != nil {
			return nil, fmt.Errorf("failed to decode CycleInscribed log: %w", unpackErr)
		}
		if len(values) != 2 {
			return nil, fmt.Errorf("CycleInscribed log carried %d values, expected 2", len(values))
		}

		cycleID, ok := values[0].(*big.Int)
		if !ok {
			return nil, fmt.Errorf("CycleInscribed cycleId decoded as %T, expected *big.Int", values[0])
		}
		proofHash, ok := values[1].([32]byte)
		if !ok {
			return nil, fmt.Errorf("CycleInscribed proofHash decoded as %T, expected [32]byte", values[1])
		}

		return &CycleInscribedLog{
			Agent:     common.BytesToAddress(logEntry.Topics[1].Bytes()),
			CycleID:   cycleID,
			ProofHash: proofHash,
		}, nil
	}

	return nil, nil
}
