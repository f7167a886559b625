package custos

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/clawcustos/custos-sdk/pkg/shared"
)

// Client is a proof-of-work client bound to one agent identity. The identity
// is exclusively owned for the client's lifetime; the key is never persisted
// or logged. Concurrent calls on one client are safe: nonce acquisition
// through submission is serialized so two in-flight transactions never reuse
// a sequence number.
type Client struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
	agentID    uint64
	chainID    *big.Int
	contract   common.Address
	endpoint   string
	backend    ChainBackend

	gasLimit            uint64
	confirmationTimeout time.Duration
	pollInterval        time.Duration

	nonceMutex sync.Mutex
}

// NewClient creates a new Custos client.
func NewClient(config ClientConfig) (*Client, error) {
	privateKey, err := shared.ParsePrivateKey(config.PrivateKey)
	if err != nil {
		return nil, err
	}

	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}
	chainID, err := shared.ChainID(network)
	if err != nil {
		return nil, err
	}

	contractAddress := strings.TrimSpace(config.ContractAddress)
	if contractAddress == "" {
		contractAddress = DefaultContractAddress
	}
	if !common.IsHexAddress(contractAddress) {
		return nil, NewValidationError("contractAddress", "invalid contract address %q", contractAddress)
	}

	agentID := config.AgentID
	if agentID == 0 {
		agentID = DefaultAgentID
	}
	gasLimit := config.GasLimit
	if gasLimit == 0 {
		gasLimit = DefaultGasLimit
	}
	confirmationTimeout := config.ConfirmationTimeout
	if confirmationTimeout <= 0 {
		confirmationTimeout = DefaultConfirmationTimeout
	}
	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	endpoint := strings.TrimSpace(config.RPCURL)
	if endpoint == "" {
		endpoint, err = shared.DefaultRPCURL(network)
		if err != nil {
			return nil, err
		}
	}

	backend := config.Backend
	if backend == nil {
		backend, err = DialBackend(endpoint)
		if err != nil {
			return nil, err
		}
	}

	return &Client{
		privateKey:          privateKey,
		address:             crypto.PubkeyToAddress(privateKey.PublicKey),
		agentID:             agentID,
		chainID:             chainID,
		contract:            common.HexToAddress(contractAddress),
		endpoint:            endpoint,
		backend:             backend,
		gasLimit:            gasLimit,
		confirmationTimeout: confirmationTimeout,
		pollInterval:        pollInterval,
	}, nil
}

// Address returns the agent wallet address derived from the signing key.
func (client *Client) Address() common.Address {
	return client.address
}

// AgentID returns the numeric CustosNetwork agent identifier.
func (client *Client) AgentID() uint64 {
	return client.agentID
}

// Inscribe records a proof-of-work cycle on-chain. The summary must be at
// most MaxSummaryLength characters and the category must be one of the known
// category names; both are validated before any network interaction. The
// content itself never leaves the process: only its digest is committed.
func (client *Client) Inscribe(
	ctx context.Context,
	category Category,
	summary string,
	content string,
) (InscribeResult, error) {
	callData, contentHash, err := BuildInscribeCallData(InscribeTxParams{
		Category: category,
		Summary:  summary,
		Content:  content,
	})
	if err != nil {
		return InscribeResult{}, err
	}

	receipt, transactionHash, err := client.submitAndConfirm(ctx, callData)
	if err != nil {
		return InscribeResult{}, err
	}

	proofHash := "0x" + hex.EncodeToString(contentHash[:])
	proofSource := ProofSourceLocalDigest
	cycleID := bigToUint64(receipt.BlockNumber)

	inscribedLog, err := DecodeCycleInscribed(receipt, client.contract)
	if err != nil {
		return InscribeResult{}, err
	}
	if inscribedLog != nil {
		proofHash = "0x" + hex.EncodeToString(inscribedLog.ProofHash[:])
		proofSource = ProofSourceEvent
		cycleID = bigToUint64(inscribedLog.CycleID)
	}

	networkCycles, err := client.TotalCycles(ctx)
	if err != nil {
		return InscribeResult{}, err
	}

	return InscribeResult{
		TransactionHash: transactionHash.Hex(),
		ProofHash:       proofHash,
		ProofHashSource: proofSource,
		CycleID:         cycleID,
		NetworkCycles:   networkCycles,
	}, nil
}

// Attest vouches for or disputes a previously inscribed proof. The proof
// hash is normalized to the fixed 32-byte form the contract expects; see
// NormalizeProofHash for the padding and truncation contract.
func (client *Client) Attest(
	ctx context.Context,
	proofHash string,
	valid bool,
) (AttestResult, error) {
	callData, err := BuildAttestCallData(AttestTxParams{
		AgentID:   client.agentID,
		ProofHash: proofHash,
		Valid:     valid,
	})
	if err != nil {
		return AttestResult{}, err
	}

	_, transactionHash, err := client.submitAndConfirm(ctx, callData)
	if err != nil {
		return AttestResult{}, err
	}

	return AttestResult{TransactionHash: transactionHash.Hex()}, nil
}

// TotalCycles returns the network-wide inscription counter.
func (client *Client) TotalCycles(ctx context.Context) (uint64, error) {
	callData, err := BuildTotalCyclesCallData()
	if err != nil {
		return 0, err
	}

	returnData, err := client.backend.CallContract(ctx, ethereum.CallMsg{
		To:   &client.contract,
		Data: callData,
	}, nil)
	if err != nil {
		return 0, NewNetworkError(client.endpoint, "totalCycles call", err)
	}

	return UnpackTotalCycles(returnData)
}

// InscribeSync is a blocking wrapper for Inscribe, for callers whose control
// flow does not carry a context. It drives the full pipeline to completion
// and returns only the final result or failure.
func (client *Client) InscribeSync(category Category, summary string, content string) (InscribeResult, error) {
	return client.Inscribe(context.Background(), category, summary, content)
}

// AttestSync is a blocking wrapper for Attest.
func (client *Client) AttestSync(proofHash string, valid bool) (AttestResult, error) {
	return client.Attest(context.Background(), proofHash, valid)
}

// TotalCyclesSync is a blocking wrapper for TotalCycles.
func (client *Client) TotalCyclesSync() (uint64, error) {
	return client.TotalCycles(context.Background())
}

// submitAndConfirm runs the shared transaction pipeline: fetch the sequence
// number and gas price, sign the contract call, broadcast it, and wait for a
// confirmed receipt. The nonce mutex is held from the sequence fetch through
// broadcast so concurrent calls observe strictly increasing pending nonces.
func (client *Client) submitAndConfirm(
	ctx context.Context,
	callData []byte,
) (*types.Receipt, common.Hash, error) {
	signedTransaction, err := client.signNextTransaction(ctx, callData)
	if err != nil {
		return nil, common.Hash{}, err
	}

	transactionHash := signedTransaction.Hash()
	receipt, err := client.waitForReceipt(ctx, transactionHash)
	if err != nil {
		return nil, transactionHash, err
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, transactionHash, NewSubmissionError(
			transactionHash.Hex(),
			"transaction %s reverted on-chain",
			transactionHash.Hex(),
		)
	}

	return receipt, transactionHash, nil
}

func (client *Client) signNextTransaction(
	ctx context.Context,
	callData []byte,
) (*types.Transaction, error) {
	client.nonceMutex.Lock()
	defer client.nonceMutex.Unlock()

	nonce, err := client.backend.PendingNonceAt(ctx, client.address)
	if err != nil {
		return nil, NewNetworkError(client.endpoint, "sequence number fetch", err)
	}
	gasPrice, err := client.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, NewNetworkError(client.endpoint, "gas price fetch", err)
	}

	unsignedTransaction := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      client.gasLimit,
		To:       &client.contract,
		Data:     callData,
	})

	signedTransaction, err := types.SignTx(
		unsignedTransaction,
		types.LatestSignerForChainID(client.chainID),
		client.privateKey,
	)
	if err != nil {
		return nil, NewSubmissionError("", "failed to sign transaction: %v", err)
	}

	if err := client.backend.SendTransaction(ctx, signedTransaction); err != nil {
		return nil, NewSubmissionError(
			signedTransaction.Hash().Hex(),
			"node rejected transaction: %v",
			err,
		)
	}

	return signedTransaction, nil
}

// waitForReceipt polls the node until the transaction is included in a block
// or the confirmation bound elapses. Cancelling the context stops the wait
// but does not retract the transaction; it may still be included later, so
// both cancellation and timeout surface as ConfirmationTimeoutError.
func (client *Client) waitForReceipt(
	ctx context.Context,
	transactionHash common.Hash,
) (*types.Receipt, error) {
	deadline := time.Now().Add(client.confirmationTimeout)

	for {
		receipt, err := client.backend.TransactionReceipt(ctx, transactionHash)
		if err == nil && receipt != nil {
			return receipt, nil
		}
		if err != nil && !errors.Is(err, ethereum.NotFound) {
			return nil, NewNetworkError(client.endpoint, "receipt fetch", err)
		}

		if time.Now().After(deadline) {
			return nil, NewConfirmationTimeoutError(
				transactionHash.Hex(),
				"transaction %s not confirmed within %s; it may still be included later",
				transactionHash.Hex(),
				client.confirmationTimeout,
			)
		}

		select {
		case <-ctx.Done():
			return nil, NewConfirmationTimeoutError(
				transactionHash.Hex(),
				"stopped waiting for transaction %s (%v); it may still be included later",
				transactionHash.Hex(),
				ctx.Err(),
			)
		case <-time.After(client.pollInterval):
		}
	}
}
