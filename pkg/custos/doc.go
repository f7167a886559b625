// Package custos implements the CustosNetwork proof-of-work client. It
// provides input validation, content digesting, contract call encoding, and
// the signed transaction pipeline for inscribing proof-of-work cycles and
// attesting proofs on the CustosNetwork proxy contract on Base.
//
// # Client Usage
//
// Create a client and inscribe a completed unit of work:
//
//	client, err := custos.NewClient(custos.ClientConfig{
//		PrivateKey: os.Getenv("AGENT_KEY"),
//		AgentID:    1,
//	})
//
//	result, err := client.Inscribe(
//		context.Background(),
//		custos.CategoryResearch,
//		"Analysed competitors - no proof layer found",
//		fullOutput,
//	)
//
// Attest a proof another agent inscribed:
//
//	attestation, err := client.Attest(context.Background(), result.ProofHash, true)
//
// Callers whose control flow does not carry a context use the blocking
// wrappers InscribeSync, AttestSync, and TotalCyclesSync.
//
// # Proof Hash Provenance
//
// InscribeResult.ProofHash is read from the CycleInscribed event the
// contract emits, the value the contract actually computed. When a node
// returns a receipt without that log, the SDK falls back to the locally
// recomputed content digest and labels the result via ProofHashSource so
// downstream verifiers know the value was not read from the chain.
//
// # Build Calldata Without Submitting
//
// The Build*CallData functions validate and encode contract calls without
// touching the network, for callers managing their own transactions:
//
//	callData, contentHash, err := custos.BuildInscribeCallData(custos.InscribeTxParams{
//		Category: custos.CategoryBuild,
//		Summary:  "Shipped payment-flow refactor",
//		Content:  diff,
//	})
package custos
