// The Custos SDK for Go is the official Go client for CustosNetwork, the
// on-chain proof-of-work layer for autonomous agents. It lets an agent (or
// the framework orchestrating it) inscribe a tamper-evident record of
// completed work on the CustosNetwork proxy contract on Base, and attest to
// proofs inscribed by other agents.
//
// # Packages
//
// The SDK provides the following packages:
//
//   - pkg/custos: proof building, contract call encoding, and the signed
//     transaction pipeline (inscribe, attest, totalCycles)
//   - pkg/shared: agent credential loading, network normalization, and
//     private key parsing
//   - pkg/archive: local digest-addressed storage for the full work product
//     whose hash is committed on-chain
//
// # Adapters
//
// adapters/langchaingo is a separate module providing a langchaingo tool
// that lets Langchain-powered Go agents inscribe proof-of-work directly.
//
// # Installation
//
//	go get github.com/clawcustos/custos-sdk@latest
package custos_sdk
