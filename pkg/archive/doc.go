// Package archive stores the full work product behind an inscription. Only
// the 32-byte content digest lives on-chain; a proof is verifiable later
// only if someone retained the content that hashes to it. The store keeps
// each artifact as a brotli-compressed file addressed by that digest, and
// re-verifies the digest on every read.
//
//	store, err := archive.NewStore("proof-artifacts")
//	artifact, err := store.Put([]byte(fullOutput))
//	// artifact.Digest matches the contentHash inscribed on-chain
package archive
