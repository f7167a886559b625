package archive

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"

	"github.com/clawcustos/custos-sdk/pkg/custos"
)

// Store is a digest-addressed artifact store. Each artifact is written once
// as a brotli-compressed file named by the hex digest of its content, the
// same digest the SDK commits on-chain, so a stored artifact is the
// verifiable pre-image of an inscription.
type Store struct {
	dir string
}

// Artifact describes a stored work product.
type Artifact struct {
	Digest string `json:"digest"`
	Path   string `json:"path"`
	Size   int64  `json:"size"`
}

// NewStore creates a store rooted at dir, creating the directory if needed.
func NewStore(dir string) (*Store, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		return nil, fmt.Errorf("archive directory is required")
	}
	if err := os.MkdirAll(trimmed, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}
	return &Store{dir: trimmed}, nil
}

// Put stores content under its digest. Storing identical content twice is
// idempotent: the digest, and therefore the path, is the same.
func (store *Store) Put(content []byte) (Artifact, error) {
	digest := custos.DigestContent(content)
	digestHex := hex.EncodeToString(digest[:])
	path := store.artifactPath(digestHex)

	var compressed bytes.Buffer
	writer := brotli.NewWriter(&compressed)
	if _, err := writer.Write(content); err != nil {
		return Artifact{}, fmt.Errorf("failed to compress artifact: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Artifact{}, fmt.Errorf("failed to compress artifact: %w", err)
	}

	if err := os.WriteFile(path, compressed.Bytes(), 0o644); err != nil {
		return Artifact{}, fmt.Errorf("failed to write artifact %s: %w", digestHex, err)
	}

	return Artifact{
		Digest: "0x" + digestHex,
		Path:   path,
		Size:   int64(len(content)),
	}, nil
}

// Get loads the artifact for the given digest (0x prefix optional) and
// re-verifies the digest of the decompressed content, so a tampered or
// corrupted artifact is rejected rather than returned.
func (store *Store) Get(digest string) ([]byte, error) {
	digestHex, err := normalizeDigest(digest)
	if err != nil {
		return nil, err
	}

	compressed, err := os.ReadFile(store.artifactPath(digestHex))
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", digestHex, err)
	}

	content, err := io.ReadAll(brotli.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress artifact %s: %w", digestHex, err)
	}

	actual := custos.DigestContent(content)
	if hex.EncodeToString(actual[:]) != digestHex {
		return nil, fmt.Errorf("artifact %s failed digest verification", digestHex)
	}

	return content, nil
}

// Path returns the file path an artifact with the given digest would occupy.
func (store *Store) Path(digest string) (string, error) {
	digestHex, err := normalizeDigest(digest)
	if err != nil {
		return "", err
	}
	return store.artifactPath(digestHex), nil
}

func (store *Store) artifactPath(digestHex string) string {
	return filepath.Join(store.dir, digestHex+".br")
}

func normalizeDigest(digest string) (string, error) {
	trimmed := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(digest), "0x"))
	if len(trimmed) != 64 {
		return "", fmt.Errorf("digest must be 32 bytes of hex, got %d characters", len(trimmed))
	}
	if _, err := hex.DecodeString(trimmed); err != nil {
		return "", fmt.Errorf("digest is not valid hex: %w", err)
	}
	return trimmed, nil
}
