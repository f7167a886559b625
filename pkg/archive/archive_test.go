package archive

import (
	"bytes"
	"encoding/hex"
	"os"
	"testing"

	"github.com/clawcustos/custos-sdk/pkg/custos"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected store error: %v", err)
	}
	return store
}

func TestPutAndGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	content := []byte("full work product behind an inscription")

	artifact, err := store.Put(content)
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	digest := custos.DigestContent(content)
	if artifact.Digest != "0x"+hex.EncodeToString(digest[:]) {
		t.Fatalf("expected artifact digest to match the content digest, got %s", artifact.Digest)
	}
	if artifact.Size != int64(len(content)) {
		t.Fatalf("expected size %d, got %d", len(content), artifact.Size)
	}

	loaded, err := store.Get(artifact.Digest)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if !bytes.Equal(loaded, content) {
		t.Fatal("expected round-tripped content to match")
	}
}

func TestPutIsIdempotent(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Put([]byte("same content"))
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	second, err := store.Put([]byte("same content"))
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	if first.Digest != second.Digest || first.Path != second.Path {
		t.Fatal("expected identical content to map to one artifact")
	}
}

func TestGetRejectsTamperedArtifact(t *testing.T) {
	store := newTestStore(t)

	artifact, err := store.Put([]byte("original content"))
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}

	tampered, err := store.Put([]byte("tampered content"))
	if err != nil {
		t.Fatalf("unexpected put error: %v", err)
	}
	tamperedBytes, err := os.ReadFile(tampered.Path)
	if err != nil {
		t.Fatalf("unexpected read error: %v", err)
	}
	if err := os.WriteFile(artifact.Path, tamperedBytes, 0o644); err != nil {
		t.Fatalf("unexpected write error: %v", err)
	}

	if _, err := store.Get(artifact.Digest); err == nil {
		t.Fatal("expected digest verification to reject tampered artifact")
	}
}

func TestGetRejectsMalformedDigest(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Get("0x1234"); err == nil {
		t.Fatal("expected error for short digest")
	}
	if _, err := store.Get("zz"); err == nil {
		t.Fatal("expected error for non-hex digest")
	}
}

func TestGetMissingArtifact(t *testing.T) {
	store := newTestStore(t)
	digest := custos.DigestContent([]byte("never stored"))
	if _, err := store.Get(hex.EncodeToString(digest[:])); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}
