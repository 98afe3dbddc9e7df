package domain

import "testing"

func TestTokenDigest(t *testing.T) {
	a := TokenDigest("tok-1")
	b := TokenDigest("tok-2")

	if len(a) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(a))
	}
	if a == b {
		t.Fatalf("distinct tokens must have distinct digests")
	}
	if a != TokenDigest("tok-1") {
		t.Fatalf("digest must be deterministic")
	}
	if a == "tok-1" {
		t.Fatalf("digest must not echo the plaintext")
	}
}
