package hasher

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHash_Deterministic(t *testing.T) {
	in := "same input"
	if Hash(in) != Hash(in) {
		t.Fatalf("hash must be deterministic")
	}
}

func TestHash_DifferentInputs(t *testing.T) {
	if Hash("a") == Hash("b") {
		t.Fatalf("different inputs should not produce the same hash")
	}
}

func TestHash_KnownVector(t *testing.T) {
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := Hash("hello"); got != want {
		t.Fatalf("unexpected hash: got %s want %s", got, want)
	}
}

func TestSumReader_MatchesHash(t *testing.T) {
	got, err := SumReader(strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Hash("hello") {
		t.Fatalf("reader sum %s differs from string sum %s", got, Hash("hello"))
	}
}

func TestSumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := SumFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != Hash("hello") {
		t.Fatalf("file sum mismatch: %s", got)
	}

	if _, err := SumFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func BenchmarkHash(b *testing.B) {
	in := "some reasonably sized input"

	for b.Loop() {
		_ = Hash(in)
	}
}
