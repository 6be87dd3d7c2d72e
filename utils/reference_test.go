package utils

import (
	"strings"
	"testing"
)

func TestGenerateReference(t *testing.T) {
	ref := GenerateReference("txn")
	if !strings.HasPrefix(ref, "TXN-") {
		t.Fatalf("expected TXN- prefix, got %q", ref)
	}
	if len(ref) != len("TXN-")+8 {
		t.Fatalf("unexpected length for %q", ref)
	}

	if !strings.HasPrefix(GenerateReference(""), "REF-") {
		t.Fatal("empty prefix should fall back to REF")
	}

	if GenerateReference("TXN") == GenerateReference("TXN") {
		t.Fatal("two references should not collide")
	}
}
