package orders

import (
	"strings"
	"testing"
)

func TestGenerateReference(t *testing.T) {
	g := NewReferenceGenerator("test-secret")

	ref := g.Generate("1")
	if !strings.HasPrefix(ref, "BSTN-") {
		t.Fatalf("unexpected reference shape: %s", ref)
	}
	if len(ref) != len("BSTN-XXXX-XXXX") {
		t.Fatalf("unexpected reference length: %s", ref)
	}
	if ref != strings.ToUpper(ref) {
		t.Fatalf("reference should be upper case: %s", ref)
	}
}

func TestGenerateReferenceIsUnique(t *testing.T) {
	g := NewReferenceGenerator("test-secret")

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := g.Generate("1")
		if seen[ref] {
			t.Fatalf("duplicate reference generated: %s", ref)
		}
		seen[ref] = true
	}
}
