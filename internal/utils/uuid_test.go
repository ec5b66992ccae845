package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	if a == b {
		t.Fatal("expected distinct identifiers")
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", a, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected uuid v7, got v%d", parsed.Version())
	}
}
