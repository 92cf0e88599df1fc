package download

import (
	"strings"
	"testing"
)

func TestNewOperationID(t *testing.T) {
	id1 := newOperationID("fetch")
	id2 := newOperationID("fetch")

	if id1 == id2 {
		t.Error("Expected different operation IDs")
	}

	if !strings.HasPrefix(id1, "fetch-") {
		t.Errorf("Expected ID to start with 'fetch-', got: %s", id1)
	}

	// fetch- + 36 chars for UUID
	if len(id1) != len("fetch-")+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len("fetch-")+36, len(id1), id1)
	}
}
