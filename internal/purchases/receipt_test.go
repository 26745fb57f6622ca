package purchases

import (
	"regexp"
	"testing"
	"time"
)

var receiptPattern = regexp.MustCompile(`^RCP-[0-9A-F]+-[A-Z0-9]{6}$`)

func TestNewReceiptIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewReceiptID()
		if !receiptPattern.MatchString(id) {
			t.Fatalf("receipt id %q does not match expected format", id)
		}
	}
}

func TestReceiptIDEncodesTimestamp(t *testing.T) {
	at := time.Unix(0x68B0C000, 0)
	id := newReceiptIDAt(at)
	want := "RCP-68B0C000-"
	if id[:len(want)] != want {
		t.Fatalf("expected prefix %q, got %q", want, id)
	}
}

func TestReceiptIDsDiffer(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := NewReceiptID()
		if seen[id] {
			t.Fatalf("duplicate receipt id %q", id)
		}
		seen[id] = true
	}
}
