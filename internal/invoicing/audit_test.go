package invoicing

import (
	"context"
	"testing"
	"time"
)

func TestHashChain_LinksEntries(t *testing.T) {
	rec := NewMemoryAuditRecorder()
	ctx := context.Background()

	first, err := HashChain(ctx, rec, AuditLog{AuditID: "a", Action: "invoice.save", Ts: time.Now()})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if first.PrevHash != "" {
		t.Fatalf("first entry should have no previous hash")
	}
	if first.Hash == "" {
		t.Fatalf("first entry should be hashed")
	}

	second, err := HashChain(ctx, rec, AuditLog{AuditID: "b", Action: "invoice.send", Ts: time.Now()})
	if err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if second.PrevHash != first.Hash {
		t.Fatalf("second entry not linked to first")
	}

	last, err := rec.Last(ctx)
	if err != nil {
		t.Fatalf("last failed: %v", err)
	}
	if last.AuditID != "b" {
		t.Fatalf("expected latest entry, got %s", last.AuditID)
	}
}
