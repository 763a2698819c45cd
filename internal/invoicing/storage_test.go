package invoicing

import (
	"context"
	"errors"
	"testing"
)

func TestInMemoryStore_SaveAssignsIdentity(t *testing.T) {
	s := NewInMemoryStore()
	saved, err := s.SaveInvoice(context.Background(), sampleInvoice())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if saved.ID == "" {
		t.Fatalf("expected an id")
	}
	if saved.CreatedAt.IsZero() {
		t.Fatalf("expected a creation timestamp")
	}
}

func TestInMemoryStore_ListNewestFirst(t *testing.T) {
	s := NewInMemoryStore()
	first := sampleInvoice()
	first.InvoiceInfo.Number = "INV-2024-001"
	second := sampleInvoice()
	second.InvoiceInfo.Number = "INV-2024-002"

	ctx := context.Background()
	if _, err := s.SaveInvoice(ctx, first); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := s.SaveInvoice(ctx, second); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	all, err := s.ListInvoices(ctx)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 invoices, got %d", len(all))
	}
	if all[0].InvoiceInfo.Number != "INV-2024-002" {
		t.Fatalf("expected newest first, got %s", all[0].InvoiceInfo.Number)
	}
}

func TestInMemoryStore_UpdateStatus(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	saved, err := s.SaveInvoice(ctx, sampleInvoice())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	updated, err := s.UpdateStatus(ctx, saved.ID, StatusPaid)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PaymentStatus != StatusPaid {
		t.Fatalf("status %s, want Paid", updated.PaymentStatus)
	}
}

func TestInMemoryStore_UpdateStatusUnknownID(t *testing.T) {
	s := NewInMemoryStore()
	_, err := s.UpdateStatus(context.Background(), "nope", StatusPaid)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestInMemoryStore_NumbersForYear(t *testing.T) {
	s := NewInMemoryStore()
	ctx := context.Background()
	for _, n := range []string{"INV-2023-050", "INV-2024-001", "INV-2024-002"} {
		inv := sampleInvoice()
		inv.InvoiceInfo.Number = n
		if _, err := s.SaveInvoice(ctx, inv); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	}

	numbers, err := s.NumbersForYear(ctx, 2024)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(numbers) != 2 {
		t.Fatalf("expected 2 numbers, got %v", numbers)
	}
	if numbers[0] != "INV-2024-002" {
		t.Fatalf("expected most recent first, got %v", numbers)
	}
}
