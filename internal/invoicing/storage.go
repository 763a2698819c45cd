package invoicing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store persists invoice documents. Implementations return ErrNotFound for
// unknown ids and wrap connectivity faults in ErrStorageUnavailable.
type Store interface {
	// SaveInvoice assigns an id and creation timestamp and persists the record.
	SaveInvoice(ctx context.Context, inv Invoice) (Invoice, error)
	// ListInvoices returns all invoices, most recently created first.
	ListInvoices(ctx context.Context) ([]Invoice, error)
	// UpdateStatus sets paymentStatus on an existing invoice.
	UpdateStatus(ctx context.Context, id string, status PaymentStatus) (Invoice, error)
	// NumbersForYear returns the invoice numbers carrying the year's prefix,
	// most recently created first. The read is a plain snapshot: no lock is
	// held between it and any allocation computed from it.
	NumbersForYear(ctx context.Context, year int) ([]string, error)
}

// InMemoryStore keeps invoices in process memory. It backs tests and local
// runs without a database.
type InMemoryStore struct {
	mu       sync.RWMutex
	invoices []Invoice
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) SaveInvoice(ctx context.Context, inv Invoice) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	inv.ID = uuid.NewString()
	inv.CreatedAt = time.Now().UTC()
	s.invoices = append(s.invoices, inv)
	return inv, ctx.Err()
}

func (s *InMemoryStore) ListInvoices(_ context.Context) ([]Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Invoice, 0, len(s.invoices))
	for i := len(s.invoices) - 1; i >= 0; i-- {
		out = append(out, s.invoices[i])
	}
	return out, nil
}

func (s *InMemoryStore) UpdateStatus(_ context.Context, id string, status PaymentStatus) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.invoices[i].PaymentStatus = status
			return s.invoices[i], nil
		}
	}
	return Invoice{}, ErrNotFound
}

func (s *InMemoryStore) NumbersForYear(ctx context.Context, year int) ([]string, error) {
	all, err := s.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	prefix := fmt.Sprintf("%s-%d", numberPrefix, year)
	var numbers []string
	for _, inv := range all {
		if strings.HasPrefix(inv.InvoiceInfo.Number, prefix) {
			numbers = append(numbers, inv.InvoiceInfo.Number)
		}
	}
	return numbers, nil
}
