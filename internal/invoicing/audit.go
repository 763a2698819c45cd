package invoicing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

type AuditRecorder interface {
	Append(ctx context.Context, entry AuditLog) error
	Last(ctx context.Context) (AuditLog, error)
}

// HashChain links entry to the previously recorded one before appending, so
// the trail detects tampering or loss.
func HashChain(ctx context.Context, rec AuditRecorder, entry AuditLog) (AuditLog, error) {
	prev, _ := rec.Last(ctx)
	entry.PrevHash = prev.Hash
	entry.Hash = hashAudit(entry)
	return entry, rec.Append(ctx, entry)
}

func hashAudit(entry AuditLog) string {
	payload := fmt.Sprintf("%s|%s|%s|%s|%s",
		entry.RequestID, entry.Actor, entry.Action,
		entry.Ts.UTC().Format(time.RFC3339Nano), entry.PrevHash)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// RequestLogger scopes a logger to one request.
func RequestLogger(logger *slog.Logger, requestID string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("requestId", requestID)
}

type MemoryAuditRecorder struct {
	mu      sync.Mutex
	entries []AuditLog
}

func NewMemoryAuditRecorder() *MemoryAuditRecorder {
	return &MemoryAuditRecorder{}
}

func (m *MemoryAuditRecorder) Append(_ context.Context, entry AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MemoryAuditRecorder) Last(_ context.Context) (AuditLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) == 0 {
		return AuditLog{}, fmt.Errorf("empty")
	}
	return m.entries[len(m.entries)-1], nil
}
