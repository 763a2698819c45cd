package invoicing

import (
	"fmt"
	"strconv"
	"strings"
)

const numberPrefix = "INV"

// NextInvoiceNumber computes the next sequential invoice number for year.
// numbers must be ordered most-recent-first; the first entry carrying the
// year's prefix wins, its trailing segment is incremented and re-padded to
// three digits. Past 999 the width simply grows. With no prior number for the
// year the sequence starts at 001.
//
// Not concurrency-safe: two callers working from the same snapshot compute
// the same number. The store read is an unlocked snapshot on purpose.
func NextInvoiceNumber(numbers []string, year int) string {
	prefix := fmt.Sprintf("%s-%d", numberPrefix, year)
	for _, n := range numbers {
		if !strings.HasPrefix(n, prefix) {
			continue
		}
		parts := strings.Split(n, "-")
		if len(parts) != 3 {
			continue
		}
		seq, err := strconv.Atoi(parts[2])
		if err != nil {
			continue
		}
		return fmt.Sprintf("%s-%03d", prefix, seq+1)
	}
	return prefix + "-001"
}
