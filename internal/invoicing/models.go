package invoicing

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// PaymentStatus is the settlement state of an invoice.
type PaymentStatus string

const (
	StatusPending PaymentStatus = "Pending"
	StatusPaid    PaymentStatus = "Paid"
	StatusDue     PaymentStatus = "Due"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusDue:
		return true
	}
	return false
}

// Invoice is the stored document. The renderer treats it as read-only and
// trusts Summary as given; the service recomputes Summary from Items before
// persisting or rendering.
type Invoice struct {
	ID            string        `json:"id,omitempty"`
	InvoiceInfo   InvoiceInfo   `json:"invoiceInfo"`
	Client        Client        `json:"client"`
	Project       Project       `json:"project"`
	Items         []LineItem    `json:"items"`
	Summary       Summary       `json:"summary"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
}

type InvoiceInfo struct {
	Number  string             `json:"number"`
	Date    openapi_types.Date `json:"date"`
	DueDate openapi_types.Date `json:"dueDate"`
}

// Client address sub-fields City/State/Zip are only consumed by the PDF
// renderer; absent fields render as empty strings in the composed line.
type Client struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	Zip           string `json:"zip,omitempty"`
	ContactPerson string `json:"contactPerson,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// Project is carried in the document but not rendered into the PDF.
type Project struct {
	Name        string `json:"name,omitempty"`
	ID          string `json:"id,omitempty"`
	Description string `json:"description,omitempty"`
}

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type Summary struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type ValidationErrorItem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Valid  bool                  `json:"valid"`
	Errors []ValidationErrorItem `json:"errors"`
}

// AuditLog is one entry in the hash-chained action trail.
type AuditLog struct {
	AuditID   string    `json:"auditId"`
	RequestID string    `json:"requestId"`
	Actor     string    `json:"actor"`
	Action    string    `json:"action"`
	Ts        time.Time `json:"timestamp"`
	Hash      string    `json:"hash"`
	PrevHash  string    `json:"prevHash"`
}
