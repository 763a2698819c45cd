package invoicing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Validator struct {
	Config Config
}

// Validate checks the fields the service relies on. The renderer itself
// enforces nothing; it trusts whatever the service hands it.
func (v Validator) Validate(inv Invoice) ValidationResult {
	errors := make([]ValidationErrorItem, 0)

	for i, item := range inv.Items {
		path := fmt.Sprintf("items[%d]", i)
		if item.Quantity < 0 {
			errors = append(errors, ValidationErrorItem{Path: path + ".quantity", Message: "Quantity must be non-negative"})
		}
		if item.UnitPrice < 0 {
			errors = append(errors, ValidationErrorItem{Path: path + ".unitPrice", Message: "Unit price must be non-negative"})
		}
	}

	return ValidationResult{Valid: len(errors) == 0, Errors: errors}
}

// RecomputeSummary derives subtotal, tax, and total from the items. The
// service calls this before persisting or rendering, so the summary stored
// with the document is always consistent with its items at that point.
func (v Validator) RecomputeSummary(items []LineItem) Summary {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Quantity).Mul(decimal.NewFromFloat(item.UnitPrice))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(decimal.NewFromFloat(v.Config.TaxRate)).Round(2)
	total := subtotal.Add(tax)

	return Summary{
		Subtotal: subtotal.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}
