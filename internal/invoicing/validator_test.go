package invoicing

import "testing"

func TestValidate_Success(t *testing.T) {
	v := Validator{Config: LoadConfig()}
	result := v.Validate(sampleInvoice())
	if !result.Valid {
		t.Fatalf("expected valid, got errors %+v", result.Errors)
	}
}

func TestValidate_NegativeQuantity(t *testing.T) {
	v := Validator{Config: LoadConfig()}
	inv := sampleInvoice()
	inv.Items[0].Quantity = -1
	result := v.Validate(inv)
	if result.Valid {
		t.Fatalf("expected invalid quantity")
	}
}

func TestValidate_NegativeUnitPrice(t *testing.T) {
	v := Validator{Config: LoadConfig()}
	inv := sampleInvoice()
	inv.Items[0].UnitPrice = -0.01
	result := v.Validate(inv)
	if result.Valid {
		t.Fatalf("expected invalid unit price")
	}
}

func TestRecomputeSummary(t *testing.T) {
	v := Validator{Config: LoadConfig()}
	sum := v.RecomputeSummary([]LineItem{
		{Description: "Dev", Quantity: 2, UnitPrice: 19.99},
	})
	if sum.Subtotal != 39.98 {
		t.Fatalf("subtotal %v, want 39.98", sum.Subtotal)
	}
	if sum.Tax != 4.00 {
		t.Fatalf("tax %v, want 4.00", sum.Tax)
	}
	if sum.Total != 43.98 {
		t.Fatalf("total %v, want 43.98", sum.Total)
	}
}

func TestRecomputeSummary_NoItems(t *testing.T) {
	v := Validator{Config: LoadConfig()}
	sum := v.RecomputeSummary(nil)
	if sum.Subtotal != 0 || sum.Tax != 0 || sum.Total != 0 {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}
