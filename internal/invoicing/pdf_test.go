package invoicing

import (
	"bytes"
	"testing"
)

func TestItemRowPositions(t *testing.T) {
	if y := itemRowY(0); y != 360 {
		t.Fatalf("first item row at %v, want 360", y)
	}
	if y := itemRowY(4); y != 480 {
		t.Fatalf("fifth item row at %v, want 480", y)
	}
}

func TestTotalsPosition(t *testing.T) {
	// Totals sit at tableTop + (itemCount+1)*rowHeight for any item count.
	for _, n := range []int{0, 1, 3, 10} {
		want := float64(tableTop + (n+1)*rowHeight)
		if got := totalsTop(n); got != want {
			t.Fatalf("totalsTop(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestItemTableRow_RecomputesLineTotal(t *testing.T) {
	row := itemTableRow(LineItem{Description: "Design work", Quantity: 3, UnitPrice: 19.99})
	if row.lineTotal != "$59.97" {
		t.Fatalf("line total %q, want $59.97", row.lineTotal)
	}
	if row.unitCost != "$19.99" {
		t.Fatalf("unit cost %q, want $19.99", row.unitCost)
	}
	if row.quantity != "3" {
		t.Fatalf("quantity %q, want raw 3", row.quantity)
	}
}

func TestTotalsRows_UseSummaryVerbatim(t *testing.T) {
	// Summary values are printed as given, even when they disagree with the
	// item table; consistency is the caller's job.
	rows := totalsRows(Summary{Subtotal: 100, Tax: 10, Total: 999.99}, 0.10)
	if rows[0].lineTotal != "$100.00" || rows[1].lineTotal != "$10.00" || rows[2].lineTotal != "$999.99" {
		t.Fatalf("unexpected totals rows %+v", rows)
	}
	if rows[0].quantity != "Subtotal" || rows[1].quantity != "Tax (10%)" || rows[2].quantity != "Total" {
		t.Fatalf("unexpected totals labels %+v", rows)
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	r := NewPDFRenderer(LoadConfig())
	out, err := r.Render(sampleInvoice())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header")
	}
}

func TestRender_EmptyItemList(t *testing.T) {
	inv := sampleInvoice()
	inv.Items = nil
	r := NewPDFRenderer(LoadConfig())
	out, err := r.Render(inv)
	if err != nil {
		t.Fatalf("render with no items failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected a document for an empty item list")
	}
}

func TestRenderTo_WritesOnce(t *testing.T) {
	var buf bytes.Buffer
	r := NewPDFRenderer(LoadConfig())
	if err := r.RenderTo(&buf, sampleInvoice()); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("nothing written to sink")
	}
}
