package invoicing

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/jung-kurt/gofpdf"
)

// Layout constants in points on an A4 portrait page.
const (
	pageMargin  = 50
	headerTop   = 50
	metaTop     = 200
	metaLineGap = 15
	metaLeftX   = 50
	metaRightX  = 300
	tableTop    = 330
	rowHeight   = 30
	ruleRightX  = 550
	footerY     = 780
	footerWidth = 500
	lineHeight  = 12
)

// PDFRenderer lays an invoice out onto a single fixed-size page. There is no
// pagination: a very long item table overlaps the totals and footer.
type PDFRenderer struct {
	cfg Config
}

func NewPDFRenderer(cfg Config) PDFRenderer {
	return PDFRenderer{cfg: cfg}
}

// Render produces the finished document bytes, for callers that need the
// whole attachment in memory.
func (r PDFRenderer) Render(inv Invoice) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(&buf, inv); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo writes the document to w and finalizes it exactly once. The sink
// receives the complete byte stream; closing w is the caller's business.
func (r PDFRenderer) RenderTo(w io.Writer, inv Invoice) error {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()
	pdf.SetTextColor(68, 68, 68)

	pageWidth, _ := pdf.GetPageSize()
	right := pageWidth - pageMargin

	r.header(pdf, right)
	r.metadata(pdf, inv)
	r.itemTable(pdf, inv.Items, right)
	r.totalsBlock(pdf, inv, right)
	r.footer(pdf)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%w: %v", ErrRenderFailure, err)
	}
	return nil
}

func (r PDFRenderer) header(pdf *gofpdf.Fpdf, right float64) {
	pdf.SetFont("Helvetica", "", 20)
	cell(pdf, pageMargin, headerTop, right-pageMargin, "R", "INVOICE")
	pdf.SetFontSize(10)
	cell(pdf, pageMargin, 65, right-pageMargin, "R", r.cfg.CompanyName)
	cell(pdf, pageMargin, 80, right-pageMargin, "R", r.cfg.CompanyAddress)
	cell(pdf, pageMargin, 95, right-pageMargin, "R", r.cfg.CompanyCityStateZip)
}

func (r PDFRenderer) metadata(pdf *gofpdf.Fpdf, inv Invoice) {
	pdf.SetFont("Helvetica", "", 10)
	cell(pdf, metaLeftX, metaTop, 230, "L", "Invoice Number: "+inv.InvoiceInfo.Number)
	cell(pdf, metaLeftX, metaTop+metaLineGap, 230, "L", "Invoice Date: "+formatDate(inv.InvoiceInfo.Date.Time))
	cell(pdf, metaLeftX, metaTop+2*metaLineGap, 230, "L", "Due Date: "+formatDate(inv.InvoiceInfo.DueDate.Time))

	cell(pdf, metaRightX, metaTop, 245, "L", inv.Client.Name)
	cell(pdf, metaRightX, metaTop+metaLineGap, 245, "L", inv.Client.Address)
	// Composed unguarded from the three sub-fields; missing ones stay blank.
	cityLine := fmt.Sprintf("%s, %s, %s", inv.Client.City, inv.Client.State, inv.Client.Zip)
	cell(pdf, metaRightX, metaTop+2*metaLineGap, 245, "L", cityLine)
}

func (r PDFRenderer) itemTable(pdf *gofpdf.Fpdf, items []LineItem, right float64) {
	pdf.SetFont("Helvetica", "B", 10)
	tableRowCells(pdf, tableTop, tableRow{"Item", "Unit Cost", "Quantity", "Line Total"}, right)
	hr(pdf, tableTop+20)

	pdf.SetFont("Helvetica", "", 10)
	for i, item := range items {
		y := itemRowY(i)
		tableRowCells(pdf, y, itemTableRow(item), right)
		hr(pdf, y+20)
	}
}

func (r PDFRenderer) totalsBlock(pdf *gofpdf.Fpdf, inv Invoice, right float64) {
	pdf.SetFont("Helvetica", "B", 10)
	top := totalsTop(len(inv.Items))
	for i, row := range totalsRows(inv.Summary, r.cfg.TaxRate) {
		tableRowCells(pdf, top+float64(i)*20, row, right)
	}
}

func (r PDFRenderer) footer(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "", 10)
	cell(pdf, pageMargin, footerY, footerWidth, "C", r.cfg.FooterText)
}

// tableRow is one row of the four-column item table; totals rows reuse the
// quantity column for the label and the line-total column for the amount.
type tableRow struct {
	item      string
	unitCost  string
	quantity  string
	lineTotal string
}

// itemTableRow recomputes the line total from quantity and unit price,
// independent of the summary block. Quantity is printed as a raw number.
func itemTableRow(item LineItem) tableRow {
	return tableRow{
		item:      item.Description,
		unitCost:  formatCurrency(item.UnitPrice),
		quantity:  strconv.FormatFloat(item.Quantity, 'f', -1, 64),
		lineTotal: formatCurrency(item.Quantity * item.UnitPrice),
	}
}

// totalsRows prints the summary values verbatim, even when they disagree with
// the item table; consistency is the caller's contract.
func totalsRows(s Summary, taxRate float64) []tableRow {
	return []tableRow{
		{quantity: "Subtotal", lineTotal: formatCurrency(s.Subtotal)},
		{quantity: fmt.Sprintf("Tax (%.0f%%)", taxRate*100), lineTotal: formatCurrency(s.Tax)},
		{quantity: "Total", lineTotal: formatCurrency(s.Total)},
	}
}

func itemRowY(index int) float64 {
	return tableTop + float64(index+1)*rowHeight
}

func totalsTop(itemCount int) float64 {
	return tableTop + float64(itemCount+1)*rowHeight
}

func tableRowCells(pdf *gofpdf.Fpdf, y float64, row tableRow, right float64) {
	cell(pdf, pageMargin, y, 220, "L", row.item)
	cell(pdf, 280, y, 90, "R", row.unitCost)
	cell(pdf, 370, y, 90, "R", row.quantity)
	cell(pdf, pageMargin, y, right-pageMargin, "R", row.lineTotal)
}

func cell(pdf *gofpdf.Fpdf, x, y, w float64, align, text string) {
	pdf.SetXY(x, y)
	pdf.CellFormat(w, lineHeight, text, "", 0, align, false, 0, "")
}

func hr(pdf *gofpdf.Fpdf, y float64) {
	pdf.SetDrawColor(170, 170, 170)
	pdf.SetLineWidth(1)
	pdf.Line(pageMargin, y, ruleRightX, y)
}
