package infra

// pdf.go — bill PDF export using go-pdf/fpdf.
// Renders a receipt-style document with:
//   - App name header
//   - Generation timestamp
//   - Item table (brand, category, final price)
//   - Savings line (if any discounted item is included)
//   - Bold total and item count
//
// The document is returned as bytes so the HTTP layer can stream it
// directly instead of writing to a storage directory.

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Pasiduchamod/CompareShop/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateBillPDF renders the given bill items and totals as a PDF.
// currencySymbol prefixes every money value, matching the on-screen bill.
func GenerateBillPDF(items []dto.BillProduct, totals dto.BillTotalResponse, currencySymbol string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30 // total margins = 30mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "CompareShop", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Shopping Bill", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006  15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Items header ──────────────────────────────────────────────────────────
	col1 := contentW * 0.38 // brand
	col2 := contentW * 0.28 // category
	col3 := contentW * 0.17 // price
	col4 := contentW * 0.17 // final price

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Product", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Category", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Final", "B", 1, "R", false, 0, "")

	// ── Item rows ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, item := range items {
		brand := item.Product.Brand
		if brand == "" {
			brand = "(unbranded)"
		}
		if len(brand) > 30 {
			brand = brand[:29] + "…"
		}
		category := item.CategoryName
		if len(category) > 22 {
			category = category[:21] + "…"
		}
		pdf.CellFormat(col1, 6, brand, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, category, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, currencySymbol+item.Product.Price.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, currencySymbol+item.Product.FinalPrice.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Totals ────────────────────────────────────────────────────────────────
	if totals.TotalSavings.IsPositive() {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(col1+col2+col3, 6, "You saved:", "", 0, "L", false, 0, "")
		pdf.CellFormat(col4, 6, "-"+currencySymbol+totals.TotalSavings.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3, 7, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col4, 7, currencySymbol+totals.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ────────────────────────────────────────────────────────────────
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("%d item(s)", totals.ItemCount), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render bill: %w", err)
	}
	return buf.Bytes(), nil
}
