// Package pdf generates a printable roster report.
// Employees are listed in a landscape table that repeats its header on
// every page; terminated employees are shaded.
package pdf

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/roster-admin/internal/domain"
)

const (
	FileName    = "employees.pdf"
	ContentType = "application/pdf"
)

type column struct {
	label string
	width float64 // share of the content width
	value func(e *domain.Employee) string
}

var columns = []column{
	{"Employee ID", 0.09, func(e *domain.Employee) string { return e.EmpID }},
	{"Name", 0.14, func(e *domain.Employee) string { return e.ResourceName }},
	{"Job Title", 0.16, func(e *domain.Employee) string { return e.JobTitle }},
	{"Status", 0.07, func(e *domain.Employee) string { return e.Status }},
	{"Team Name", 0.15, func(e *domain.Employee) string { return e.TeamName }},
	{"Manager Name", 0.12, func(e *domain.Employee) string { return e.ManagerName }},
	{"Email", 0.17, func(e *domain.Employee) string { return e.EmailID }},
	{"Hire Date", 0.10, func(e *domain.Employee) string { return e.HireDate }},
}

// Exporter renders the roster as a PDF download.
type Exporter struct {
	Title string
	now   func() time.Time
}

func NewExporter(title string) *Exporter {
	if title == "" {
		title = "EMPLOYEE ROSTER"
	}
	return &Exporter{Title: title, now: time.Now}
}

func (*Exporter) Format() string      { return "pdf" }
func (*Exporter) ContentType() string { return ContentType }
func (*Exporter) FileName() string    { return FileName }

// Export writes every employee of list to w as a paginated table.
func (x *Exporter) Export(ctx context.Context, list []domain.Employee, w io.Writer) error {
	pdf := newDoc()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	generated := x.now().Format(domain.DateLayout)
	pdf.SetFooterFunc(func() {
		pageW, pageH := pdf.GetPageSize()
		marginL, _, marginR, marginB := pdf.GetMargins()
		contentW := pageW - marginL - marginR
		pdf.SetXY(marginL, pageH-marginB-4)
		pdf.SetFont("Helvetica", "I", 7.5)
		pdf.SetTextColor(130, 130, 130)
		pdf.CellFormat(contentW/2, 5, fmt.Sprintf("%d employees | generated %s", len(list), generated), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW/2, 5, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	pdf.AddPage()
	y := drawHeader(pdf, x.Title)

	_, pageH := pdf.GetPageSize()
	_, _, _, marginB := pdf.GetMargins()
	rowH := 6.0

	if len(list) == 0 {
		marginL, _, _, _ := pdf.GetMargins()
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetXY(marginL, y+2)
		pdf.CellFormat(0, rowH, "No employees found", "", 1, "L", false, 0, "")
	}

	for i := range list {
		if err := ctx.Err(); err != nil {
			return err
		}
		if y+rowH > pageH-marginB-8 {
			pdf.AddPage()
			y = drawHeader(pdf, x.Title)
		}
		drawRow(pdf, tr, &list[i], i, y, rowH)
		y += rowH
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render roster pdf: %w", err)
	}
	return nil
}

func newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(12, 12, 12)
	pdf.SetAutoPageBreak(false, 12)
	pdf.AliasNbPages("{nb}")
	return pdf
}

// drawHeader draws the title bar and the table header, returning the y
// position of the first data row.
func drawHeader(pdf *fpdf.Fpdf, title string) float64 {
	pageW, _ := pdf.GetPageSize()
	marginL, marginT, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	// ── Title bar ────────────────────────────────────────────────────────────
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(marginL, marginT, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(marginL+2, marginT+1.5)
	pdf.CellFormat(contentW-4, 7, title, "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// ── Table header ─────────────────────────────────────────────────────────
	y := marginT + 13
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetXY(marginL, y)
	for _, c := range columns {
		pdf.CellFormat(contentW*c.width, 7, c.label, "1", 0, "L", true, 0, "")
	}
	return y + 7
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, e *domain.Employee, i int, y, rowH float64) {
	pageW, _ := pdf.GetPageSize()
	marginL, _, marginR, _ := pdf.GetMargins()
	contentW := pageW - marginL - marginR

	switch {
	case e.IsTerminated():
		pdf.SetFillColor(250, 228, 228)
	case i%2 == 0:
		pdf.SetFillColor(250, 250, 250)
	default:
		pdf.SetFillColor(255, 255, 255)
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(marginL, y)
	for _, c := range columns {
		w := contentW * c.width
		pdf.CellFormat(w, rowH, tr(fit(pdf, c.value(e), w-2)), "1", 0, "L", true, 0, "")
	}
}

// fit shortens s with an ellipsis until it fits into width.
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && pdf.GetStringWidth(string(r)+"...") > width {
		r = r[:len(r)-1]
	}
	return string(r) + "..."
}
