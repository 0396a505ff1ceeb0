package report

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jung-kurt/gofpdf"
)

// SaveSummaryPDF renders the run summary into a PDF document. When the input
// hash is known a QR code of it is placed under the summary table.
func SaveSummaryPDF(s Summary, out string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Conversion Summary", false)
	pdf.SetAuthor("navtext", false)
	pdf.SetCreator("navtext", false)
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	addPDFTitle(pdf, "Conversion Summary")
	addFilesSection(pdf, s)
	addCountersSection(pdf, s)
	if err := addHashSection(pdf, s.InputSha256); err != nil {
		return err
	}

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.OutputFileAndClose(out)
}

func addPDFTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
}

type row struct {
	label string
	value string
}

func addRows(pdf *gofpdf.Fpdf, heading string, rows []row) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, heading)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, r := range rows {
		pdf.CellFormat(50, 6, r.label, "", 0, "L", false, 0, "")
		pdf.MultiCell(0, 6, emptyFallback(r.value, "-"), "", "L", false)
	}
	pdf.Ln(4)
}

func addFilesSection(pdf *gofpdf.Fpdf, s Summary) {
	addRows(pdf, "Files", []row{
		{label: "Input", value: s.Input},
		{label: "Output", value: s.Output},
		{label: "Trigger output", value: s.Trigger},
		{label: "Timezone", value: s.Timezone},
		{label: "Started", value: startedLabel(s.StartedAt)},
		{label: "Duration", value: (time.Duration(s.DurationMs) * time.Millisecond).String()},
	})
}

func addCountersSection(pdf *gofpdf.Fpdf, s Summary) {
	addRows(pdf, "Decoding", []row{
		{label: "Bytes read", value: humanize.Comma(int64(s.Bytes)) + " (" + humanize.IBytes(s.Bytes) + ")"},
		{label: "Packets decoded", value: humanize.Comma(int64(s.Packets))},
		{label: "Bytes skipped", value: humanize.Comma(int64(s.Skipped))},
		{label: "Regular lines", value: strconv.FormatUint(s.Regular, 10)},
		{label: "Trigger lines", value: strconv.FormatUint(s.Triggers, 10)},
		{label: "Dropped updates", value: strconv.FormatUint(s.Dropped, 10)},
	})
}

func addHashSection(pdf *gofpdf.Fpdf, hash string) error {
	if strings.TrimSpace(hash) == "" {
		return nil
	}
	png, err := HashToQR(hash, 256)
	if err != nil {
		return err
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Input SHA-256")
	pdf.Ln(8)
	pdf.SetFont("Courier", "", 9)
	pdf.MultiCell(0, 5, hash, "", "L", false)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("input-hash", opts, bytes.NewReader(png))
	pdf.ImageOptions("input-hash", pdf.GetX(), pdf.GetY()+2, 40, 40, false, opts, 0, "")
	return nil
}

func startedLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func emptyFallback(val, fallback string) string {
	if strings.TrimSpace(val) == "" {
		return fallback
	}
	return val
}
