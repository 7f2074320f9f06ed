package service

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

func CSVExport(data [][]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	for _, value := range data {
		if err := writer.Write(value); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func PDFExport(data [][]string, columnWidths []int, name string) ([]byte, error) {
	buf := bytes.Buffer{}

	// Create a new PDF document and write the title and the current date.
	pdf := newReport(name)

	// After that, create the table header and write data.
	pdf = header(pdf, data[0], columnWidths)
	pdf = table(pdf, data[1:], columnWidths)

	err := pdf.Output(&buf)

	return buf.Bytes(), err
}

func newReport(name string) *gofpdf.Fpdf {
	// * landscape ("L") or portrait ("P") orientation,
	// * the unit used for expressing lengths and sizes ("mm"),
	// * the paper format ("Letter"), and
	// * the path to a font directory.
	pdf := gofpdf.New("L", "mm", "Legal", "")

	// add a new page to the document.
	pdf.AddPage()

	// Set the font to "Times", the style to "bold", and the size to 28 points.
	pdf.SetFont("Times", "B", 28)

	pdf.Cell(40, 10, name)

	// The `Ln()` function moves the current position to a new line, with
	// an optional line height parameter.
	pdf.Ln(12)

	pdf.SetFont("Times", "", 20)
	pdf.Cell(40, 10, time.Now().Format("2 Jan 2006 15:04:05"))
	pdf.Ln(20)

	return pdf
}

func header(pdf *gofpdf.Fpdf, hdr []string, widths []int) *gofpdf.Fpdf {
	pdf.SetFont("Times", "B", 12)
	pdf.SetFillColor(240, 240, 240)

	for i, str := range hdr {
		// The `CellFormat()` method takes parameters to format the cell.
		// Create a visible border around
		// the cell, and to enable the background fill.
		pdf.CellFormat(float64(widths[i]), 7, str, "1", 0, "", true, 0, "")
	}

	// `-1` to `Ln()` uses the height of the last printed cell as
	// the line height.
	pdf.Ln(-1)
	return pdf
}

func table(pdf *gofpdf.Fpdf, tbl [][]string, widths []int) *gofpdf.Fpdf {
	// Reset font and fill color.
	pdf.SetFont("Times", "", 12)
	pdf.SetFillColor(255, 255, 255)

	for _, line := range tbl {
		for i, str := range line {
			pdf.CellFormat(float64(widths[i]), 7, str, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	return pdf
}
