package app

import (
	"bufio"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WriteMessagePDF renders a plain-text message to a minimal one-column PDF,
// preserving paragraph breaks. Messages are short cover-letter-style text,
// so no layout beyond line wrapping is attempted.
func WriteMessagePDF(text, outPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" {
			pdf.Ln(5)
			continue
		}
		pdf.MultiCell(0, 5, line, "", "L", false)
	}

	return pdf.OutputFileAndClose(outPath)
}
