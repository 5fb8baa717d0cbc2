package document

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// PDF extracts the text layer of PDF (and other MuPDF-readable) documents.
type PDF struct{}

func (PDF) Name() string { return "pdf" }

// Text concatenates the text of every page.
func (PDF) Text(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var builder strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		page, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("read page %d: %w", i, err)
		}
		builder.WriteString(page)
		if !strings.HasSuffix(page, "\n") {
			builder.WriteString("\n")
		}
	}

	return builder.String(), nil
}
