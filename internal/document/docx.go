package document

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"
	"regexp"
	"strings"
)

const docxBody = "word/document.xml"

var docxTagRe = regexp.MustCompile(`<[^>]+>`)

// ErrBodyTooLarge is returned when the decompressed document body exceeds the limit.
var ErrBodyTooLarge = errors.New("docx body too large")

// DOCX extracts paragraph text from Office Open XML documents.
type DOCX struct {
	// MaxBodySize caps the decompressed size of word/document.xml. Zero means
	// DefaultMaxFileSize.
	MaxBodySize int64
}

func (DOCX) Name() string { return "docx" }

// Text reads word/document.xml and turns paragraphs into lines.
func (d DOCX) Text(data []byte) (string, error) {
	limit := d.MaxBodySize
	if limit <= 0 {
		limit = DefaultMaxFileSize
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var body []byte
	for _, f := range zr.File {
		if f.Name != docxBody {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("open %s: %w", docxBody, err)
		}
		body, err = io.ReadAll(io.LimitReader(rc, limit+1))
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", docxBody, err)
		}
		if int64(len(body)) > limit {
			return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrBodyTooLarge, docxBody, limit)
		}
		break
	}
	if len(body) == 0 {
		return "", errors.New("no document body found in docx")
	}

	xml := string(body)
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	xml = strings.ReplaceAll(xml, "<w:br/>", "\n")
	text := docxTagRe.ReplaceAllString(xml, "")

	return html.UnescapeString(text), nil
}
