// Package document turns binary résumé files into plain text and flags documents
// that look like scanned images without a text layer.
package document

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	// DefaultScannedThreshold is the minimum number of non-space characters a
	// document needs to be treated as text-based.
	DefaultScannedThreshold = 100
	// DefaultMaxFileSize is the largest accepted document, in bytes.
	DefaultMaxFileSize = 10 * 1024 * 1024
)

var (
	// ErrUnsupportedFormat is returned for files whose extension has no provider.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrTooLarge is returned for files above the configured size limit.
	ErrTooLarge = errors.New("document exceeds size limit")
)

// Text is the decoded content of a document.
type Text struct {
	Content       string
	LikelyScanned bool
}

// NewText wraps content and derives LikelyScanned using threshold.
func NewText(content string, threshold int) Text {
	return Text{
		Content:       content,
		LikelyScanned: IsLikelyScanned(content, threshold),
	}
}

// IsLikelyScanned reports whether the trimmed content is shorter than threshold runes.
func IsLikelyScanned(content string, threshold int) bool {
	if threshold <= 0 {
		threshold = DefaultScannedThreshold
	}
	return utf8.RuneCountInString(strings.TrimSpace(content)) < threshold
}

// Provider decodes the raw bytes of one document format into text.
type Provider interface {
	Name() string
	Text(data []byte) (string, error)
}

// Extractor selects a provider by file extension and decodes documents.
type Extractor struct {
	providers        map[string]Provider
	maxFileSize      int64
	scannedThreshold int
	logger           *zap.Logger
}

// Option customises an Extractor.
type Option func(*Extractor)

// WithMaxFileSize overrides DefaultMaxFileSize.
func WithMaxFileSize(size int64) Option {
	return func(e *Extractor) {
		if size > 0 {
			e.maxFileSize = size
		}
	}
}

// WithScannedThreshold overrides DefaultScannedThreshold.
func WithScannedThreshold(threshold int) Option {
	return func(e *Extractor) {
		if threshold > 0 {
			e.scannedThreshold = threshold
		}
	}
}

// WithProvider registers p for the given extensions, replacing existing ones.
func WithProvider(p Provider, extensions ...string) Option {
	return func(e *Extractor) {
		for _, ext := range extensions {
			e.providers[normalizeExt(ext)] = p
		}
	}
}

// NewExtractor returns an extractor for PDF, DOCX, HTML and plain text documents.
func NewExtractor(logger *zap.Logger, opts ...Option) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Extractor{
		providers:        make(map[string]Provider),
		maxFileSize:      DefaultMaxFileSize,
		scannedThreshold: DefaultScannedThreshold,
		logger:           logger,
	}

	pdf, docx, html, plain := PDF{}, DOCX{}, HTML{}, Plain{}
	for _, ext := range []string{".pdf", ".xps", ".epub"} {
		e.providers[ext] = pdf
	}
	e.providers[".docx"] = docx
	e.providers[".html"] = html
	e.providers[".htm"] = html
	e.providers[".txt"] = plain
	e.providers[".md"] = plain

	for _, opt := range opts {
		opt(e)
	}

	// The decompressed body is bounded by the same limit as the file.
	if d, ok := e.providers[".docx"].(DOCX); ok && d.MaxBodySize == 0 {
		e.providers[".docx"] = DOCX{MaxBodySize: e.maxFileSize}
	}

	return e
}

// Supports reports whether the extension of path has a provider.
func (e *Extractor) Supports(path string) bool {
	_, ok := e.providers[normalizeExt(filepath.Ext(path))]
	return ok
}

// Extract reads and decodes the document at path. Errors are returned only for
// boundary problems: an unsupported extension, an oversize or unreadable file.
// A document the provider cannot decode yields empty text flagged as scanned.
func (e *Extractor) Extract(ctx context.Context, path string) (Text, error) {
	if err := ctx.Err(); err != nil {
		return Text{}, err
	}

	ext := normalizeExt(filepath.Ext(path))
	provider, ok := e.providers[ext]
	if !ok {
		return Text{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	info, err := os.Stat(path)
	if err != nil {
		return Text{}, fmt.Errorf("stat document: %w", err)
	}
	if info.Size() > e.maxFileSize {
		return Text{}, fmt.Errorf("%w: %d bytes > %d bytes", ErrTooLarge, info.Size(), e.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Text{}, fmt.Errorf("read document: %w", err)
	}

	return e.Decode(provider, data, path), nil
}

// Decode runs provider over data. Provider failures are logged and reported as a
// scanned document with empty text.
func (e *Extractor) Decode(provider Provider, data []byte, path string) Text {
	content, err := provider.Text(data)
	if err != nil {
		e.logger.Warn("extracting document text failed, treating as scanned",
			zap.String("path", path),
			zap.String("provider", provider.Name()),
			zap.Error(err),
		)
		return Text{Content: "", LikelyScanned: true}
	}

	text := NewText(normalizeNewlines(content), e.scannedThreshold)
	e.logger.Debug("extracted document text",
		zap.String("path", path),
		zap.String("provider", provider.Name()),
		zap.Int("length", utf8.RuneCountInString(text.Content)),
		zap.Bool("likely_scanned", text.LikelyScanned),
	)

	return text
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
