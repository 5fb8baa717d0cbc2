// Package resume composes the field, section, skill and confidence extractors into
// a single parse of a résumé document.
package resume

import (
	"encoding/json"
	"errors"

	"github.com/spigell/cv-extractor/internal/confidence"
	"github.com/spigell/cv-extractor/internal/sections"
)

// ScannedError is the error code reported for documents without a text layer.
const ScannedError = "scanned_pdf"

const scannedMessage = "This appears to be a scanned PDF with no extractable text. Please upload a text-based PDF."

// Parsed is the structured candidate data extracted from a text-based document.
type Parsed struct {
	FirstName     *string           `json:"firstName" yaml:"firstName"`
	LastName      *string           `json:"lastName" yaml:"lastName"`
	Username      *string           `json:"username" yaml:"username"`
	Email         *string           `json:"email" yaml:"email"`
	Phone         *string           `json:"phone" yaml:"phone"`
	Location      *string           `json:"location" yaml:"location"`
	Links         []string          `json:"links" yaml:"links"`
	Headline      *string           `json:"headline" yaml:"headline"`
	Summary       *string           `json:"summary" yaml:"summary"`
	Skills        []string          `json:"skills" yaml:"skills"`
	Education     []sections.Entry  `json:"education" yaml:"education"`
	Experience    []sections.Entry  `json:"experience" yaml:"experience"`
	Projects      []sections.Entry  `json:"projects" yaml:"projects"`
	ExtractedText string            `json:"extractedText" yaml:"extractedText"`
	Confidence    confidence.Vector `json:"confidence" yaml:"confidence"`
}

// ScannedConfidence is the confidence reported for scanned documents.
type ScannedConfidence struct {
	Overall float64 `json:"overall" yaml:"overall"`
}

// Scanned is returned instead of Parsed when the document has no usable text.
type Scanned struct {
	Error         string            `json:"error" yaml:"error"`
	Message       string            `json:"message" yaml:"message"`
	ExtractedText string            `json:"extractedText" yaml:"extractedText"`
	Confidence    ScannedConfidence `json:"confidence" yaml:"confidence"`
}

func newScanned(text string) *Scanned {
	return &Scanned{
		Error:         ScannedError,
		Message:       scannedMessage,
		ExtractedText: text,
	}
}

// Result holds exactly one of Parsed or Scanned.
type Result struct {
	Parsed  *Parsed
	Scanned *Scanned
}

// IsScanned reports whether the document was short-circuited as scanned.
func (r *Result) IsScanned() bool {
	return r != nil && r.Scanned != nil
}

// Overall returns the overall confidence of either variant.
func (r *Result) Overall() float64 {
	switch {
	case r == nil:
		return 0
	case r.Parsed != nil:
		return r.Parsed.Confidence.Overall
	default:
		return 0
	}
}

// Text returns the extracted text of either variant.
func (r *Result) Text() string {
	switch {
	case r == nil:
		return ""
	case r.Scanned != nil:
		return r.Scanned.ExtractedText
	case r.Parsed != nil:
		return r.Parsed.ExtractedText
	default:
		return ""
	}
}

// Value returns the populated variant.
func (r *Result) Value() (any, error) {
	switch {
	case r == nil:
		return nil, errors.New("empty result")
	case r.Scanned != nil:
		return r.Scanned, nil
	case r.Parsed != nil:
		return r.Parsed, nil
	default:
		return nil, errors.New("empty result")
	}
}

// MarshalJSON encodes the populated variant.
func (r *Result) MarshalJSON() ([]byte, error) {
	v, err := r.Value()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// MarshalYAML encodes the populated variant.
func (r *Result) MarshalYAML() (any, error) {
	return r.Value()
}
