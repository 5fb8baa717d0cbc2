package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/cv-extractor/internal/document"
	"github.com/spigell/cv-extractor/internal/fields"
	"github.com/spigell/cv-extractor/internal/skills"
	"github.com/spigell/cv-extractor/internal/taxonomy"
)

// DefaultSummaryLimit is the number of runes of the summary section kept.
const DefaultSummaryLimit = 500

// TextSource turns a document path into text.
type TextSource interface {
	Extract(ctx context.Context, path string) (document.Text, error)
}

// Parser runs the extraction pipeline. It holds only immutable dependencies and is
// safe for concurrent use.
type Parser struct {
	source       TextSource
	logger       *zap.Logger
	summaryLimit int
	stages       []stage
}

// New creates a parser. A nil matcher matches no skills; a nil logger discards logs.
func New(source TextSource, matcher *skills.Matcher, logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	if matcher == nil {
		matcher = skills.NewMatcher(taxonomy.Empty())
	}

	return &Parser{
		source:       source,
		logger:       logger,
		summaryLimit: DefaultSummaryLimit,
		stages: []stage{
			fieldStage{},
			sectionStage{},
			entryStage{},
			skillStage{matcher: matcher},
			confidenceStage{},
		},
	}
}

// Parse obtains the text of the document at path and extracts it. The returned
// error covers only input problems reported by the text source.
func (p *Parser) Parse(ctx context.Context, path string) (*Result, error) {
	if p.source == nil {
		return nil, errors.New("text source is not configured")
	}

	logger := p.logger.With(zap.String("parse_id", uuid.NewString()), zap.String("path", path))
	logger.Debug("parse", zap.Stringer("state", StateReceived))

	text, err := p.source.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract text from %s: %w", path, err)
	}

	return p.parse(text, logger), nil
}

// ParseText extracts an already decoded document. It never fails.
func (p *Parser) ParseText(text document.Text) *Result {
	return p.parse(text, p.logger.With(zap.String("parse_id", uuid.NewString())))
}

// Extract runs field, section, entry, skill and confidence extraction on text
// without the scanned-document check.
func (p *Parser) Extract(text string) *Parsed {
	return p.extract(text, p.logger)
}

func (p *Parser) parse(text document.Text, logger *zap.Logger) *Result {
	logger.Debug("parse",
		zap.Stringer("state", StateTextObtained),
		zap.Int("length", len(text.Content)),
		zap.Bool("likely_scanned", text.LikelyScanned),
	)

	if text.LikelyScanned {
		logger.Info("document looks scanned, skipping extraction",
			zap.Stringer("state", StateScannedShortCircuit),
		)
		return &Result{Scanned: newScanned(text.Content)}
	}

	return &Result{Parsed: p.extract(text.Content, logger)}
}

func (p *Parser) extract(text string, logger *zap.Logger) *Parsed {
	x := &extraction{text: text}

	for _, st := range p.stages {
		found := st.Apply(x)
		logger.Debug("parse", append([]zap.Field{zap.Stringer("state", st.State())}, found...)...)
	}

	parsed := &Parsed{
		FirstName:     x.name.First,
		LastName:      x.name.Last,
		Username:      username(x.email, x.name),
		Email:         x.email,
		Phone:         x.phone,
		Links:         x.links,
		Summary:       p.summary(x),
		Skills:        x.skills,
		Education:     x.education,
		Experience:    x.experience,
		Projects:      x.projects,
		ExtractedText: text,
		Confidence:    x.confidence,
	}

	logger.Debug("parse",
		zap.Stringer("state", StateDone),
		zap.Float64("overall", parsed.Confidence.Overall),
	)

	return parsed
}

func (p *Parser) summary(x *extraction) *string {
	if !x.hasSummary {
		return nil
	}
	summary := x.summaryText
	if runes := []rune(summary); len(runes) > p.summaryLimit {
		summary = string(runes[:p.summaryLimit])
	}
	return &summary
}

func username(email *string, name fields.Name) *string {
	if email != nil {
		local := fields.LocalPart(*email)
		return &local
	}
	if name.First != nil && name.Last != nil {
		u := strings.ToLower(*name.First) + "." + strings.ToLower(*name.Last)
		return &u
	}
	return nil
}
