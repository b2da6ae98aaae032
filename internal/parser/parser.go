// Package parser assembles a Resume from document bytes by running extraction, layout
// reconstruction and field extraction in order.
package parser

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/resume-parser/internal/extract"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/layout"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/types"
)

// Options configures a Parser
type Options struct {
	Layout      layout.Options
	Extract     extract.Options
	DebugScores bool
	Logger      zerolog.Logger
}

// DefaultOptions returns options with the standard tuning and logging disabled
func DefaultOptions() Options {
	return Options{
		Layout:  layout.DefaultOptions(),
		Extract: extract.DefaultOptions(),
		Logger:  zerolog.Nop(),
	}
}

// Parser turns documents into resumes. It holds no per-document state and is safe for
// concurrent use.
type Parser struct {
	opts Options
	log  zerolog.Logger
}

// New creates a Parser
func New(opts Options) *Parser {
	return &Parser{opts: opts, log: opts.Logger}
}

// Result is the outcome of parsing one document
type Result struct {
	Resume *types.Resume
	// Scores is nil unless Options.DebugScores is set
	Scores *types.DebugScores
	Log    *ingestion.ExtractionLog
}

// Layout is the reconstructed structure of a document before field extraction
type Layout struct {
	Items    []types.TextItem
	Lines    types.Lines
	Sections sections.Sections
}

// Parse decodes data, detected by content and fileName, into a Resume. Documents without
// any text produce an empty Resume and no error; only undecodable input fails.
func (p *Parser) Parse(ctx context.Context, fileName string, data []byte) (*Result, error) {
	start := time.Now()
	log := ingestion.NewExtractionLog(fileName, data)

	items, format, err := extraction.ExtractItems(ctx, fileName, data)
	log.Format = string(format)
	if err != nil {
		log.Finish(start, err)
		p.log.Warn().Err(err).Str("file", fileName).Str("format", log.Format).Msg("text extraction failed")
		return nil, fmt.Errorf("failed to extract text items: %w", err)
	}
	p.log.Debug().Str("file", fileName).Str("format", log.Format).Int("items", len(items)).Msg("text items extracted")

	doc := p.BuildLayout(items)
	log.ItemCount = len(doc.Items)
	log.LineCount = len(doc.Lines)
	log.SectionNames = doc.Sections.Names()

	resume, scores := p.Assemble(doc)
	log.Finish(start, nil)
	p.log.Debug().
		Str("file", fileName).
		Int("lines", log.LineCount).
		Strs("sections", log.SectionNames).
		Int64("duration_ms", log.DurationMS).
		Msg("resume assembled")

	result := &Result{Resume: resume, Log: log}
	if p.opts.DebugScores {
		result.Scores = scores
	}
	return result, nil
}

// BuildLayout cleans items and reconstructs lines and sections
func (p *Parser) BuildLayout(items []types.TextItem) *Layout {
	cleaned := ingestion.CleanItems(items)
	lines := layout.GroupTextItemsIntoLines(cleaned, p.opts.Layout)
	return &Layout{
		Items:    cleaned,
		Lines:    lines,
		Sections: sections.GroupLinesIntoSections(lines),
	}
}

// Assemble runs every field extractor over a layout. Sections handled by a dedicated
// extractor are consumed; the rest become custom sections.
func (p *Parser) Assemble(doc *Layout) (*types.Resume, *types.DebugScores) {
	resume := types.NewResume()
	scores := types.NewDebugScores()
	if doc == nil || len(doc.Lines) == 0 {
		return resume, scores
	}

	secs := doc.Sections
	consumed := map[string]bool{}
	opts := p.opts.Extract

	resume.Profile, scores.Profile = extract.Profile(secs)

	if lines, name := extract.EducationLines(secs); name != "" {
		resume.Educations, scores.Educations = extract.Educations(lines, opts)
		consumed[name] = true
	}
	if lines, name := extract.WorkLines(secs); name != "" {
		resume.WorkExperiences, scores.WorkExperiences = extract.WorkExperiences(lines, opts)
		consumed[name] = true
	}
	if lines, name := extract.ProjectLines(secs); name != "" {
		resume.Projects, scores.Projects = extract.Projects(lines, opts)
		consumed[name] = true
	}
	if lines, name := extract.SkillLines(secs); name != "" {
		resume.Skills = extract.Skills(lines)
		consumed[name] = true
	}

	resume.Custom = extract.Custom(secs, consumed)
	return resume, scores
}

// Parse parses a document with default options
func Parse(data []byte) (*types.Resume, error) {
	result, err := New(DefaultOptions()).Parse(context.Background(), "", data)
	if err != nil {
		return nil, err
	}
	return result.Resume, nil
}

// AssembleResume builds a Resume from already extracted text items with default options
func AssembleResume(items []types.TextItem) *types.Resume {
	p := New(DefaultOptions())
	resume, _ := p.Assemble(p.BuildLayout(items))
	return resume
}
