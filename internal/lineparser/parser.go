// =============================================================================
// Quote Scraper - Line Parser
// =============================================================================
//
// The line parser rebuilds item records from the text of one quote document.
// It runs classified lines through a small state machine:
//
//   outside ──SectionStart──▶ inside ──SectionEnd──▶ done
//
// While inside, a PartNumber line closes the in-progress record (if it has a
// part number) and opens a new one; Description and QuantityPrice lines fill
// fields on the in-progress record. End of input while inside closes the
// in-progress record.
//
// The parser never fails. Lines that do not parse leave fields unset.
//
// =============================================================================

package lineparser

import (
	"strings"

	"github.com/ginjaninja78/quote-scraper/internal/types"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures the markers and the unit price heuristic.
type Options struct {
	// SectionStartMarkers open the parts section when any is contained in a line.
	SectionStartMarkers []string

	// SectionEndMarkers stop parsing when any is contained in a line inside
	// the section.
	SectionEndMarkers []string

	// PriceCeiling is the exclusive upper bound for a token to be taken as
	// the unit price.
	PriceCeiling float64
}

// DefaultOptions returns the markers of the vendor quote template.
func DefaultOptions() Options {
	return Options{
		SectionStartMarkers: []string{"PARTS QUOTE"},
		SectionEndMarkers:   []string{"LEAD TIME", "Net Order:"},
		PriceCeiling:        10000,
	}
}

// =============================================================================
// PARSER
// =============================================================================

// Parser turns quote text into item records.
type Parser struct {
	opts Options
}

// New creates a parser. Zero-valued option fields take their defaults.
func New(opts Options) *Parser {
	def := DefaultOptions()
	if len(opts.SectionStartMarkers) == 0 {
		opts.SectionStartMarkers = def.SectionStartMarkers
	}
	if len(opts.SectionEndMarkers) == 0 {
		opts.SectionEndMarkers = def.SectionEndMarkers
	}
	if opts.PriceCeiling <= 0 {
		opts.PriceCeiling = def.PriceCeiling
	}
	return &Parser{opts: opts}
}

type state int

const (
	stateOutside state = iota
	stateInside
	stateDone
)

// machine holds the per-document parse state.
type machine struct {
	state   state
	current types.ItemRecord
	items   []types.ItemRecord
}

// ParseText splits text on newlines and parses the lines.
func (p *Parser) ParseText(text string) []types.ItemRecord {
	return p.Parse(strings.Split(text, "\n"))
}

// Parse walks the lines of one document and returns its item records in
// order. SourceFile is left empty.
func (p *Parser) Parse(lines []string) []types.ItemRecord {
	m := &machine{}

	for _, raw := range lines {
		m.step(p.Classify(raw))
		if m.state == stateDone {
			break
		}
	}

	if m.state == stateInside {
		m.finalize()
	}
	return m.items
}

func (m *machine) step(line Line) {
	switch m.state {
	case stateOutside:
		if line.Kind == KindSectionStart {
			m.state = stateInside
		}

	case stateInside:
		switch line.Kind {
		case KindSectionEnd:
			m.finalize()
			m.state = stateDone

		case KindPartNumber:
			m.finalize()
			m.current = types.ItemRecord{PartNumber: line.PartNumber}

		case KindDescription:
			if line.Description != nil {
				m.current.Description = line.Description
			}

		case KindQuantityPrice:
			if line.Quantity != nil {
				m.current.Quantity = line.Quantity
			}
			if line.Price != nil {
				m.current.Price = line.Price
			}
		}
	}
}

// finalize appends the in-progress record when it has a part number and
// resets it. A record without one is dropped.
func (m *machine) finalize() {
	if m.current.PartNumber != "" {
		m.items = append(m.items, m.current)
	}
	m.current = types.ItemRecord{}
}
