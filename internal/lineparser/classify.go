// =============================================================================
// Quote Scraper - Line Classification
// =============================================================================
//
// Every line of extracted quote text is classified into exactly one kind
// before the state machine sees it. Precedence is fixed:
//
//   1. SectionStart   - line contains a start marker ("PARTS QUOTE")
//   2. SectionEnd     - line contains an end marker ("LEAD TIME", "Net Order:")
//   3. PartNumber     - the trimmed line is a single token like F7300K-ZNC
//   4. Description    - line contains "Whse:"
//   5. QuantityPrice  - line contains "EACH"
//   6. Other          - anything else
//
// A Description or QuantityPrice line may carry no payload when its
// sub-pattern did not match. Such lines are still classified by kind so
// that they never fall through to a lower-precedence recognizer.
//
// =============================================================================

package lineparser

import (
	"regexp"
	"strconv"
	"strings"
)

// =============================================================================
// LINE KINDS
// =============================================================================

// Kind is the classification tag of a line.
type Kind int

const (
	KindOther Kind = iota
	KindSectionStart
	KindSectionEnd
	KindPartNumber
	KindDescription
	KindQuantityPrice
)

func (k Kind) String() string {
	switch k {
	case KindSectionStart:
		return "section_start"
	case KindSectionEnd:
		return "section_end"
	case KindPartNumber:
		return "part_number"
	case KindDescription:
		return "description"
	case KindQuantityPrice:
		return "quantity_price"
	default:
		return "other"
	}
}

// Line is a classified line. Only the payload fields belonging to Kind are
// meaningful; optional payloads are nil when the sub-pattern failed.
type Line struct {
	Kind Kind

	// PartNumber is set for KindPartNumber.
	PartNumber string

	// Description is set for KindDescription when "Whse: <digits> <text>"
	// matched.
	Description *string

	// Quantity and Price are set for KindQuantityPrice. Price is only
	// attempted once Quantity parsed.
	Quantity *float64
	Price    *float64
}

// =============================================================================
// PATTERNS
// =============================================================================

var (
	// partNumberPattern matches a whole trimmed line of the form ALNUM+-ALNUM[-ALNUM...].
	partNumberPattern = regexp.MustCompile(`^([A-Z0-9]+-[A-Z0-9-]+)\s*$`)

	// warehousePattern captures the free text after the warehouse code.
	// Separators include Unicode spaces such as NBSP.
	warehousePattern = regexp.MustCompile(`Whse:[\s\p{Zs}]+(\d+)[\s\p{Zs}]+(.+)`)
)

const (
	warehouseMarker = "Whse:"
	eachMarker      = "EACH"
)

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classify tags a single line.
func (p *Parser) Classify(line string) Line {
	if containsAny(line, p.opts.SectionStartMarkers) {
		return Line{Kind: KindSectionStart}
	}
	if containsAny(line, p.opts.SectionEndMarkers) {
		return Line{Kind: KindSectionEnd}
	}

	if m := partNumberPattern.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
		return Line{Kind: KindPartNumber, PartNumber: m[1]}
	}

	if strings.Contains(line, warehouseMarker) {
		out := Line{Kind: KindDescription}
		if m := warehousePattern.FindStringSubmatch(line); m != nil {
			desc := strings.TrimSpace(m[2])
			out.Description = &desc
		}
		return out
	}

	if strings.Contains(line, eachMarker) {
		out := Line{Kind: KindQuantityPrice}
		out.Quantity, out.Price = p.quantityAndPrice(strings.Fields(line))
		return out
	}

	return Line{Kind: KindOther}
}

// quantityAndPrice reads the quantity from the token after EACH, then scans
// the tokens right to left for the first number under the price ceiling.
// Layout: EACH quantity shipped back_order price amount.
func (p *Parser) quantityAndPrice(tokens []string) (*float64, *float64) {
	if len(tokens) < 3 {
		return nil, nil
	}

	idx := indexOf(tokens, eachMarker)
	if idx < 0 || idx+1 >= len(tokens) {
		return nil, nil
	}

	qty, err := strconv.ParseFloat(tokens[idx+1], 64)
	if err != nil {
		return nil, nil
	}

	for j := len(tokens) - 1; j >= 0; j-- {
		v, err := strconv.ParseFloat(strings.ReplaceAll(tokens[j], ",", ""), 64)
		if err != nil {
			continue
		}
		if v < p.opts.PriceCeiling {
			return &qty, &v
		}
	}
	return &qty, nil
}

func containsAny(line string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(line, m) {
			return true
		}
	}
	return false
}

func indexOf(tokens []string, want string) int {
	for i, t := range tokens {
		if t == want {
			return i
		}
	}
	return -1
}
