package i18ntree

import (
	"math"
	"strconv"
	"strings"
)

// RootPath is the report path used for a mismatch at the document root.
const RootPath = "(root)"

// MaxIndex is the largest array index SetDeep writes. Arrays grow with holes
// up to the index, so larger indices are refused.
const MaxIndex = 1<<16 - 1

// DefaultDelimiters separate multiple keys inside one key cell.
const DefaultDelimiters = "\n|,"

// StepKind tells a property step from an index step.
type StepKind uint8

const (
	PropertyStep StepKind = iota
	IndexStep
)

// Step is one element of a parsed key path.
type Step struct {
	Kind  StepKind
	Name  string // PropertyStep only
	Index int    // IndexStep only
}

func (s Step) String() string {
	if s.Kind == IndexStep {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return s.Name
}

// ParsePath tokenizes a dotted/bracketed key path such as "a.b[0].c".
//
// Property names are maximal runs of characters other than '.' and '[';
// "[N]" with decimal digits yields an index step. Separators never end up
// inside a step and empty matches are skipped, so ".a..b" parses as a, b.
// A '[' that does not open an index is dropped, so "a[x]" parses as a, "x]".
func ParsePath(path string) ([]Step, error) {
	var steps []Step
	var name strings.Builder

	flush := func() {
		if name.Len() > 0 {
			steps = append(steps, Step{Kind: PropertyStep, Name: name.String()})
			name.Reset()
		}
	}

	for i := 0; i < len(path); {
		switch c := path[i]; c {
		case '.':
			flush()
			i++
		case '[':
			if idx, n, ok := scanIndex(path[i:]); ok {
				flush()
				steps = append(steps, Step{Kind: IndexStep, Index: idx})
				i += n
				continue
			}
			// A stray bracket belongs to no step.
			flush()
			i++
		default:
			name.WriteByte(c)
			i++
		}
	}
	flush()

	if len(steps) == 0 {
		return nil, ErrEmptyPath
	}
	return steps, nil
}

// scanIndex matches "[digits]" at the start of s and returns the index and
// the number of bytes consumed. Indices too large for an int saturate.
func scanIndex(s string) (int, int, bool) {
	end := strings.IndexByte(s, ']')
	if end < 2 {
		return 0, 0, false
	}
	digits := s[1:end]
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, 0, false
		}
	}
	idx, err := strconv.Atoi(digits)
	if err != nil {
		idx = math.MaxInt
	}
	return idx, end + 1, true
}

// JoinKey appends a property to a report path.
func JoinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// JoinIndex appends an index to a report path.
func JoinIndex(prefix string, index int) string {
	return prefix + "[" + strconv.Itoa(index) + "]"
}

// FormatPath renders steps back to the dotted/bracketed notation.
func FormatPath(steps []Step) string {
	var p string
	for _, s := range steps {
		if s.Kind == IndexStep {
			p = JoinIndex(p, s.Index)
		} else {
			p = JoinKey(p, s.Name)
		}
	}
	return p
}

// SplitKeys splits a key cell on any rune of delimiters, trimming each part
// and dropping empty ones.
func SplitKeys(cell, delimiters string) []string {
	if delimiters == "" {
		delimiters = DefaultDelimiters
	}
	parts := strings.FieldsFunc(cell, func(r rune) bool {
		return strings.ContainsRune(delimiters, r)
	})
	keys := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}
