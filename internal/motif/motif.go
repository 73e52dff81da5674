package motif

import "fmt"

// NoIndex marks a methylase with no antisense modification position
// (single-base motifs).
const NoIndex = -1

// Methylase categories. Dnd entries describe phosphorothioation rather
// than methylation but behave identically for matching purposes.
const (
	CategoryMethylase = "methylase"
	CategoryDnd       = "dnd"
)

// Methylase describes a modification enzyme recognition pattern.
type Methylase struct {
	Name        string
	Sequence    string // IUPAC recognition pattern, uppercase
	ReverseComp string // reverse complement of Sequence
	IndexPos    int    // 0-based pattern index of the base modified on the plus strand
	IndexNeg    int    // pattern index of the base modified on the minus strand, or NoIndex
	Category    string

	masks   []uint8 // compiled Sequence
	rcMasks []uint8 // compiled ReverseComp
}

// InvalidMotifError reports a motif definition that cannot be used for
// matching: an unrecognized pattern symbol or an out-of-range offset.
type InvalidMotifError struct {
	Name    string
	Pattern string
	Reason  string
}

func (e *InvalidMotifError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("invalid motif %q: %s", e.Pattern, e.Reason)
	}
	return fmt.Sprintf("invalid motif %s (%q): %s", e.Name, e.Pattern, e.Reason)
}

// NewMethylase validates and builds a methylase definition. indexNeg may be
// NoIndex for single-base motifs, which have no meaningful antisense offset.
func NewMethylase(name, sequence string, indexPos, indexNeg int) (*Methylase, error) {
	upperSeq := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		upperSeq[i] = upper(sequence[i])
	}
	seq := string(upperSeq)

	masks, err := compilePattern(seq)
	if err != nil {
		return nil, &InvalidMotifError{Name: name, Pattern: sequence, Reason: err.Error()}
	}
	if indexPos < 0 || indexPos >= len(seq) {
		return nil, &InvalidMotifError{Name: name, Pattern: sequence,
			Reason: fmt.Sprintf("plus-strand index %d out of range [0,%d)", indexPos, len(seq))}
	}
	if indexNeg != NoIndex && (indexNeg < 0 || indexNeg >= len(seq)) {
		return nil, &InvalidMotifError{Name: name, Pattern: sequence,
			Reason: fmt.Sprintf("minus-strand index %d out of range [0,%d)", indexNeg, len(seq))}
	}

	rc, err := ReverseComplement(seq)
	if err != nil {
		return nil, &InvalidMotifError{Name: name, Pattern: sequence, Reason: err.Error()}
	}
	rcMasks, err := compilePattern(rc)
	if err != nil {
		return nil, &InvalidMotifError{Name: name, Pattern: sequence, Reason: err.Error()}
	}

	return &Methylase{
		Name:        name,
		Sequence:    seq,
		ReverseComp: rc,
		IndexPos:    indexPos,
		IndexNeg:    indexNeg,
		Category:    CategoryMethylase,
		masks:       masks,
		rcMasks:     rcMasks,
	}, nil
}

// IsPalindromic reports whether the pattern equals its own reverse
// complement. Palindromic patterns are scanned once: a reverse-complement
// scan would re-report the same events under a flipped strand label.
func (m *Methylase) IsPalindromic() bool {
	return m.Sequence == m.ReverseComp
}

// ModifiedBase returns the pattern symbol at the plus-strand modification
// position.
func (m *Methylase) ModifiedBase() byte {
	return m.Sequence[m.IndexPos]
}
