package bedmethyl

import (
	"fmt"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// StrandString renders a motif-engine strand (±1) as a bedmethyl strand
// symbol.
func StrandString(strand int8) string {
	if strand < 0 {
		return "-"
	}
	return "+"
}

type posStrand struct {
	pos    int
	strand string
}

// SubsetByModCode keeps the rows reporting the given modification code.
func SubsetByModCode(records []Record, code string) []Record {
	var out []Record
	for _, r := range records {
		if r.ModCode == code {
			out = append(out, r)
		}
	}
	return out
}

// ModCodes returns the distinct modification codes observed in the table,
// in first-seen order.
func ModCodes(records []Record) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, r := range records {
		if !seen[r.ModCode] {
			seen[r.ModCode] = true
			codes = append(codes, r.ModCode)
		}
	}
	return codes
}

// SubsetByStrandPosition keeps the rows whose (start_position, strand)
// pair is predicted by one of the sites. This is a set-membership join:
// rows the sites do not predict are dropped silently, and sites with no
// observed row are simply absent from the result.
func SubsetByStrandPosition(records []Record, sites []motif.Site) []Record {
	predicted := make(map[posStrand]bool, len(sites))
	for _, s := range sites {
		predicted[posStrand{pos: s.Position, strand: StrandString(s.Strand)}] = true
	}

	var out []Record
	for _, r := range records {
		if predicted[posStrand{pos: r.StartPosition, strand: r.Strand}] {
			out = append(out, r)
		}
	}
	return out
}

// SubsetByBaseMatches keeps the rows sitting on an occurrence of the given
// unmodified base: plus-strand rows where the reference carries the base,
// minus-strand rows where it carries the complement.
func SubsetByBaseMatches(records []Record, seq string, base byte) ([]Record, error) {
	comp, err := motif.Complement(string(base))
	if err != nil {
		return nil, err
	}
	plus := make(map[int]bool)
	minus := make(map[int]bool)
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch c {
		case base:
			plus[i] = true
		case comp[0]:
			minus[i] = true
		}
	}

	var out []Record
	for _, r := range records {
		if (r.Strand == "+" && plus[r.StartPosition]) ||
			(r.Strand == "-" && minus[r.StartPosition]) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Classify derives a ternary methylation status for each row. Cutoffs are
// fractions in [0,1] compared against percent_modified inclusively on both
// sides; positions falling between the cutoffs stay undetermined. The
// cutoffs need not be complementary, but an unmethylated cutoff above the
// methylated cutoff makes every band ambiguous and is rejected.
func Classify(records []Record, metCutoff, nonmetCutoff float64) ([]Classified, error) {
	if err := ValidateCutoffs(metCutoff, nonmetCutoff); err != nil {
		return nil, err
	}

	out := make([]Classified, 0, len(records))
	for _, r := range records {
		status := StatusUndetermined
		switch {
		case r.PercentModified >= metCutoff*100:
			status = StatusMethylated
		case r.PercentModified <= nonmetCutoff*100:
			status = StatusUnmethylated
		}
		out = append(out, Classified{Record: r, Status: status})
	}
	return out, nil
}

// ValidateCutoffs rejects inverted or out-of-range classification
// thresholds. Callers validate before iterating methylases so a bad
// configuration fails before any analysis starts.
func ValidateCutoffs(metCutoff, nonmetCutoff float64) error {
	if metCutoff < 0 || metCutoff > 1 || nonmetCutoff < 0 || nonmetCutoff > 1 {
		return &ConfigurationError{Message: fmt.Sprintf(
			"cutoffs must be fractions in [0,1], got methylated=%v unmethylated=%v",
			metCutoff, nonmetCutoff)}
	}
	if nonmetCutoff > metCutoff {
		return &ConfigurationError{Message: fmt.Sprintf(
			"unmethylated cutoff %v exceeds methylated cutoff %v",
			nonmetCutoff, metCutoff)}
	}
	return nil
}

// Summary counts classified rows per status.
type Summary struct {
	Methylated   int
	Unmethylated int
	Undetermined int
}

// Summarize tallies the statuses of a classified table.
func Summarize(classified []Classified) Summary {
	var s Summary
	for _, c := range classified {
		switch c.Status {
		case StatusMethylated:
			s.Methylated++
		case StatusUnmethylated:
			s.Unmethylated++
		default:
			s.Undetermined++
		}
	}
	return s
}
