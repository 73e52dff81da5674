package motif

import "fmt"

// Match is one located occurrence of a pattern within a sequence.
// Coordinates are always offsets into the forward input sequence; End is
// exclusive. Strand -1 marks an occurrence of the reverse-complemented
// pattern found on the forward sequence.
type Match struct {
	Start  int
	End    int
	Strand int8
}

// compilePattern converts an IUPAC pattern into per-position masks.
func compilePattern(pattern string) ([]uint8, error) {
	if len(pattern) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}
	masks := make([]uint8, len(pattern))
	for i := 0; i < len(pattern); i++ {
		m := patternMask[upper(pattern[i])]
		if m == 0 {
			return nil, fmt.Errorf("unrecognized symbol %q at index %d", pattern[i], i)
		}
		masks[i] = m
	}
	return masks, nil
}

// scan enumerates every window of seq matching the compiled pattern,
// including overlapping occurrences. A match starting at i never
// suppresses a match starting at i+1.
func scan(seq string, masks []uint8, strand int8) []Match {
	n, m := len(seq), len(masks)
	if n < m {
		return nil
	}
	var out []Match
window:
	for pos := 0; pos <= n-m; pos++ {
		for j := 0; j < m; j++ {
			if sequenceMask(seq[pos+j])&masks[j] == 0 {
				continue window
			}
		}
		out = append(out, Match{Start: pos, End: pos + m, Strand: strand})
	}
	return out
}

// FindMatches returns every occurrence of pattern in seq, scanning left to
// right on the plus strand. Matching is case-insensitive and ambiguity
// symbols in the pattern expand to their base sets.
func FindMatches(seq, pattern string) ([]Match, error) {
	masks, err := compilePattern(pattern)
	if err != nil {
		return nil, &InvalidMotifError{Pattern: pattern, Reason: err.Error()}
	}
	return scan(seq, masks, 1), nil
}

// FindSiteMatches returns occurrences of the methylase pattern (strand +1)
// followed by occurrences of its reverse complement (strand -1), both in
// forward-sequence coordinates. The reverse-complement scan is skipped for
// palindromic patterns.
func FindSiteMatches(seq string, m *Methylase) []Match {
	matches := scan(seq, m.masks, 1)
	if !m.IsPalindromic() {
		matches = append(matches, scan(seq, m.rcMasks, -1)...)
	}
	return matches
}
