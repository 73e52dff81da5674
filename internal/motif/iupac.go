// Package motif locates methylase and restriction-enzyme recognition
// patterns in DNA sequences and derives the position and strand of the
// specifically modified base for each occurrence.
package motif

// patternMask holds a 4-bit mask per IUPAC symbol: bit0=A bit1=C bit2=G
// bit3=T. Built by a variable initializer so the built-in catalogs, which
// compile their patterns during their own variable initialization, see a
// populated table.
var patternMask = makePatternMask()

// complementTable maps every recognized IUPAC symbol to its complement.
var complementTable = makeComplementTable()

func makePatternMask() [256]uint8 {
	var t [256]uint8
	set := func(c byte, bits uint8) { t[c] = bits }
	set('A', 1)
	set('C', 2)
	set('G', 4)
	set('T', 8)
	set('R', 1|4)   // A/G
	set('Y', 2|8)   // C/T
	set('S', 2|4)   // C/G
	set('W', 1|8)   // A/T
	set('K', 4|8)   // G/T
	set('M', 1|2)   // A/C
	set('B', 2|4|8) // C/G/T
	set('D', 1|4|8) // A/G/T
	set('H', 1|2|8) // A/C/T
	set('V', 1|2|4) // A/C/G
	set('N', 1|2|4|8)
	set('X', 1|2|4|8)
	return t
}

func makeComplementTable() [256]byte {
	var t [256]byte
	pair := func(a, b byte) { t[a] = b; t[b] = a }
	pair('A', 'T')
	pair('C', 'G')
	pair('R', 'Y')
	pair('K', 'M')
	pair('D', 'H')
	pair('B', 'V')
	t['W'] = 'W'
	t['S'] = 'S'
	t['N'] = 'N'
	t['X'] = 'X'
	return t
}

// upper folds lowercase nucleotide symbols to uppercase.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c
}

// sequenceMask returns the mask used for a reference sequence base.
// Only unambiguous A/C/G/T bases can satisfy a pattern position; an 'N'
// (or any other symbol) in the reference never matches.
func sequenceMask(c byte) uint8 {
	switch upper(c) {
	case 'A':
		return 1
	case 'C':
		return 2
	case 'G':
		return 4
	case 'T':
		return 8
	}
	return 0
}

// complementBase returns the complement of a single IUPAC symbol and
// whether the symbol is recognized.
func complementBase(c byte) (byte, bool) {
	cc := complementTable[upper(c)]
	return cc, cc != 0
}

// Reverse returns the sequence in reverse order.
func Reverse(sequence string) string {
	b := []byte(sequence)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// Complement returns the complement of an IUPAC sequence.
func Complement(sequence string) (string, error) {
	b := make([]byte, len(sequence))
	for i := 0; i < len(sequence); i++ {
		c, ok := complementBase(sequence[i])
		if !ok {
			return "", &InvalidMotifError{Pattern: sequence, Reason: "unrecognized symbol " + string(sequence[i])}
		}
		b[i] = c
	}
	return string(b), nil
}

// ReverseComplement returns the reverse complement of an IUPAC sequence.
func ReverseComplement(sequence string) (string, error) {
	return Complement(Reverse(sequence))
}
