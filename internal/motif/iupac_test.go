package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverse(t *testing.T) {
	assert.Equal(t, "TGCA", Reverse("ACGT"))
	assert.Equal(t, "", Reverse(""))
}

func TestComplement(t *testing.T) {
	c, err := Complement("ACGT")
	require.NoError(t, err)
	assert.Equal(t, "TGCA", c)

	// Ambiguity symbols complement pairwise.
	c, err = Complement("RYKMWSDHBVNX")
	require.NoError(t, err)
	assert.Equal(t, "YRMKWSHDVBNX", c)
}

func TestComplementUnrecognizedSymbol(t *testing.T) {
	_, err := Complement("ACQT")
	require.Error(t, err)
	var motifErr *InvalidMotifError
	assert.ErrorAs(t, err, &motifErr)
}

func TestReverseComplement(t *testing.T) {
	rc, err := ReverseComplement("ACGT")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", rc)

	// GATC is its own reverse complement; GGATCC too.
	rc, err = ReverseComplement("GGATCC")
	require.NoError(t, err)
	assert.Equal(t, "GGATCC", rc)

	// CCWGG: W complements to itself, so the pattern is palindromic.
	rc, err = ReverseComplement("CCWGG")
	require.NoError(t, err)
	assert.Equal(t, "CCWGG", rc)

	// EcoKI's site is not palindromic.
	rc, err = ReverseComplement("AACNNNNNNGTGC")
	require.NoError(t, err)
	assert.Equal(t, "GCACNNNNNNGTT", rc)
}

func TestLowercaseFolding(t *testing.T) {
	rc, err := ReverseComplement("acgt")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", rc)
}
