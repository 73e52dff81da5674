package motif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMethylaseValidation(t *testing.T) {
	_, err := NewMethylase("bad", "GA?C", 1, 2)
	var motifErr *InvalidMotifError
	require.ErrorAs(t, err, &motifErr)
	assert.Equal(t, "bad", motifErr.Name)

	_, err = NewMethylase("bad", "GATC", 4, 2)
	assert.ErrorAs(t, err, &motifErr)

	_, err = NewMethylase("bad", "GATC", -1, 2)
	assert.ErrorAs(t, err, &motifErr)

	_, err = NewMethylase("bad", "GATC", 1, 4)
	assert.ErrorAs(t, err, &motifErr)

	_, err = NewMethylase("bad", "", 0, NoIndex)
	assert.ErrorAs(t, err, &motifErr)
}

func TestNewMethylaseUppercasesPattern(t *testing.T) {
	m, err := NewMethylase("EcoKDam", "gatc", 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "GATC", m.Sequence)
	assert.Equal(t, "GATC", m.ReverseComp)
	assert.Equal(t, byte('A'), m.ModifiedBase())
}

func TestCatalogEntries(t *testing.T) {
	catalog := Catalog()
	require.Len(t, catalog, 15)

	names := make(map[string]*Methylase, len(catalog))
	for _, m := range catalog {
		names[m.Name] = m
		assert.Equal(t, CategoryMethylase, m.Category)
	}

	dam := names["EcoKDam"]
	require.NotNil(t, dam)
	assert.Equal(t, "GATC", dam.Sequence)
	assert.True(t, dam.IsPalindromic())

	dcm := names["EcoKDcm"]
	require.NotNil(t, dcm)
	assert.True(t, dcm.IsPalindromic())

	ecoBI := names["EcoBI"]
	require.NotNil(t, ecoBI)
	assert.False(t, ecoBI.IsPalindromic())
	assert.Equal(t, 11, ecoBI.IndexNeg)

	// EcoGII marks every adenine and is deliberately not in the default
	// catalog, but stays resolvable by name.
	assert.NotContains(t, names, "EcoGII")
	gii, ok := Lookup("EcoGII")
	require.True(t, ok)
	assert.Equal(t, NoIndex, gii.IndexNeg)
}

func TestDndCatalog(t *testing.T) {
	catalog := DndCatalog()
	require.Len(t, catalog, 3)
	for _, m := range catalog {
		assert.Equal(t, CategoryDnd, m.Category)
	}

	m, ok := Lookup("Dnd_VciFF75")
	require.True(t, ok)
	assert.Equal(t, "CCA", m.Sequence)
	assert.Equal(t, 2, m.IndexNeg)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("NoSuchEnzyme")
	assert.False(t, ok)
}

func TestCatalogEntriesMatchOwnPattern(t *testing.T) {
	// The built-in entries are compiled during package initialization; each
	// one must arrive with working masks. A reference built from the entry's
	// own pattern (ambiguity symbols narrowed to a concrete base) must match
	// at offset zero.
	concrete := func(pattern string) string {
		b := []byte(pattern)
		for i, c := range b {
			switch c {
			case 'A', 'C', 'G', 'T':
			case 'Y', 'S', 'B':
				b[i] = 'C'
			case 'K':
				b[i] = 'G'
			default:
				b[i] = 'A'
			}
		}
		return string(b)
	}

	catalog := append(Catalog(), DndCatalog()...)
	require.NotEmpty(t, catalog)
	for _, m := range catalog {
		matches := FindSiteMatches(concrete(m.Sequence), m)
		require.NotEmpty(t, matches, "catalog entry %s", m.Name)
		assert.Equal(t, 0, matches[0].Start, "catalog entry %s", m.Name)
		assert.NotEmpty(t, SitesFromMatch(matches[0], m), "catalog entry %s", m.Name)
	}
}
