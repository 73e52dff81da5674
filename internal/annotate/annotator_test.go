package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// testCatalog builds the four E. coli methylases used by the regression
// fixture below.
func testCatalog(t *testing.T) []*motif.Methylase {
	t.Helper()
	defs := []struct {
		name     string
		seq      string
		pos, neg int
	}{
		{"EcoKDam", "GATC", 1, 2},
		{"EcoKDcm", "CCWGG", 1, 3},
		{"EcoBI", "TGANNNNNNNNTGCT", 2, 11},
		{"EcoKI", "AACNNNNNNGTGC", 1, 10},
	}
	catalog := make([]*motif.Methylase, 0, len(defs))
	for _, d := range defs {
		m, err := motif.NewMethylase(d.name, d.seq, d.pos, d.neg)
		require.NoError(t, err)
		catalog = append(catalog, m)
	}
	return catalog
}

// The fixture sequence contains one EcoBI site on each strand and nothing
// for the other three methylases.
const fixtureSeq = "TGACCCCCCCCTGCTCCCCCAGCACCCCCCCCTCA"

func TestAnnotateFixtureSequence(t *testing.T) {
	a := NewAnnotator(testCatalog(t))

	sites := a.Annotate(fixtureSeq)
	require.Len(t, sites, 4)
	for _, s := range sites {
		assert.Equal(t, "EcoBI", s.Methylase)
		assert.Equal(t, byte('A'), s.Base)
	}

	// Forward match at 0-15: adenine at 2 (plus) and 11 (minus).
	// Reverse-complement match at 20-35: 34-2=32 (minus) and 34-11=23 (plus).
	assert.Equal(t, motif.Site{Position: 2, Base: 'A', Strand: 1, Methylase: "EcoBI"}, sites[0])
	assert.Equal(t, motif.Site{Position: 11, Base: 'A', Strand: -1, Methylase: "EcoBI"}, sites[1])
	assert.Equal(t, motif.Site{Position: 23, Base: 'A', Strand: 1, Methylase: "EcoBI"}, sites[2])
	assert.Equal(t, motif.Site{Position: 32, Base: 'A', Strand: -1, Methylase: "EcoBI"}, sites[3])
}

func TestAnnotateRecordFixtureSequence(t *testing.T) {
	a := NewAnnotator(testCatalog(t))

	// Two recognition-site features and four modified-base features.
	features := a.AnnotateRecord(fixtureSeq)
	require.Len(t, features, 6)

	var regions, mods int
	for _, f := range features {
		switch f.Kind {
		case KindRecognitionSite:
			regions++
		case KindModification:
			mods++
		}
	}
	assert.Equal(t, 2, regions)
	assert.Equal(t, 4, mods)

	assert.Equal(t, Feature{Kind: KindRecognitionSite, Start: 0, End: 15, Methylase: "EcoBI"}, features[0])
	assert.Len(t, ModificationFeatures(features, 'A'), 4)
	assert.Empty(t, ModificationFeatures(features, 'C'))
}

func TestAnnotateDeterministic(t *testing.T) {
	a := NewAnnotator(testCatalog(t))
	first := a.Annotate(fixtureSeq)
	second := a.Annotate(fixtureSeq)
	assert.Equal(t, first, second)
}

func TestAnnotateGroupedByMethylase(t *testing.T) {
	// GATC and CG sites interleave on this sequence; the output must stay
	// grouped by catalog entry, position-ascending within each group.
	dam, err := motif.NewMethylase("EcoKDam", "GATC", 1, 2)
	require.NoError(t, err)
	cpg, err := motif.NewMethylase("CpG", "CG", 0, 1)
	require.NoError(t, err)

	a := NewAnnotator([]*motif.Methylase{dam, cpg})
	sites := a.Annotate("CGATCG")

	require.NotEmpty(t, sites)
	boundary := 0
	for i, s := range sites {
		if s.Methylase == "CpG" {
			boundary = i
			break
		}
	}
	for i, s := range sites {
		if i < boundary {
			assert.Equal(t, "EcoKDam", s.Methylase)
		} else {
			assert.Equal(t, "CpG", s.Methylase)
		}
	}
	for i := 1; i < boundary; i++ {
		assert.LessOrEqual(t, sites[i-1].Position, sites[i].Position)
	}
}

func TestAnnotateEmptyResultIsNotAnError(t *testing.T) {
	a := NewAnnotator(testCatalog(t))
	assert.Empty(t, a.Annotate("TTTTTTTT"))
	assert.Empty(t, a.AnnotateRecord("TTTTTTTT"))
}

func TestAnnotateSitesSingleMethylase(t *testing.T) {
	dam, err := motif.NewMethylase("EcoKDam", "GATC", 1, 2)
	require.NoError(t, err)

	sites := AnnotateSites("TTGATCTT", dam)
	require.Len(t, sites, 2)
	assert.Equal(t, 3, sites[0].Position)
	assert.Equal(t, int8(1), sites[0].Strand)
	assert.Equal(t, 4, sites[1].Position)
	assert.Equal(t, int8(-1), sites[1].Strand)
}
