package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/sample"
)

func classifiedRow(pos int, strand string, percent float64, status string) bedmethyl.Classified {
	return bedmethyl.Classified{
		Record: bedmethyl.Record{
			Chrom:           "ref",
			StartPosition:   pos,
			EndPosition:     pos + 1,
			ModCode:         "a",
			Strand:          strand,
			ValidCoverage:   12,
			PercentModified: percent,
			NMod:            9,
			NCanonical:      3,
		},
		Status: status,
	}
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	tw := NewTableWriter(&buf)

	require.NoError(t, tw.WriteHeader())
	require.NoError(t, tw.Write(classifiedRow(11, "+", 75, bedmethyl.StatusMethylated)))
	require.NoError(t, tw.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "LOC\tStrand\tCOV\t% mod\tMOD\tSTD\tOTH\tdel\tfail\tdiff\tnocall\tSTATUS", lines[0])
	assert.Equal(t, "11\t+\t12\t75\t9\t3\t0\t0\t0\t0\t0\t1", lines[1])
}

func TestSiteWriter(t *testing.T) {
	var buf bytes.Buffer
	sw := NewSiteWriter(&buf)

	require.NoError(t, sw.WriteHeader())
	require.NoError(t, sw.Write("ref", motif.Site{Position: 3, Base: 'A', Strand: -1, Methylase: "EcoKDam"}))
	require.NoError(t, sw.Flush())

	assert.Equal(t,
		"reference\tmethylase\tposition\tstrand\tbase\nref\tEcoKDam\t3\t-\tA\n",
		buf.String())
}

func analyzedGroup(t *testing.T) *sample.Group {
	t.Helper()
	item := &sample.Item{
		Sample:    "barcode01",
		Reference: fasta.Record{ID: "ref", Seq: "TTGATCTT"},
		Bed: []bedmethyl.Record{
			{Chrom: "ref", StartPosition: 3, EndPosition: 4, ModCode: "a", Strand: "+",
				ValidCoverage: 10, PercentModified: 80},
			{Chrom: "ref", StartPosition: 4, EndPosition: 5, ModCode: "a", Strand: "-",
				ValidCoverage: 10, PercentModified: 20},
		},
	}
	params := sample.DefaultParams()
	params.ProjectName = "proj1"
	params.Methylases = []string{"EcoKDam", "EcoKDcm"}
	g := sample.NewGroup([]*sample.Item{item}, params)
	require.NoError(t, g.RunAll(1))
	return g
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, analyzedGroup(t), 0))
	html := buf.String()

	assert.Contains(t, html, "Methylation report: proj1")
	assert.Contains(t, html, "Sample barcode01 (ref)")
	assert.Contains(t, html, "EcoKDam (GATC)")
	assert.Contains(t, html, "6mA")
	assert.Contains(t, html, `<td class="status-red">1</td>`)
	assert.Contains(t, html, `<td class="status-grey">0</td>`)
	// The Dcm motif has no sites on this reference: its section reports
	// the empty result instead of a table.
	assert.Contains(t, html, "No overlapping calls.")
}

func TestWriteHTMLFeatureCutoff(t *testing.T) {
	// The Dam result has two predicted adenines; a cutoff of one collapses
	// the feature track into a summary line.
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, analyzedGroup(t), 1))

	assert.Contains(t, buf.String(), "2 predicted positions (too many to display).")
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "red", statusColor(bedmethyl.StatusMethylated))
	assert.Equal(t, "yellow", statusColor(bedmethyl.StatusUndetermined))
	assert.Equal(t, "grey", statusColor(bedmethyl.StatusUnmethylated))
	assert.Equal(t, "cyan", statusColor("?"))
}
