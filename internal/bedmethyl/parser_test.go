package bedmethyl

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLine = "plasmid\t11\t12\ta\t4\t+\t11\t12\t255,0,0\t4\t75.0\t3\t1\t0\t0\t0\t0\t0"

func TestParserParsesRecord(t *testing.T) {
	p := NewParserFromReader(strings.NewReader(sampleLine + "\n"))

	r, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, r)
	assert.Equal(t, "plasmid", r.Chrom)
	assert.Equal(t, 11, r.StartPosition)
	assert.Equal(t, 12, r.EndPosition)
	assert.Equal(t, "a", r.ModCode)
	assert.Equal(t, 4, r.Score)
	assert.Equal(t, "+", r.Strand)
	assert.Equal(t, "255,0,0", r.Color)
	assert.Equal(t, 4, r.ValidCoverage)
	assert.Equal(t, 75.0, r.PercentModified)
	assert.Equal(t, 3, r.NMod)
	assert.Equal(t, 1, r.NCanonical)

	// End of input.
	r, err = p.Next()
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestParserSkipsEmptyLines(t *testing.T) {
	p := NewParserFromReader(strings.NewReader("\n" + sampleLine + "\n\n"))
	records, err := p.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParserNoTrailingNewline(t *testing.T) {
	p := NewParserFromReader(strings.NewReader(sampleLine))
	records, err := p.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestParserMissingColumn(t *testing.T) {
	// Row truncated after percent_modified: the first absent column is Nmod.
	short := strings.Join(strings.Split(sampleLine, "\t")[:11], "\t")
	p := NewParserFromReader(strings.NewReader(short + "\n"))

	_, err := p.Next()
	var missing *MissingColumnError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Nmod", missing.Column)
	assert.Equal(t, 1, missing.Line)
}

func TestParserInvalidValues(t *testing.T) {
	badStart := strings.Replace(sampleLine, "\t11\t", "\televen\t", 1)
	p := NewParserFromReader(strings.NewReader(badStart + "\n"))
	_, err := p.Next()
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)

	badStrand := strings.Replace(sampleLine, "\t+\t", "\t*\t", 1)
	p = NewParserFromReader(strings.NewReader(badStrand + "\n"))
	_, err = p.Next()
	assert.ErrorAs(t, err, &parseErr)
}

func TestParserGzippedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.bed.gz")
	f, err := os.Create(path)
	require.NoError(t, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(sampleLine + "\n"))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	require.NoError(t, f.Close())

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	records, err := p.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "plasmid", records[0].Chrom)
}

func TestParserPlainFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.bed")
	require.NoError(t, os.WriteFile(path, []byte(sampleLine+"\n"), 0o644))

	p, err := NewParser(path)
	require.NoError(t, err)
	defer p.Close()

	records, err := p.ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
