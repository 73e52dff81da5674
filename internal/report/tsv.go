// Package report renders classified methylation tables and project
// reports. Empty result tables are suppressed, not errored on.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// TableWriter writes classified bedmethyl rows in tab-delimited format
// using the compact report column names.
type TableWriter struct {
	w       *bufio.Writer
	columns []string
}

// NewTableWriter creates a tab-delimited classified-table writer.
func NewTableWriter(w io.Writer) *TableWriter {
	return &TableWriter{
		w: bufio.NewWriter(w),
		columns: []string{
			"LOC",
			"Strand",
			"COV",
			"% mod",
			"MOD",
			"STD",
			"OTH",
			"del",
			"fail",
			"diff",
			"nocall",
			"STATUS",
		},
	}
}

// WriteHeader writes the header line.
func (tw *TableWriter) WriteHeader() error {
	_, err := tw.w.WriteString(strings.Join(tw.columns, "\t") + "\n")
	return err
}

// Write writes a single classified row.
func (tw *TableWriter) Write(c bedmethyl.Classified) error {
	_, err := fmt.Fprintf(tw.w, "%d\t%s\t%d\t%g\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
		c.StartPosition,
		c.Strand,
		c.ValidCoverage,
		c.PercentModified,
		c.NMod,
		c.NCanonical,
		c.NOtherMod,
		c.NDelete,
		c.NFail,
		c.NDiff,
		c.NNocall,
		c.Status,
	)
	return err
}

// Flush flushes buffered output.
func (tw *TableWriter) Flush() error {
	return tw.w.Flush()
}

// SiteWriter writes predicted modification sites in tab-delimited format.
type SiteWriter struct {
	w *bufio.Writer
}

// NewSiteWriter creates a site writer.
func NewSiteWriter(w io.Writer) *SiteWriter {
	return &SiteWriter{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line.
func (sw *SiteWriter) WriteHeader() error {
	_, err := sw.w.WriteString("reference\tmethylase\tposition\tstrand\tbase\n")
	return err
}

// Write writes a single site.
func (sw *SiteWriter) Write(reference string, site motif.Site) error {
	_, err := fmt.Fprintf(sw.w, "%s\t%s\t%d\t%s\t%c\n",
		reference,
		site.Methylase,
		site.Position,
		bedmethyl.StrandString(site.Strand),
		site.Base,
	)
	return err
}

// Flush flushes buffered output.
func (sw *SiteWriter) Flush() error {
	return sw.w.Flush()
}
