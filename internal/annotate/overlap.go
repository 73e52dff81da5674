package annotate

import (
	"fmt"
	"strings"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Methylator checks whether known methylase motifs overlap occurrences of
// a restriction-enzyme recognition site in a sequence. Each raw site match
// is widened to the minimal window that could contain a methylase motif
// straddling it, then the methylase pattern is tested on both strands
// inside the window. The output is a plain-text diagnostic report.
type Methylator struct {
	Sequence   string
	Site       string
	Methylases []*motif.Methylase

	regions []motif.Match
}

// NewMethylator locates the restriction site and its reverse complement in
// the sequence. A nil methylases slice selects the default catalog.
func NewMethylator(sequence, site string, methylases []*motif.Methylase) (*Methylator, error) {
	if methylases == nil {
		methylases = motif.Catalog()
	}

	siteMotif, err := motif.NewMethylase(site, site, 0, motif.NoIndex)
	if err != nil {
		return nil, fmt.Errorf("restriction site %q: %w", site, err)
	}

	return &Methylator{
		Sequence:   sequence,
		Site:       siteMotif.Sequence,
		Methylases: methylases,
		regions:    motif.FindSiteMatches(sequence, siteMotif),
	}, nil
}

// Regions returns the located restriction-site occurrences.
func (mt *Methylator) Regions() []motif.Match {
	return mt.regions
}

// Report tests every methylase against every extended site region and
// renders the findings.
func (mt *Methylator) Report() string {
	var b strings.Builder
	b.WriteString("Matches against methylase enzyme sites:\n\n")
	for _, m := range mt.Methylases {
		mt.reportOne(&b, m)
		b.WriteByte('\n')
	}
	return b.String()
}

func (mt *Methylator) reportOne(b *strings.Builder, m *motif.Methylase) {
	b.WriteString(m.Name + "\n")
	b.WriteString(strings.Repeat("=", len(m.Name)) + "\n")

	for _, region := range mt.regions {
		extended := motif.ExtendMatch(region, m, len(mt.Sequence))
		regionSeq := mt.Sequence[extended.Start:extended.End]
		fmt.Fprintf(b, "Region: %d-%d\n", extended.Start, extended.End)

		if matches, err := motif.FindMatches(regionSeq, m.Sequence); err == nil && len(matches) > 0 {
			fmt.Fprintf(b, "Match in positive strand: %s\n", regionSeq)
		} else {
			b.WriteString("Positive strand: -\n")
		}

		if matches, err := motif.FindMatches(regionSeq, m.ReverseComp); err == nil && len(matches) > 0 {
			fmt.Fprintf(b, "Match in negative strand: %s\n", regionSeq)
		} else {
			b.WriteString("Negative strand: -\n")
		}
		b.WriteByte('\n')
	}
}
