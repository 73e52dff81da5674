// Package annotate drives the motif engine over a methylase catalog to
// produce modification-site records and display annotations for a
// reference sequence.
package annotate

import (
	"sort"

	"go.uber.org/zap"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Annotator predicts modification sites on a sequence using a fixed
// methylase catalog. It holds no per-call state: the same sequence and
// catalog always produce the same annotations.
type Annotator struct {
	catalog []*motif.Methylase
	logger  *zap.Logger
}

// NewAnnotator creates an annotator over the given catalog. The catalog
// slice is used as-is and must not be mutated afterwards.
func NewAnnotator(catalog []*motif.Methylase) *Annotator {
	return &Annotator{
		catalog: catalog,
		logger:  zap.NewNop(),
	}
}

// SetLogger sets the logger for info messages.
func (a *Annotator) SetLogger(l *zap.Logger) {
	a.logger = l
}

// Catalog returns the annotator's methylase catalog.
func (a *Annotator) Catalog() []*motif.Methylase {
	return a.catalog
}

// Annotate returns every modification site the catalog predicts on the
// sequence. Sites are grouped by methylase in catalog order; within one
// methylase's contribution they are sorted by position.
func (a *Annotator) Annotate(seq string) []motif.Site {
	var sites []motif.Site
	for _, m := range a.catalog {
		start := len(sites)
		for _, match := range motif.FindSiteMatches(seq, m) {
			sites = append(sites, motif.SitesFromMatch(match, m)...)
		}
		group := sites[start:]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Position < group[j].Position
		})
		a.logger.Debug("annotated methylase",
			zap.String("methylase", m.Name),
			zap.Int("sites", len(group)))
	}
	return sites
}

// AnnotateSites returns the modification sites for a single methylase.
func AnnotateSites(seq string, m *motif.Methylase) []motif.Site {
	return NewAnnotator([]*motif.Methylase{m}).Annotate(seq)
}
