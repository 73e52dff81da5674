package annotate

import "github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"

// Feature kinds.
const (
	KindRecognitionSite = "recognition_site"
	KindModification    = "modification"
)

// Feature is a display annotation on a reference sequence: either a whole
// pattern occurrence or a single modified base. End is exclusive.
// Modification features carry the modified base as observed on Strand.
type Feature struct {
	Kind      string
	Start     int
	End       int
	Strand    int8 // 0 for recognition-site features
	Methylase string
	Base      byte   // modification features only
	Status    string // classification symbol, filled in by reconciliation
}

// AnnotateRecord returns display features for every catalog methylase:
// one recognition-site feature per pattern occurrence plus one
// modification feature per predicted site.
func (a *Annotator) AnnotateRecord(seq string) []Feature {
	var features []Feature
	for _, m := range a.catalog {
		for _, match := range motif.FindSiteMatches(seq, m) {
			features = append(features, Feature{
				Kind:      KindRecognitionSite,
				Start:     match.Start,
				End:       match.End,
				Strand:    0,
				Methylase: m.Name,
			})
			for _, site := range motif.SitesFromMatch(match, m) {
				features = append(features, Feature{
					Kind:      KindModification,
					Start:     site.Position,
					End:       site.Position + 1,
					Strand:    site.Strand,
					Methylase: site.Methylase,
					Base:      site.Base,
				})
			}
		}
	}
	return features
}

// ModificationFeatures filters features down to modified-base annotations
// whose base matches the given unmodified base letter.
func ModificationFeatures(features []Feature, base byte) []Feature {
	var out []Feature
	for _, f := range features {
		if f.Kind == KindModification && f.Base == base {
			out = append(out, f)
		}
	}
	return out
}
