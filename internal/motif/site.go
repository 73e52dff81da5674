package motif

// Site is the absolute coordinate and strand of one specifically modified
// base, derived from a match plus the methylase offsets. Base is the
// modified nucleotide as observed on the strand it sits on. Multiple
// methylases may independently produce sites at the same position; no
// deduplication happens here — each records that the position is modified
// under that methylase's definition.
type Site struct {
	Position  int
	Base      byte
	Strand    int8
	Methylase string
}

// SitesFromMatch converts a located pattern occurrence into the modified
// base positions it implies.
//
// For a plus-strand match the modified base sits at Start+IndexPos, with a
// second site at Start+IndexNeg on the minus strand when the pattern has an
// antisense offset.
//
// For a reverse-complement match the pattern was matched back-to-front
// against the forward sequence, so offsets count from the match end:
// End-1-IndexPos lands on the minus strand and End-1-IndexNeg on the plus
// strand. The -1 accounts for End being exclusive; dropping it shifts
// every reverse-strand call by one base.
func SitesFromMatch(match Match, m *Methylase) []Site {
	sites := make([]Site, 0, 2)
	if match.Strand == 1 {
		sites = append(sites, Site{
			Position:  match.Start + m.IndexPos,
			Base:      m.Sequence[m.IndexPos],
			Strand:    1,
			Methylase: m.Name,
		})
		if m.IndexNeg != NoIndex {
			base, _ := complementBase(m.Sequence[m.IndexNeg])
			sites = append(sites, Site{
				Position:  match.Start + m.IndexNeg,
				Base:      base,
				Strand:    -1,
				Methylase: m.Name,
			})
		}
		return sites
	}

	sites = append(sites, Site{
		Position:  match.End - 1 - m.IndexPos,
		Base:      m.Sequence[m.IndexPos],
		Strand:    -1,
		Methylase: m.Name,
	})
	if m.IndexNeg != NoIndex {
		base, _ := complementBase(m.Sequence[m.IndexNeg])
		sites = append(sites, Site{
			Position:  match.End - 1 - m.IndexNeg,
			Base:      base,
			Strand:    1,
			Methylase: m.Name,
		})
	}
	return sites
}
