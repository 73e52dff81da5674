package motif

// ExtendMatch widens a raw restriction-site match to the minimal window
// guaranteed to contain every base the methylase could modify around it:
// upstream by the antisense offset and downstream by the bases remaining
// after the sense offset. The window is clamped to [0, seqLen].
func ExtendMatch(match Match, m *Methylase, seqLen int) Match {
	upstream := 0
	if m.IndexNeg != NoIndex {
		upstream = m.IndexNeg
	}
	downstream := len(m.Sequence) - m.IndexPos - 1

	start := match.Start - upstream
	if start < 0 {
		start = 0
	}
	end := match.End + downstream
	if end > seqLen {
		end = seqLen
	}
	return Match{Start: start, End: end, Strand: match.Strand}
}
