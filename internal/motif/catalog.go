package motif

// must panics on a bad built-in definition; the catalogs below are static
// and validated at package init.
func must(m *Methylase, err error) *Methylase {
	if err != nil {
		panic(err)
	}
	return m
}

func dnd(name, sequence string, indexPos, indexNeg int) *Methylase {
	m := must(NewMethylase(name, sequence, indexPos, indexNeg))
	m.Category = CategoryDnd
	return m
}

var (
	// Cytosine methylases.
	aluI     = must(NewMethylase("AluI", "AGCT", 2, 1))
	bamHI    = must(NewMethylase("BamHI", "GGATCC", 4, 1))
	cpG      = must(NewMethylase("CpG", "CG", 0, 1))
	ecoKDcm  = must(NewMethylase("EcoKDcm", "CCWGG", 1, 3))
	gpC      = must(NewMethylase("GpC", "GC", 1, 0))
	haeIII   = must(NewMethylase("HaeIII", "GGCC", 2, 1))
	hhal     = must(NewMethylase("Hhal", "GCGC", 1, 2))
	hpaII    = must(NewMethylase("HpaII", "CCGG", 1, 2))
	metC     = must(NewMethylase("MetC", "C", 0, NoIndex)) // any cytosine, not an enzyme
	mspI     = must(NewMethylase("MspI", "CCGG", 0, 3))
	// Adenine methylases.
	ecoBI   = must(NewMethylase("EcoBI", "TGANNNNNNNNTGCT", 2, 11))
	ecoGII  = must(NewMethylase("EcoGII", "A", 0, NoIndex)) // any adenine; excluded from the default catalog
	ecoKDam = must(NewMethylase("EcoKDam", "GATC", 1, 2))
	ecoKI   = must(NewMethylase("EcoKI", "AACNNNNNNGTGC", 1, 10))
	ecoRI   = must(NewMethylase("EcoRI", "GAATTC", 2, 3))
	taqI    = must(NewMethylase("TaqI", "TCGA", 3, 0))
	// Phosphorothioation (Dnd) systems.
	dndEcoB7A  = dnd("Dnd_EcoB7A", "GAAC", 0, 3)
	dndSli1326 = dnd("Dnd_Sli1326", "GGCC", 0, 3)
	dndVciFF75 = dnd("Dnd_VciFF75", "CCA", 0, 2)
)

// Catalog returns the default methylase catalog in its canonical order.
// The returned slice is a fresh copy; the entries themselves are shared
// and must be treated as read-only.
func Catalog() []*Methylase {
	return []*Methylase{
		aluI, bamHI, cpG, ecoKDcm, gpC, haeIII, hhal, hpaII, metC, mspI,
		ecoBI, ecoKDam, ecoKI, ecoRI, taqI,
	}
}

// DndCatalog returns the phosphorothioation catalog.
func DndCatalog() []*Methylase {
	return []*Methylase{dndEcoB7A, dndSli1326, dndVciFF75}
}

// Lookup finds a definition by name across the methylase and Dnd catalogs,
// including entries excluded from the default catalog (EcoGII).
func Lookup(name string) (*Methylase, bool) {
	for _, m := range Catalog() {
		if m.Name == name {
			return m, true
		}
	}
	if name == ecoGII.Name {
		return ecoGII, true
	}
	for _, m := range DndCatalog() {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}
