// Package sample orchestrates per-sample methylation analyses: one
// reference sequence crossed with one bedmethyl table across a set of
// methylases.
package sample

import (
	"fmt"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Default classification cutoffs, based on preliminary nanopore data.
const (
	DefaultMethylatedCutoff   = 0.7
	DefaultUnmethylatedCutoff = 0.3
)

// Params holds the analysis parameters shared by every sample of a
// project.
type Params struct {
	ProjectName        string
	Methylases         []string // names into the motif catalogs; empty selects the default catalog
	MethylatedCutoff   float64
	UnmethylatedCutoff float64
}

// DefaultParams returns parameters with the default cutoffs.
func DefaultParams() Params {
	return Params{
		MethylatedCutoff:   DefaultMethylatedCutoff,
		UnmethylatedCutoff: DefaultUnmethylatedCutoff,
	}
}

// Validate rejects unusable parameters before any analysis starts.
func (p Params) Validate() error {
	if err := bedmethyl.ValidateCutoffs(p.MethylatedCutoff, p.UnmethylatedCutoff); err != nil {
		return err
	}
	_, err := p.Catalog()
	return err
}

// Catalog resolves the requested methylase names. An empty request
// selects the full default catalog.
func (p Params) Catalog() ([]*motif.Methylase, error) {
	if len(p.Methylases) == 0 {
		return motif.Catalog(), nil
	}
	catalog := make([]*motif.Methylase, 0, len(p.Methylases))
	for _, name := range p.Methylases {
		m, ok := motif.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown methylase %q", name)
		}
		catalog = append(catalog, m)
	}
	return catalog, nil
}
