package sample

import (
	"fmt"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/annotate"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/motif"
)

// Item is one sample's analysis input: a reference sequence plus the
// bedmethyl table called against it.
type Item struct {
	Sample    string // sample name, for example a barcode id
	Reference fasta.Record
	Bed       []bedmethyl.Record

	// Results is populated by Analyze, one entry per methylase ×
	// observed modification code.
	Results []Result
}

// Result is one methylase × modification-code slice of a sample's table,
// classified against the thresholds.
type Result struct {
	Sample       string
	Reference    string
	Methylase    *motif.Methylase
	Modification string                      // modified_base_code_and_motif value
	Code         bedmethyl.ModificationCode  // zero value when the code is unrecognized
	Sites        []motif.Site                // sites the methylase predicts on the reference
	Features     []annotate.Feature          // modified-base display features with Status filled in
	Table        []bedmethyl.Classified
	Summary      bedmethyl.Summary
}

// Analyze runs every requested methylase against every modification code
// observed in the sample's table. Empty slices are kept as results so the
// report can state that nothing was observed; they are not errors.
func (it *Item) Analyze(params Params) error {
	if err := bedmethyl.ValidateCutoffs(params.MethylatedCutoff, params.UnmethylatedCutoff); err != nil {
		return err
	}
	catalog, err := params.Catalog()
	if err != nil {
		return err
	}

	codes := bedmethyl.ModCodes(it.Bed)
	it.Results = make([]Result, 0, len(catalog)*len(codes))

	for _, m := range catalog {
		sites := annotate.AnnotateSites(it.Reference.Seq, m)
		for _, code := range codes {
			result, err := it.analyzeOne(m, sites, code, params)
			if err != nil {
				return fmt.Errorf("sample %s, methylase %s: %w", it.Sample, m.Name, err)
			}
			it.Results = append(it.Results, result)
		}
	}
	return nil
}

func (it *Item) analyzeOne(m *motif.Methylase, sites []motif.Site, code string, params Params) (Result, error) {
	subset := bedmethyl.SubsetByModCode(it.Bed, code)
	matched := bedmethyl.SubsetByStrandPosition(subset, sites)
	classified, err := bedmethyl.Classify(matched, params.MethylatedCutoff, params.UnmethylatedCutoff)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Sample:       it.Sample,
		Reference:    it.Reference.ID,
		Methylase:    m,
		Modification: code,
		Sites:        sites,
		Table:        classified,
		Summary:      bedmethyl.Summarize(classified),
	}
	if mc, ok := bedmethyl.LookupCode(code); ok {
		result.Code = mc
		result.Features = it.statusFeatures(m, mc.UnmodifiedBase, classified)
	}
	return result, nil
}

// statusFeatures builds the displayable modified-base features for one
// methylase, colored by the classification of the matching table row.
// Features without an observed row keep an empty status.
func (it *Item) statusFeatures(m *motif.Methylase, base byte, classified []bedmethyl.Classified) []annotate.Feature {
	statuses := make(map[string]string, len(classified))
	for _, c := range classified {
		statuses[fmt.Sprintf("%d%s", c.StartPosition, c.Strand)] = c.Status
	}

	a := annotate.NewAnnotator([]*motif.Methylase{m})
	features := annotate.ModificationFeatures(a.AnnotateRecord(it.Reference.Seq), base)
	for i := range features {
		key := fmt.Sprintf("%d%s", features[i].Start, bedmethyl.StrandString(features[i].Strand))
		features[i].Status = statuses[key]
	}
	return features
}
