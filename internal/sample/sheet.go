package sample

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/fasta"
)

// Sample sheet columns, headerless, in this order: projectname, sample,
// reference FASTA name (without extension), bedmethyl file name.
const sampleSheetColumns = 4

// ReadSampleSheet loads a sample sheet into a Group, reading each sample's
// reference from fastaDir and its bedmethyl table from bedDir. Values
// already set in params win over values derived from the sheet.
func ReadSampleSheet(sampleSheet, fastaDir, bedDir string, params Params) (*Group, error) {
	f, err := os.Open(sampleSheet)
	if err != nil {
		return nil, fmt.Errorf("open sample sheet: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read sample sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sample sheet %s is empty", sampleSheet)
	}

	var items []*Item
	for i, row := range rows {
		if len(row) < sampleSheetColumns {
			return nil, fmt.Errorf("sample sheet row %d: expected %d columns, found %d",
				i+1, sampleSheetColumns, len(row))
		}
		// First row's first column carries the project name unless the
		// caller already chose one.
		if i == 0 && params.ProjectName == "" {
			params.ProjectName = strings.TrimSpace(row[0])
		}

		reference, err := fasta.ReadOne(filepath.Join(fastaDir, strings.TrimSpace(row[2])+".fa"))
		if err != nil {
			return nil, fmt.Errorf("sample sheet row %d: %w", i+1, err)
		}

		parser, err := bedmethyl.NewParser(filepath.Join(bedDir, strings.TrimSpace(row[3])))
		if err != nil {
			return nil, fmt.Errorf("sample sheet row %d: %w", i+1, err)
		}
		records, err := parser.ReadAll()
		parser.Close()
		if err != nil {
			return nil, fmt.Errorf("sample sheet row %d: %w", i+1, err)
		}

		items = append(items, &Item{
			Sample:    strings.TrimSpace(row[1]),
			Reference: reference,
			Bed:       records,
		})
	}

	return NewGroup(items, params), nil
}

// ReadParameterSheet loads a Parameter,Value CSV into Params. Missing
// cutoffs fall back to the defaults; unknown parameters are ignored.
func ReadParameterSheet(path string) (Params, error) {
	params := DefaultParams()

	f, err := os.Open(path)
	if err != nil {
		return params, fmt.Errorf("open parameter sheet: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return params, fmt.Errorf("read parameter sheet: %w", err)
	}
	if len(rows) == 0 {
		return params, fmt.Errorf("parameter sheet %s is empty", path)
	}

	paramCol, valueCol := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case "Parameter":
			paramCol = i
		case "Value":
			valueCol = i
		}
	}
	if paramCol == -1 || valueCol == -1 {
		return params, fmt.Errorf("parameter sheet %s: Parameter and Value columns required", path)
	}

	for i, row := range rows[1:] {
		if len(row) <= paramCol || len(row) <= valueCol {
			continue
		}
		key := strings.TrimSpace(row[paramCol])
		value := strings.TrimSpace(row[valueCol])
		switch key {
		case "projectname":
			params.ProjectName = value
		case "methylases":
			// Space-separated methylase names.
			params.Methylases = strings.Fields(value)
		case "methylated_cutoff":
			params.MethylatedCutoff, err = strconv.ParseFloat(value, 64)
			if err != nil {
				return params, fmt.Errorf("parameter sheet row %d: invalid methylated_cutoff %q", i+2, value)
			}
		case "unmethylated_cutoff":
			params.UnmethylatedCutoff, err = strconv.ParseFloat(value, 64)
			if err != nil {
				return params, fmt.Errorf("parameter sheet row %d: invalid unmethylated_cutoff %q", i+2, value)
			}
		}
	}

	return params, nil
}
