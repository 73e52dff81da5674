// Package bedmethyl parses modkit-style bedmethyl tables and reconciles
// them against predicted modification sites.
package bedmethyl

import "fmt"

// Header lists the bedmethyl columns in file order, per the modkit
// bedmethyl description.
var Header = []string{
	"chrom",
	"start_position",
	"end_position",
	"modified_base_code_and_motif",
	"score",
	"strand",
	"strand_start_position",
	"strand_end_position",
	"color",
	"Nvalid_cov",
	"percent_modified",
	"Nmod",
	"Ncanonical",
	"Nother_mod",
	"Ndelete",
	"Nfail",
	"Ndiff",
	"Nnocall",
}

// Record is one bedmethyl row: per-position modification statistics
// produced by a base-modification caller. Reconciliation never rewrites
// these columns, it only derives a status from them.
type Record struct {
	Chrom               string
	StartPosition       int
	EndPosition         int
	ModCode             string // modified_base_code_and_motif
	Score               int
	Strand              string // "+" or "-"
	StrandStartPosition int
	StrandEndPosition   int
	Color               string
	ValidCoverage       int     // Nvalid_cov
	PercentModified     float64 // 0-100
	NMod                int
	NCanonical          int
	NOtherMod           int
	NDelete             int
	NFail               int
	NDiff               int
	NNocall             int
}

// Classification status symbols. "?" is reserved for a future
// low-coverage status.
const (
	StatusMethylated   = "1"
	StatusUnmethylated = "0"
	StatusUndetermined = "U"
)

// Classified is a record with its derived methylation status.
type Classified struct {
	Record
	Status string
}

// ConfigurationError reports unusable classification thresholds.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Message
}

// MissingColumnError reports a table row lacking an expected column. It is
// raised at the point the column is first needed, not eagerly at load.
type MissingColumnError struct {
	Line   int
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("bedmethyl line %d: missing column %s", e.Line, e.Column)
}

// ParseError reports a malformed bedmethyl value with line context.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("bedmethyl parse error at line %d: %s", e.Line, e.Message)
}
