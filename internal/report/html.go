package report

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/bedmethyl"
	"github.com/Edinburgh-Genome-Foundry/EpiJinn/internal/sample"
)

// FeatureDisplayCutoff is the number of modified-base features above which
// a result's feature track is summarized instead of rendered.
const FeatureDisplayCutoff = 50

// statusColor maps a classification symbol to its display color.
// "?" is reserved for a future low-coverage status.
func statusColor(status string) string {
	switch status {
	case bedmethyl.StatusMethylated:
		return "red"
	case bedmethyl.StatusUndetermined:
		return "yellow"
	case bedmethyl.StatusUnmethylated:
		return "grey"
	case "?":
		return "cyan"
	}
	return "white"
}

var reportTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"statusColor": statusColor,
	"showTrack":   func(n, cutoff int) bool { return n > 0 && n <= cutoff },
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Methylation report: {{.ProjectName}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin: 1em 0; }
th, td { border: 1px solid #999; padding: 2px 8px; text-align: right; }
th { background: #eee; }
td.status-red { background: #e66; }
td.status-yellow { background: #ee6; }
td.status-grey { background: #bbb; }
.empty { color: #666; font-style: italic; }
</style>
</head>
<body>
<h1>Methylation report: {{.ProjectName}}</h1>
<p>Generated on {{.Date}}. Cutoffs: methylated &ge; {{.MethylatedCutoff}}, unmethylated &le; {{.UnmethylatedCutoff}}.</p>
{{range .Samples}}
<h2>Sample {{.Sample}} ({{.Reference}})</h2>
{{range .Results}}
<h3>{{.Methylase.Name}} ({{.Methylase.Sequence}}) &times; {{.ModName}}</h3>
{{if .Table}}
<p>{{.Summary.Methylated}} methylated, {{.Summary.Unmethylated}} unmethylated, {{.Summary.Undetermined}} undetermined.</p>
{{if showTrack (len .Features) $.FeatureCutoff}}
<p>Modified bases:
{{- range .Features}}
<span title="{{.Start}}">{{printf "%c" .Base}}{{.Start}}({{.Status}})</span>
{{- end}}</p>
{{else if .Features}}
<p class="empty">{{len .Features}} predicted positions (too many to display).</p>
{{end}}
<table>
<tr><th>LOC</th><th>Strand</th><th>COV</th><th>% mod</th><th>MOD</th><th>STD</th><th>OTH</th><th>del</th><th>fail</th><th>diff</th><th>nocall</th><th>STATUS</th></tr>
{{range .Table}}
<tr>
<td>{{.StartPosition}}</td><td>{{.Strand}}</td><td>{{.ValidCoverage}}</td><td>{{.PercentModified}}</td>
<td>{{.NMod}}</td><td>{{.NCanonical}}</td><td>{{.NOtherMod}}</td><td>{{.NDelete}}</td>
<td>{{.NFail}}</td><td>{{.NDiff}}</td><td>{{.NNocall}}</td>
<td class="status-{{statusColor .Status}}">{{.Status}}</td>
</tr>
{{end}}
</table>
{{else}}
<p class="empty">No overlapping calls.</p>
{{end}}
{{end}}
{{end}}
</body>
</html>
`))

// resultView decorates a sample.Result with display helpers.
type resultView struct {
	sample.Result
	ModName string
}

type sampleView struct {
	Sample    string
	Reference string
	Results   []resultView
}

type reportView struct {
	ProjectName        string
	Date               string
	MethylatedCutoff   float64
	UnmethylatedCutoff float64
	FeatureCutoff      int
	Samples            []sampleView
}

// WriteHTML renders the project report for an analyzed group. A
// featureCutoff of zero or less selects FeatureDisplayCutoff.
func WriteHTML(w io.Writer, g *sample.Group, featureCutoff int) error {
	if featureCutoff <= 0 {
		featureCutoff = FeatureDisplayCutoff
	}
	view := reportView{
		ProjectName:        g.Params.ProjectName,
		Date:               time.Now().Format("2006-01-02"),
		MethylatedCutoff:   g.Params.MethylatedCutoff,
		UnmethylatedCutoff: g.Params.UnmethylatedCutoff,
		FeatureCutoff:      featureCutoff,
	}
	for _, item := range g.Items {
		sv := sampleView{Sample: item.Sample, Reference: item.Reference.ID}
		for _, r := range item.Results {
			modName := r.Modification
			if r.Code.Name != "" {
				modName = fmt.Sprintf("%s (%s)", r.Code.Name, r.Code.Abbreviation)
			}
			sv.Results = append(sv.Results, resultView{Result: r, ModName: modName})
		}
		view.Samples = append(view.Samples, sv)
	}

	return reportTemplate.Execute(w, view)
}
