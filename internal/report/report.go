// Package report renders projection summaries as markdown for the terminal.
package report

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/jask/moneydash/internal/format"
	"github.com/jask/moneydash/internal/projection"
)

// Milestone is one row of the report table: the value of every scenario in
// Year.
type Milestone struct {
	Year   int
	Values []string
}

// Projection is the data behind the markdown report.
type Projection struct {
	Title        string
	Start        string
	Contribution string
	Years        int
	Scenarios    []ScenarioLine
	Milestones   []Milestone
}

// ScenarioLine describes one scenario column.
type ScenarioLine struct {
	Name  string
	Rate  string
	Final string
}

// Build collects milestone rows every step periods plus the final one.
func Build(params projection.Params, set []projection.Series, money format.Formatter, step int) Projection {
	if step <= 0 {
		step = 5
	}
	p := Projection{
		Title:        "Investment projection",
		Start:        money.Whole(params.StartValue),
		Contribution: money.Whole(params.PeriodicContribution),
		Years:        params.HorizonPeriods,
	}
	n := projection.CommonLength(set)
	for _, s := range set {
		line := ScenarioLine{Name: s.Name, Rate: "n/a", Final: "n/a"}
		if n > 0 {
			line.Final = money.Whole(s.Points[n-1].Value)
		}
		p.Scenarios = append(p.Scenarios, line)
	}
	for i := 0; i < n; i++ {
		if i%step != 0 && i != n-1 {
			continue
		}
		m := Milestone{Year: set[0].Points[i].Period}
		for _, s := range set {
			m.Values = append(m.Values, money.Whole(s.Points[i].Value))
		}
		p.Milestones = append(p.Milestones, m)
	}
	return p
}

// WithRates fills in the rate column from the scenarios the set was built
// from. Scenarios are matched by position.
func (p Projection) WithRates(scenarios []projection.Scenario) Projection {
	for i := range p.Scenarios {
		if i < len(scenarios) {
			p.Scenarios[i].Rate = fmt.Sprintf("%.1f%%", scenarios[i].Rate*100)
		}
	}
	return p
}

const projectionTemplate = `# {{ .Title }}

Starting balance **{{ .Start }}**, contributing **{{ .Contribution }}** per year for {{ .Years }} years.

{{- if .Scenarios }}

## Scenarios

| Scenario | Annual rate | Final value |
|:---|---:|---:|
{{- range .Scenarios }}
| {{ .Name }} | {{ .Rate }} | {{ .Final }} |
{{- end }}
{{- end -}}

{{- if .Milestones }}

## Milestones

| Year |{{ range .Scenarios }} {{ .Name }} |{{ end }}
|:---|{{ range .Scenarios }}---:|{{ end }}
{{- range .Milestones }}
| {{ .Year }} |{{ range .Values }} {{ . }} |{{ end }}
{{- end }}
{{- end }}
`

var tmpl = template.Must(template.New("projection").Parse(projectionTemplate))

// Markdown renders p as a markdown document.
func Markdown(p Projection) (string, error) {
	var b strings.Builder
	if err := tmpl.Execute(&b, p); err != nil {
		return "", fmt.Errorf("render projection report: %w", err)
	}
	return b.String(), nil
}

// Terminal renders markdown for display with the dark glamour style.
func Terminal(md string) (string, error) {
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return "", fmt.Errorf("glamour render: %w", err)
	}
	return out, nil
}
