package advisor

import (
	"html/template"
	"strings"
)

// adviceTemplate is the fixed markup the chat surface displays.
var adviceTemplate = template.Must(template.New("advice").Parse(
	`<div class="advice">
<p>{{.Message}}</p>
{{if .Actions}}<ul>
{{range .Actions}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{if .Encouragement}}<p class="encouragement">{{.Encouragement}}</p>
{{end}}</div>`))

// RenderHTML renders the structured guidance into the fixed HTML block
// stored with the advice record.
func RenderHTML(g *Guidance) string {
	var b strings.Builder
	if err := adviceTemplate.Execute(&b, g); err != nil {
		// The template only touches plain string fields; execution cannot
		// fail on a well-formed Guidance.
		return g.Message
	}
	return b.String()
}
