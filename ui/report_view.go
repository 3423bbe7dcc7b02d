package ui

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/google/uuid"

	"ecoscan/domain/audit"
	"ecoscan/internal/errors"
)

// reportTemplate renders a stored report as a minimal HTML page. Every field
// is auto-escaped by html/template; the narrative summary is the only
// pre-rendered fragment, produced by renderSummaryHTML with raw HTML stripped.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html><head><title>EcoScan Report</title></head><body>
<h1>EcoScan Report: {{.Report.Category}}</h1>
<h2>Score: {{.Report.Scorecard.Total}}/100</h2>
<blockquote>{{.Summary}}</blockquote>
<h3>Verdicts</h3>
<ul>
{{- range .Report.Verdicts}}
<li><strong>{{.Item}}</strong> [{{.Status}}, {{if .Consensus}}consensus{{else}}arbitrated{{end}}]: {{.Explanation}}</li>
{{- end}}
</ul>
<h3>Logistics</h3>
<p>{{.Report.Logistics.Origin}} ({{printf "%+d" .Report.Logistics.ScoreAdjust}}): {{.Report.Logistics.Remark}}</p>
{{- if .Report.Alternatives}}
<h3>Better alternatives</h3>
<ul>
{{- range .Report.Alternatives}}
<li><strong>{{.Name}}</strong>: {{.Summary}}</li>
{{- end}}
</ul>
{{- end}}
{{- if .Report.Scorecard.Notes}}
<h3>Notes</h3>
<ul>
{{- range .Report.Scorecard.Notes}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</body></html>
`))

type reportPage struct {
	Report  audit.AuditReport
	Summary template.HTML
}

// handleReportView renders a stored report as HTML
func (a *App) handleReportView(w http.ResponseWriter, r *http.Request) {
	if a.scans == nil {
		writeError(w, http.StatusServiceUnavailable, errors.New(errors.CodeDatabaseError, "scan history is disabled"))
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.ValidationError("invalid scan id"))
		return
	}

	record, err := a.scans.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, errors.NotFound("scan"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(renderReportHTML(record.Report)))
}

func renderReportHTML(report audit.AuditReport) string {
	var b strings.Builder
	page := reportPage{Report: report, Summary: renderSummaryHTML(report.Summary)}
	if err := reportTemplate.Execute(&b, page); err != nil {
		return "<!DOCTYPE html><html><body><p>report unavailable</p></body></html>"
	}
	return b.String()
}

// renderSummaryHTML converts the narrative's markdown emphasis to HTML.
// SkipHTML drops any raw HTML the model (or a stored claim echoed into the
// summary) may have produced, so only generated markup reaches the page.
func renderSummaryHTML(summary string) template.HTML {
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.SkipHTML,
	})
	return template.HTML(markdown.ToHTML([]byte(summary), nil, renderer))
}
