package report

import (
	"bytes"
	"fmt"
	"html/template"
)

// reportTmpl is a self-contained page: no external assets, so the same
// bytes render in a browser and print to PDF.
var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"mark": Mark,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Validation Report: {{.Filename}}</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2rem auto; max-width: 60rem; color: #1a1a2e; }
h1 { border-bottom: 2px solid #1a1a2e; padding-bottom: .3rem; }
table.summary { border-collapse: collapse; margin: 1rem 0; }
table.summary th, table.summary td { border: 1px solid #ccc; padding: .35rem .8rem; text-align: left; }
section { margin: 1.5rem 0; page-break-inside: avoid; }
pre { background: #f5f5f5; border: 1px solid #ddd; padding: .8rem; overflow-x: auto; font-size: .85rem; }
.passed { color: #1b7f3b; }
.failed { color: #b42318; }
.indeterminate { color: #8a6d00; }
</style>
</head>
<body>
<h1>Validation Report: {{.Filename}}</h1>
<p>{{.Passed}} passed, {{.Failed}} failed, {{.Indeterminate}} indeterminate</p>
<table class="summary">
<tr><th>Check</th><th>Status</th></tr>
{{range .Results}}<tr><td>{{.Name}}</td><td class="{{.Status}}">{{mark .Status}} {{.Status}}</td></tr>
{{end}}</table>
{{range .Results}}<section>
<h2 class="{{.Status}}">{{mark .Status}} {{.Name}}</h2>
{{if .Message}}<pre>{{.Message}}</pre>{{end}}
</section>
{{end}}</body>
</html>
`))

// HTML renders the document as a standalone HTML page.
func HTML(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := reportTmpl.Execute(&buf, d); err != nil {
		return nil, fmt.Errorf("render report html: %w", err)
	}
	return buf.Bytes(), nil
}
