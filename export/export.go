/*
Package export renders a page as a standalone HTML document.

The document links Bootstrap and, for script mode `jquery`, jQuery from
their CDNs. It carries the user script wrapped for the script mode, the
custom style properties as `:root` variables, and the materialized record
tree as body.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package export

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/npillmayer/pagedit/config"
	"github.com/npillmayer/pagedit/page"
	"github.com/npillmayer/pagedit/reconcile"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'pagedit.export'.
func tracer() tracing.Trace {
	return tracing.Select("pagedit.export")
}

// ErrNoConfig is flagged for documents without a configuration.
var ErrNoConfig = errors.New("export needs a configuration")

// Document collects everything going into an exported page.
type Document struct {
	Config *config.Config
	Page   *page.Page
	Script string            // user script
	Style  map[string]string // custom properties, without leading `--`
}

// Render renders a document as standalone HTML.
func Render(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders a document as standalone HTML to w.
func Write(w io.Writer, doc Document) error {
	if doc.Config == nil {
		return ErrNoConfig
	}
	body, err := renderBody(doc.Page)
	if err != nil {
		return err
	}
	data := templateData{
		Title:  doc.Config.Title,
		JQuery: doc.Config.ScriptMode == config.JQuery,
		Script: GenerateScript(doc.Config, doc.Script),
		Vars:   rootVariables(doc.Config.Theme, doc.Style),
		Body:   body,
	}
	if t := doc.Config.Theme; t != nil && t.Scheme != config.Auto {
		data.Scheme = string(t.Scheme)
	}
	tracer().Debugf("exporting %q in %s mode", data.Title, doc.Config.ScriptMode)
	return pageTemplate.Execute(w, data)
}

type templateData struct {
	Title  string
	Scheme string // empty for no explicit scheme
	JQuery bool
	Script string
	Vars   []variable
	Body   string
}

type variable struct {
	Name, Value string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en" class="bg-light text-black"{{ if .Scheme }} data-bs-theme="{{ .Scheme }}"{{ end }}>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{ html .Title }}</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.5/dist/css/bootstrap.min.css" rel="stylesheet" integrity="sha384-SgOJa3DmI69IUzQ2PVdRZhwQ+dy64/BUtbMJw1MZ8t5HZApcHrRKUc4W0kG879m7" crossorigin="anonymous">
{{- if .JQuery }}
    <script src="https://code.jquery.com/jquery-3.7.1.min.js" integrity="sha256-/JqT3SQfawRcv/BIHPThkBvs0OEvtFFmqPF/lYI/Cxo=" crossorigin="anonymous"></script>
{{- end }}
    <script>
{{ .Script }}
    </script>
    <style>
    :root {
{{- range .Vars }}
        --{{ .Name }}: {{ .Value }};
{{- end }}
    }
    </style>
</head>
<body>
{{ .Body }}
</body>
</html>
`))

func renderBody(pg *page.Page) (string, error) {
	var b strings.Builder
	for _, n := range reconcile.Materialize(pg) {
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("cannot render page: %w", err)
		}
	}
	return b.String(), nil
}

// rootVariables collects the custom properties in sorted order. A theme's
// accent color is added as `--accent-color`, unless set explicitly.
func rootVariables(theme *config.Theme, st map[string]string) []variable {
	vars := make(map[string]string, len(st)+1)
	if theme != nil && theme.AccentColor != "" {
		vars["accent-color"] = theme.AccentColor
	}
	for k, v := range st {
		vars[strings.TrimPrefix(strings.TrimSpace(k), "--")] = v
	}
	names := make([]string, 0, len(vars))
	for k := range vars {
		names = append(names, k)
	}
	sort.Strings(names)
	list := make([]variable, len(names))
	for i, k := range names {
		list[i] = variable{Name: k, Value: vars[k]}
	}
	return list
}
