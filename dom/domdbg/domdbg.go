/*
Package domdbg draws the editing surface as a GraphViz diagram.

Elements are labeled with their tag, `data-id`, classes and editor state
attributes. Elements which have not yet been assigned an identifier, and
elements sharing an identifier, are highlighted, as these are the nodes
the next synchronization will touch.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/template"

	"github.com/npillmayer/pagedit/dom"
	"github.com/npillmayer/pagedit/dom/style"
	"golang.org/x/net/html"
)

// Fill colors of surface nodes.
const (
	FillIdentified = "lightblue3"
	FillUnsynced   = "orange"
	FillDuplicate  = "tomato"
	FillText       = "grey95"
)

// DefaultGroups are the style groups drawn if a client does not select any.
var DefaultGroups = []string{
	style.PGColor,
	style.PGFont,
	style.PGDimension,
}

// ToGraphViz writes a DOT diagram of the content of surface s to w.
// For every element the computed properties of styleGroups are drawn,
// with properties set inline marked by an asterisk. Text nodes are drawn
// without styles.
func ToGraphViz(s *dom.Surface, w io.Writer, styleGroups []string) error {
	if styleGroups == nil {
		styleGroups = DefaultGroups
	}
	g := &graph{surface: s, w: w, groups: styleGroups, names: make(map[*html.Node]string)}
	if err := g.exec(headTmpl, nil); err != nil {
		return fmt.Errorf("cannot write surface digraph: %w", err)
	}
	root := s.Root().HTMLNode()
	if err := g.walk(root); err != nil {
		return fmt.Errorf("cannot write surface digraph: %w", err)
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// ToGraphVizString returns the DOT diagram of a surface as a string.
func ToGraphVizString(s *dom.Surface, styleGroups []string) (string, error) {
	var b strings.Builder
	err := ToGraphViz(s, &b, styleGroups)
	return b.String(), err
}

type graph struct {
	surface *dom.Surface
	w       io.Writer
	groups  []string
	names   map[*html.Node]string
	pgcount int
}

type vertex struct {
	Name    string
	Tag     string
	ID      string
	Classes string
	Marks   []string
	Text    string
	Fill    string
}

type styleRow struct {
	Key, Value string
	Inline     bool
}

type styleBox struct {
	Name  string
	Group string
	Rows  []styleRow
}

type edge struct {
	From, To string
	Dashed   bool
}

func (g *graph) walk(h *html.Node) error {
	if err := g.vertex(h); err != nil {
		return err
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type != html.ElementNode && ch.Type != html.TextNode {
			continue
		}
		if err := g.walk(ch); err != nil {
			return err
		}
		if err := g.exec(edgeTmpl, edge{From: g.names[h], To: g.names[ch]}); err != nil {
			return err
		}
	}
	return nil
}

func (g *graph) vertex(h *html.Node) error {
	name := fmt.Sprintf("n%04d", len(g.names)+1)
	g.names[h] = name
	if h.Type == html.TextNode {
		return g.exec(textTmpl, vertex{Name: name, Text: shortText(h.Data), Fill: FillText})
	}
	v := vertex{Name: name, Tag: h.Data, ID: dom.DataID(h), Fill: FillIdentified}
	if h == g.surface.Root().HTMLNode() {
		v.Tag = "surface"
		if id, ok := dom.GetAttr(h, "id"); ok {
			v.Tag = "#" + id
		}
		v.ID = ""
	} else {
		switch {
		case v.ID == "":
			v.Fill = FillUnsynced
		case len(g.surface.QueryDataID(v.ID)) > 1:
			v.Fill = FillDuplicate
		}
	}
	v.Classes, v.Marks = labels(h)
	if err := g.exec(elementTmpl, v); err != nil {
		return err
	}
	return g.styles(h, name)
}

// labels extracts the classes of h and its state attributes, i.e. `data-*`
// attributes besides the identifier plus `contenteditable`.
func labels(h *html.Node) (string, []string) {
	var classes string
	var marks []string
	for _, a := range h.Attr {
		switch {
		case a.Key == "class":
			classes = strings.Join(strings.Fields(a.Val), " .")
		case a.Key == dom.DataIDAttr:
		case a.Key == "contenteditable", strings.HasPrefix(a.Key, "data-"):
			marks = append(marks, a.Key+"="+a.Val)
		}
	}
	sort.Strings(marks)
	return classes, marks
}

func (g *graph) styles(h *html.Node, name string) error {
	pmap := g.surface.ComputedStyles(h)
	inline := dom.InlineStyleOf(h)
	prev := name
	for _, group := range g.groups {
		pg := pmap.Group(group)
		if pg == nil {
			continue
		}
		g.pgcount++
		box := styleBox{Name: fmt.Sprintf("pg%04d", g.pgcount), Group: pg.Name()}
		for _, kv := range pg.Properties() {
			box.Rows = append(box.Rows, styleRow{
				Key:    kv.Key,
				Value:  kv.Value.String(),
				Inline: !inline.GetPropertyValue(kv.Key).IsEmpty(),
			})
		}
		if err := g.exec(styleTmpl, box); err != nil {
			return err
		}
		if err := g.exec(edgeTmpl, edge{From: prev, To: box.Name, Dashed: true}); err != nil {
			return err
		}
		prev = box.Name
	}
	return nil
}

func (g *graph) exec(tmpl *template.Template, data any) error {
	return tmpl.Execute(g.w, data)
}

// shortText abbreviates a text node's content to a quoted DOT label, with
// whitespace made visible.
func shortText(s string) string {
	text := []rune(s)
	if len(text) > 12 {
		s = string(text[:12]) + "..."
	}
	s = strings.NewReplacer(
		`"`, `'`,
		"\n", `\\n`,
		"\t", `\\t`,
		" ", "␣",
	).Replace(s)
	return `"\"` + s + `\""`
}

// --- Templates --------------------------------------------------------

var headTmpl = template.Must(template.New("head").Parse(`digraph surface {
  graph [labelloc="t" label="" splines=true overlap=false rankdir="LR"];
  node [fontname="Helvetica" fontsize=14];
  edge [fontname="Helvetica" fontsize=14];
`))

var elementTmpl = template.Must(template.New("element").Parse(
	`  {{ .Name }} [shape=box style="rounded,filled" fillcolor={{ .Fill }} label=<<b>{{ html .Tag }}</b>
    {{- if .ID }}<br/>data-id={{ html .ID }}{{ end }}
    {{- if .Classes }}<br/>.{{ html .Classes }}{{ end }}
    {{- range .Marks }}<br/><i>{{ html . }}</i>{{ end }}>];
`))

var textTmpl = template.Must(template.New("text").Parse(
	`  {{ .Name }} [shape=box style=filled fillcolor={{ .Fill }} fontname="Courier" fontsize=11 label={{ .Text }}];
`))

var styleTmpl = template.Must(template.New("style").Parse(
	`  {{ .Name }} [shape=Mrecord style=filled fillcolor=ivory3 penwidth=1 fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0">
      <tr><td bgcolor="azure4" align="center" colspan="2"><font color="white">{{ html .Group }}</font></td></tr>
      {{- range .Rows }}
      <tr><td align="right">{{ html .Key }}{{ if .Inline }}*{{ end }}:</td><td>{{ html .Value }}</td></tr>
      {{- else }}
      <tr><td colspan="2">no styles</td></tr>
      {{- end }}
    </table>>];
`))

var edgeTmpl = template.Must(template.New("edge").Parse(
	`  {{ .From }} -> {{ .To }} [{{ if .Dashed }}dir=none style="dashed" {{ end }}weight=1];
`))
