package page

import (
	"fmt"
	"sort"

	"github.com/xlab/treeprint"
)

// Page is the record tree of a page, together with a user script and
// custom style properties.
type Page struct {
	Contents []Record
	Script   string
	Style    map[string]string
}

// New creates the seed page: a centered `Hello World!` heading.
func New() *Page {
	return &Page{
		Contents: []Record{
			&Element{
				Tag:        "h1",
				ID:         "title",
				Attributes: map[string]string{"class": "text-center"},
				Children:   []Record{NewText("Hello World!")},
			},
		},
		Style: map[string]string{},
	}
}

// Empty creates a page without any records.
func Empty() *Page {
	return &Page{Style: map[string]string{}}
}

// Walk visits the records of a page depth-first, in document order.
// The parent of top-level records is nil. If visit returns false, the
// children of the current record are skipped.
func (p *Page) Walk(visit func(r Record, parent *Element) bool) {
	var walk func([]Record, *Element)
	walk = func(records []Record, parent *Element) {
		for _, r := range records {
			if !visit(r, parent) {
				continue
			}
			if el, ok := r.(*Element); ok {
				walk(el.Children, el)
			}
		}
	}
	if p != nil {
		walk(p.Contents, nil)
	}
}

// FindAll returns all element records with identifier id.
func (p *Page) FindAll(id string) []*Element {
	var found []*Element
	p.Walk(func(r Record, _ *Element) bool {
		if el, ok := r.(*Element); ok && el.ID == id {
			found = append(found, el)
		}
		return true
	})
	return found
}

// Find returns the first element record with identifier id, or nil.
func (p *Page) Find(id string) *Element {
	var found *Element
	p.Walk(func(r Record, _ *Element) bool {
		if found != nil {
			return false
		}
		if el, ok := r.(*Element); ok && el.ID == id {
			found = el
		}
		return true
	})
	return found
}

// Count returns the number of element records and text records.
func (p *Page) Count() (elements int, texts int) {
	p.Walk(func(r Record, _ *Element) bool {
		switch r.(type) {
		case *Element:
			elements++
		case *Text:
			texts++
		}
		return true
	})
	return
}

// Duplicates returns the identifiers occurring on more than one element
// record, sorted.
func (p *Page) Duplicates() []string {
	count := make(map[string]int)
	p.Walk(func(r Record, _ *Element) bool {
		if el, ok := r.(*Element); ok {
			count[el.ID]++
		}
		return true
	})
	var dups []string
	for id, n := range count {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Strings(dups)
	return dups
}

// Dump returns a printable tree of the page records.
func (p *Page) Dump() string {
	tree := treeprint.NewWithRoot("page")
	var add func(treeprint.Tree, []Record)
	add = func(branch treeprint.Tree, records []Record) {
		for _, r := range records {
			switch rec := r.(type) {
			case *Text:
				branch.AddNode(fmt.Sprintf("%q", rec.Content))
			case *Element:
				label := fmt.Sprintf("<%s> %s", rec.Tag, rec.ID)
				for _, k := range rec.AttributeKeys() {
					label += fmt.Sprintf(" %s=%q", k, rec.Attributes[k])
				}
				if len(rec.Style) > 0 {
					label += " style={"
					for i, k := range rec.StyleKeys() {
						if i > 0 {
							label += "; "
						}
						label += k + ": " + rec.Style[k]
					}
					label += "}"
				}
				if len(rec.Children) == 0 {
					branch.AddNode(label)
				} else {
					add(branch.AddBranch(label), rec.Children)
				}
			}
		}
	}
	if p != nil {
		add(tree, p.Contents)
	}
	return tree.String()
}
