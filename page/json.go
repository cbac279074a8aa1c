package page

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Errors flagged when decoding pages.
var (
	ErrUnknownRecordType = errors.New("unknown record type")
	ErrMissingTag        = errors.New("element record without tag")
)

type elementJSON struct {
	Type       RecordType        `json:"type"`
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes,omitempty"`
	Style      map[string]string `json:"style,omitempty"`
	Children   []Record          `json:"children,omitempty"`
	ID         string            `json:"id"`
	Content    string            `json:"content,omitempty"`
	Props      map[string]any    `json:"props,omitempty"`
}

type textJSON struct {
	Type    RecordType `json:"type"`
	Content string     `json:"content"`
}

type pageJSON struct {
	Contents []Record         `json:"contents"`
	Script   string            `json:"script"`
	Style    map[string]string `json:"style"`
}

// rawRecord is used for decoding; children are decoded recursively.
type rawRecord struct {
	Type       RecordType        `json:"type"`
	Tag        string            `json:"tag"`
	Attributes map[string]string `json:"attributes"`
	Style      map[string]string `json:"style"`
	Children   []json.RawMessage `json:"children"`
	ID         string            `json:"id"`
	Content    string            `json:"content"`
	Props      map[string]any    `json:"props"`
}

type rawPage struct {
	Contents []json.RawMessage `json:"contents"`
	Script   string            `json:"script"`
	Style    map[string]string `json:"style"`
}

// MarshalJSON encodes an element record, including its children.
func (e *Element) MarshalJSON() ([]byte, error) {
	return json.Marshal(elementJSON{
		Type:       ElementRecord,
		Tag:        e.Tag,
		Attributes: e.Attributes,
		Style:      e.Style,
		Children:   e.Children,
		ID:         e.ID,
		Content:    e.Content,
		Props:      e.Props,
	})
}

// MarshalJSON encodes a text record.
func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(textJSON{Type: TextRecord, Content: t.Content})
}

// MarshalJSON encodes a page.
func (p *Page) MarshalJSON() ([]byte, error) {
	out := pageJSON{Contents: p.Contents, Script: p.Script, Style: p.Style}
	if out.Contents == nil {
		out.Contents = []Record{}
	}
	if out.Style == nil {
		out.Style = map[string]string{}
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a page. Records of unknown type are an error.
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw rawPage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	contents, err := decodeRecords(raw.Contents)
	if err != nil {
		return err
	}
	p.Contents = contents
	p.Script = raw.Script
	p.Style = raw.Style
	if p.Style == nil {
		p.Style = map[string]string{}
	}
	return nil
}

// DecodeRecord decodes a single record from JSON.
func DecodeRecord(data []byte) (Record, error) {
	var raw rawRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	switch raw.Type {
	case TextRecord:
		return &Text{Content: raw.Content}, nil
	case ElementRecord:
		if raw.Tag == "" {
			return nil, fmt.Errorf("%w (id %q)", ErrMissingTag, raw.ID)
		}
		children, err := decodeRecords(raw.Children)
		if err != nil {
			return nil, err
		}
		return &Element{
			Tag:        raw.Tag,
			ID:         raw.ID,
			Attributes: raw.Attributes,
			Style:      raw.Style,
			Children:   children,
			Content:    raw.Content,
			Props:      raw.Props,
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, raw.Type)
}

func decodeRecords(raws []json.RawMessage) ([]Record, error) {
	if len(raws) == 0 {
		return nil, nil
	}
	records := make([]Record, 0, len(raws))
	for _, r := range raws {
		rec, err := DecodeRecord(r)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Decode reads a page in JSON format.
func Decode(r io.Reader) (*Page, error) {
	p := Empty()
	if err := json.NewDecoder(r).Decode(p); err != nil {
		return nil, fmt.Errorf("cannot decode page: %w", err)
	}
	tracer().Debugf("decoded page with %d top-level records", len(p.Contents))
	return p, nil
}

// Encode writes a page in indented JSON format.
func (p *Page) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
