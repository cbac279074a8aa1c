package page

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPage(t *testing.T) {
	p := New()
	require.Len(t, p.Contents, 1)
	h1, ok := p.Contents[0].(*Element)
	require.True(t, ok)
	assert.Equal(t, "h1", h1.Tag)
	assert.Equal(t, "title", h1.ID)
	assert.Equal(t, "text-center", h1.Attributes["class"])
	require.Len(t, h1.Texts(), 1)
	assert.Equal(t, "Hello World!", h1.Texts()[0].Content)
}

func TestPageJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagedit.page")
	defer teardown()
	//
	p := New()
	p.Script = "console.log(1)"
	p.Contents = append(p.Contents, &Element{
		Tag:   "img",
		ID:    "i1",
		Style: map[string]string{"border-radius": "8px"},
		Props: map[string]any{"locked": true},
	})
	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))
	t.Logf("page = %s", buf.String())
	assert.Contains(t, buf.String(), `"type": "element"`)
	assert.Contains(t, buf.String(), `"type": "text"`)
	q, err := Decode(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(p, q); diff != "" {
		t.Errorf("expected decoded page to equal original, diff: %s", diff)
	}
}

func TestDecodeOriginalFormat(t *testing.T) {
	src := `{"contents":[{"type":"element","tag":"h1","attributes":{"class":"text-center"},
	"children":[{"type":"text","content":"Hello World!"}],"id":"title"}],"script":"","style":{}}`
	p, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	if diff := cmp.Diff(New(), p); diff != "" {
		t.Errorf("expected seed page, diff: %s", diff)
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"contents":[{"type":"comment"}]}`))
	assert.ErrorIs(t, err, ErrUnknownRecordType)
	_, err = Decode(strings.NewReader(`{"contents":[{"type":"element","id":"x"}]}`))
	assert.ErrorIs(t, err, ErrMissingTag)
	_, err = DecodeRecord([]byte(`[]`))
	assert.Error(t, err)
}

func TestFindAndDuplicates(t *testing.T) {
	p := New()
	inner := &Element{Tag: "b", ID: "dup"}
	p.Contents = append(p.Contents,
		&Element{Tag: "p", ID: "dup", Children: []Record{inner, NewText("x")}})
	assert.Len(t, p.FindAll("dup"), 2)
	assert.Same(t, inner, p.FindAll("dup")[1])
	assert.Equal(t, "p", p.Find("dup").Tag)
	assert.Nil(t, p.Find("nope"))
	assert.Equal(t, []string{"dup"}, p.Duplicates())
	elements, texts := p.Count()
	assert.Equal(t, 3, elements)
	assert.Equal(t, 2, texts)
}

func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Len(t, id, 36)
		assert.False(t, seen[id], "identifier reused")
		seen[id] = true
	}
}

func TestDump(t *testing.T) {
	p := New()
	p.Contents[0].(*Element).Style = map[string]string{"color": "red"}
	dump := p.Dump()
	t.Logf("\n%s", dump)
	assert.Contains(t, dump, `<h1> title class="text-center" style={color: red}`)
	assert.Contains(t, dump, `"Hello World!"`)
}

func TestRecordJSONShape(t *testing.T) {
	data, err := json.Marshal(&Text{Content: ""})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"text","content":""}`, string(data))
}
