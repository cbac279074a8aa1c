package style

import (
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ParseDeclarations parses the content of an inline `style` attribute, e.g.
//
//     color: red; font-size: 12px
//
// into key-value pairs, in the order they appear. Keys are lower-cased,
// values are kept as written. If a key occurs more than once, the last
// occurence wins, but keeps the position of the first one.
//
// Malformed declarations are dropped; ParseDeclarations never fails.
func ParseDeclarations(s string) []KeyValue {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if !strings.HasSuffix(s, ";") {
		s += ";" // the parser drops an unterminated last value
	}
	decls, err := parser.ParseDeclarations(s)
	if err != nil {
		tracer().Debugf("cannot parse style declarations %q: %v", s, err)
		return nil
	}
	kvs := make([]KeyValue, 0, len(decls))
	pos := make(map[string]int, len(decls))
	for _, d := range decls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if key == "" {
			continue
		}
		value := Property(strings.TrimSpace(d.Value))
		if i, ok := pos[key]; ok {
			kvs[i].Value = value
			continue
		}
		pos[key] = len(kvs)
		kvs = append(kvs, KeyValue{Key: key, Value: value})
	}
	return kvs
}

// FormatDeclarations serializes key-value pairs as the content of an inline
// `style` attribute. Pairs with an empty value are skipped.
func FormatDeclarations(kvs []KeyValue) string {
	var b strings.Builder
	for _, kv := range kvs {
		if kv.Value.IsEmpty() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(kv.Key)
		b.WriteString(": ")
		b.WriteString(kv.Value.String())
		b.WriteString(";")
	}
	return b.String()
}
