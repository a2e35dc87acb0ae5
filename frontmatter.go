package mdlite

import (
	"regexp"
	"strconv"
	"strings"
)

// decimalNumber matches an entire finite decimal number, optionally signed,
// with an optional exponent. Leading or trailing garbage disqualifies the
// value, and so do "inf" and "nan".
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// Kind discriminates the frontmatter value variants.
type Kind int

// Frontmatter value kinds. Consumers must handle all four.
const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindStringSlice
)

// String returns the kind name for debugging.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindStringSlice:
		return "stringSlice"
	}
	return "unknown"
}

// Value is a frontmatter value: exactly one of string, number, boolean, or
// sequence of strings. The zero value is the empty string.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	seq  []string
}

func stringValue(s string) Value { return Value{kind: KindString, str: s} }

func numberValue(n float64) Value { return Value{kind: KindNumber, num: n} }

func boolValue(b bool) Value { return Value{kind: KindBool, b: b} }

func sliceValue(items []string) Value { return Value{kind: KindStringSlice, seq: items} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// AsString returns the string payload and whether the value is a string.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the numeric payload and whether the value is a number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the boolean payload and whether the value is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsStrings returns a copy of the sequence payload and whether the value is a
// sequence of strings.
func (v Value) AsStrings() ([]string, bool) {
	if v.kind != KindStringSlice {
		return nil, false
	}
	items := make([]string, len(v.seq))
	copy(items, v.seq)
	return items, true
}

// Interface returns the payload as a native Go value: string, float64, bool,
// or []string.
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindBool:
		return v.b
	case KindStringSlice:
		items, _ := v.AsStrings()
		return items
	}
	return v.str
}

// String renders any variant as text, mostly for debugging and logs.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindStringSlice:
		return "[" + strings.Join(v.seq, ", ") + "]"
	}
	return v.str
}

// Metadata is a frontmatter mapping that remembers key insertion order.
// A duplicate key overwrites its value but keeps the original position.
type Metadata struct {
	keys   []string
	values map[string]Value
}

func newMetadata() *Metadata {
	return &Metadata{values: make(map[string]Value)}
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Get returns the value for key and whether the key is present.
func (m *Metadata) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.values[key]
	return v, ok
}

func (m *Metadata) set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// extractFrontmatter strips a leading `---` delimited block and parses it
// into metadata. Without a block the document is returned unchanged. With a
// block the remainder is the text after the closing delimiter, trimmed.
func extractFrontmatter(document string) (*Metadata, string) {
	meta := newMetadata()

	match := frontmatterBlock.FindStringSubmatch(document)
	if match == nil {
		return meta, document
	}

	remainder := strings.TrimSpace(document[len(match[0]):])

	for _, line := range strings.Split(match[1], "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			// Lines without a colon are silently dropped.
			continue
		}
		key := strings.TrimSpace(line[:idx])
		raw := strings.TrimSpace(line[idx+1:])
		meta.set(key, coerceValue(raw))
	}

	return meta, remainder
}

// coerceValue applies the coercion precedence: bracketed sequence, quoted
// string, boolean literal, finite decimal number, raw string.
func coerceValue(raw string) Value {
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") && len(raw) >= 2 {
		return sliceValue(parseSequence(raw[1 : len(raw)-1]))
	}

	if unquoted, ok := unquote(raw); ok {
		return stringValue(unquoted)
	}

	if raw == "true" || raw == "false" {
		return boolValue(raw == "true")
	}

	if decimalNumber.MatchString(raw) {
		if n, err := strconv.ParseFloat(raw, 64); err == nil {
			return numberValue(n)
		}
	}

	return stringValue(raw)
}

// parseSequence splits bracketed content on commas. Items are trimmed and
// unquoted; no numeric or boolean coercion happens inside a sequence.
func parseSequence(inner string) []string {
	if strings.TrimSpace(inner) == "" {
		return []string{}
	}

	parts := strings.Split(inner, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if unquoted, ok := unquote(part); ok {
			part = unquoted
		}
		items = append(items, part)
	}
	return items
}

// unquote strips one layer of matching single or double quotes.
func unquote(s string) (string, bool) {
	if len(s) < 2 {
		return "", false
	}
	first, last := s[0], s[len(s)-1]
	if first != last || (first != '"' && first != '\'') {
		return "", false
	}
	return s[1 : len(s)-1], true
}
