package specs

import (
	"bytes"
	"iter"

	"github.com/oxbowlabs/furrow/internal/plain"
)

var (
	directColonSpace = []byte(": ")
	directCrlf       = []byte("\r\n")
)

type headerField struct {
	name  string
	value string
}

// Header is an ordered sequence of (name, value) pairs. Insertion order is
// preserved and affects serialization; duplicate names are kept, never
// merged, and lookups return the first match. Names are canonicalized to
// title case at insertion, so lookups behave case-insensitively for
// wire-shaped names.
type Header struct {
	fields []headerField
}

// NewHeader creates a Header, optionally applying configuration functions.
func NewHeader(configure ...func(*Header)) *Header {
	header := &Header{}
	for _, conf := range configure {
		conf(header)
	}
	return header
}

// Add appends the pair without touching existing entries with the same name.
func (header *Header) Add(name, value string) {
	header.fields = append(header.fields, headerField{
		name:  plain.TitleCase(name),
		value: value,
	})
}

// Set replaces the value of the first entry with the given name,
// or appends when no entry matches.
func (header *Header) Set(name, value string) {
	name = plain.TitleCase(name)
	for i := range header.fields {
		if header.fields[i].name == name {
			header.fields[i].value = value
			return
		}
	}
	header.fields = append(header.fields, headerField{name: name, value: value})
}

// Get returns the value of the first entry with the given name, or "".
func (header *Header) Get(name string) string {
	value, _ := header.TryGet(name)
	return value
}

// TryGet returns the value of the first entry with the given name.
func (header *Header) TryGet(name string) (string, bool) {
	name = plain.TitleCase(name)
	for i := range header.fields {
		if header.fields[i].name == name {
			return header.fields[i].value, true
		}
	}
	return "", false
}

// Has reports whether any entry carries the given name.
func (header *Header) Has(name string) bool {
	_, has := header.TryGet(name)
	return has
}

// Del removes every entry with the given name.
func (header *Header) Del(name string) {
	name = plain.TitleCase(name)
	fields := header.fields[:0]
	for _, field := range header.fields {
		if field.name != name {
			fields = append(fields, field)
		}
	}
	header.fields = fields
}

// Len returns the number of entries.
func (header *Header) Len() int {
	return len(header.fields)
}

// All iterates the entries in insertion order.
func (header *Header) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, field := range header.fields {
			if !yield(field.name, field.value) {
				break
			}
		}
	}
}

// Bytes renders the entries as wire lines, one "Name: Value\r\n" per entry
// in insertion order, without the terminating blank line.
func (header *Header) Bytes() []byte {
	if len(header.fields) == 0 {
		return nil
	}
	var buf bytes.Buffer
	for _, field := range header.fields {
		buf.WriteString(field.name)
		buf.Write(directColonSpace)
		buf.WriteString(field.value)
		buf.Write(directCrlf)
	}
	return buf.Bytes()
}
