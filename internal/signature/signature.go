// Package signature reduces an error line to a grouping key by dropping the
// timestamp prefix and stack trace and masking volatile identifiers.
package signature

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vburojevic/errlens/internal/domain"
)

// Placeholders substituted for masked identifiers
const (
	ObjectIDPlaceholder = "<oid>"
	UUIDPlaceholder     = "<uuid>"
	NumberPlaceholder   = "<num>"
)

// stackMarker starts the stack trace suffix of an error line
const stackMarker = " stack="

// rules run in this order; reordering changes results
var rules = []Rule{
	{Name: "object-id", Placeholder: ObjectIDPlaceholder, Match: matchObjectID},
	{Name: "uuid", Placeholder: UUIDPlaceholder, Match: matchUUID},
	{Name: "number", Placeholder: NumberPlaceholder, Match: matchLongNumber},
}

// Derive returns the signature of an error line
func Derive(line string) string {
	s := StripPrefix(line)
	s = TruncateStack(s)
	for _, r := range rules {
		s = r.ReplaceAll(s)
	}
	return s
}

// StripPrefix removes a leading "YYYY-MM-DD HH:MM:SS ERROR " prefix. Any run
// of whitespace is accepted between the parts and after the marker. Lines that
// do not start with that exact shape are returned unchanged.
func StripPrefix(line string) string {
	c := &cursor{s: line, ok: true}
	c.digits(4).char('-').digits(2).char('-').digits(2).space()
	c.digits(2).char(':').digits(2).char(':').digits(2).space()
	c.literal(domain.ErrorMarker).space()
	if !c.ok {
		return line
	}
	return line[c.i:]
}

// TruncateStack drops everything from the first " stack=" on
func TruncateStack(s string) string {
	if i := strings.Index(s, stackMarker); i >= 0 {
		return s[:i]
	}
	return s
}

// cursor walks a fixed prefix shape; once a step fails it stays failed
type cursor struct {
	s  string
	i  int
	ok bool
}

func (c *cursor) digits(n int) *cursor {
	if !c.ok || c.i+n > len(c.s) {
		c.ok = false
		return c
	}
	for j := c.i; j < c.i+n; j++ {
		if !isDigit(c.s[j]) {
			c.ok = false
			return c
		}
	}
	c.i += n
	return c
}

func (c *cursor) char(b byte) *cursor {
	if !c.ok || c.i >= len(c.s) || c.s[c.i] != b {
		c.ok = false
		return c
	}
	c.i++
	return c
}

func (c *cursor) literal(lit string) *cursor {
	if !c.ok || !strings.HasPrefix(c.s[c.i:], lit) {
		c.ok = false
		return c
	}
	c.i += len(lit)
	return c
}

// space consumes one or more whitespace runes
func (c *cursor) space() *cursor {
	if !c.ok {
		return c
	}
	start := c.i
	for c.i < len(c.s) {
		r, size := utf8.DecodeRuneInString(c.s[c.i:])
		if !unicode.IsSpace(r) {
			break
		}
		c.i += size
	}
	if c.i == start {
		c.ok = false
	}
	return c
}
