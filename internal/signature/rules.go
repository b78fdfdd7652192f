package signature

import "strings"

// Rule masks one kind of standalone identifier.
//
// Match reports the length of a match starting at i, or 0. Matches must be
// standalone: a word boundary sits right before i and right after the match,
// where word characters are ASCII letters, digits and underscore.
type Rule struct {
	Name        string
	Placeholder string
	Match       func(s string, i int) int
}

// ReplaceAll replaces every non-overlapping match, scanning left to right
func (r Rule) ReplaceAll(s string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); {
		if n := r.Match(s, i); n > 0 {
			b.WriteString(s[last:i])
			b.WriteString(r.Placeholder)
			i += n
			last = i
			continue
		}
		i++
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// Rules returns the masking rules in the order Derive applies them
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// matchObjectID matches exactly 24 lowercase hex characters
func matchObjectID(s string, i int) int {
	return matchFixed(s, i, 24, isLowerHex)
}

// matchUUID matches 36 characters drawn from lowercase hex and '-'
func matchUUID(s string, i int) int {
	return matchFixed(s, i, 36, func(c byte) bool { return isLowerHex(c) || c == '-' })
}

// matchLongNumber matches a run of ten or more digits
func matchLongNumber(s string, i int) int {
	if !boundary(s, i) {
		return 0
	}
	j := i
	for j < len(s) && isDigit(s[j]) {
		j++
	}
	// Any shorter run ends between two digits, which is never a boundary,
	// so only the full run can match.
	if j-i < 10 || !boundary(s, j) {
		return 0
	}
	return j - i
}

func matchFixed(s string, i, n int, in func(byte) bool) int {
	if i+n > len(s) || !boundary(s, i) || !boundary(s, i+n) {
		return 0
	}
	for j := i; j < i+n; j++ {
		if !in(s[j]) {
			return 0
		}
	}
	return n
}

// boundary reports whether position i of s sits between a word and a
// non-word character (string edges count as non-word)
func boundary(s string, i int) bool {
	before := i > 0 && isWord(s[i-1])
	after := i < len(s) && isWord(s[i])
	return before != after
}

func isWord(c byte) bool {
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLowerHex(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f')
}
