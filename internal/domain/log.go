package domain

import "strings"

// ErrorMarker is the literal token that marks an error-level line
const ErrorMarker = "ERROR"

// dateLen is the length of the leading YYYY-MM-DD date
const dateLen = 10

// LogLine is a single raw line read from the error log
type LogLine struct {
	Raw string
}

// Date returns the leading 10 bytes of the line (the whole line if shorter)
func (l LogLine) Date() string {
	if len(l.Raw) < dateLen {
		return l.Raw
	}
	return l.Raw[:dateLen]
}

// IsError reports whether the line carries the error marker anywhere
func (l LogLine) IsError() bool {
	return strings.Contains(l.Raw, ErrorMarker)
}

// IsBlank reports whether the line holds only whitespace
func (l LogLine) IsBlank() bool {
	return strings.TrimSpace(l.Raw) == ""
}

// IsISODate reports whether s has the exact shape DDDD-DD-DD (ASCII digits)
func IsISODate(s string) bool {
	if len(s) != dateLen {
		return false
	}
	for i := 0; i < dateLen; i++ {
		c := s[i]
		if i == 4 || i == 7 {
			if c != '-' {
				return false
			}
			continue
		}
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
