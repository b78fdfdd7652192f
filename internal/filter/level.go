package filter

import (
	"github.com/vburojevic/errlens/internal/domain"
)

// NonBlank drops lines that hold only whitespace
type NonBlank struct{}

// Match returns true if the line has non-whitespace content
func (NonBlank) Match(line *domain.LogLine) bool {
	return !line.IsBlank()
}

// ErrorLevel keeps lines that contain the ERROR marker anywhere (case-sensitive)
type ErrorLevel struct{}

// Match returns true if the line is error level
func (ErrorLevel) Match(line *domain.LogLine) bool {
	return line.IsError()
}
