package signature

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStripPrefix(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "strips timestamp and marker",
			input:    "2024-01-01 10:00:00 ERROR Payment failed",
			expected: "Payment failed",
		},
		{
			name:     "accepts whitespace runs",
			input:    "2024-01-01  10:00:00\tERROR   Payment failed",
			expected: "Payment failed",
		},
		{
			name:     "keeps line with other level",
			input:    "2024-01-01 10:00:00 WARN ERROR later",
			expected: "2024-01-01 10:00:00 WARN ERROR later",
		},
		{
			name:     "keeps line with short time",
			input:    "2024-01-01 10:00 ERROR Payment failed",
			expected: "2024-01-01 10:00 ERROR Payment failed",
		},
		{
			name:     "requires whitespace after marker",
			input:    "2024-01-01 10:00:00 ERROR",
			expected: "2024-01-01 10:00:00 ERROR",
		},
		{
			name:     "marker must be a separate word",
			input:    "2024-01-01 10:00:00 ERRORS many",
			expected: "2024-01-01 10:00:00 ERRORS many",
		},
		{
			name:     "empty line",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripPrefix(tt.input))
		})
	}
}

func TestTruncateStack(t *testing.T) {
	assert.Equal(t, "boom", TruncateStack("boom stack=at foo() stack=at bar()"))
	assert.Equal(t, "boom stack", TruncateStack("boom stack"))
	assert.Equal(t, "boomstack=x", TruncateStack("boomstack=x"))
}

func TestObjectIDRule(t *testing.T) {
	r := rules[0]

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "standalone", input: "id=507f1f77bcf86cd799439011", expected: "id=<oid>"},
		{name: "several", input: "507f1f77bcf86cd799439011,a1b2c3d4e5f6a7b8c9d0e1f2", expected: "<oid>,<oid>"},
		{name: "uppercase is not masked", input: "id=507F1F77BCF86CD799439011", expected: "id=507F1F77BCF86CD799439011"},
		{name: "23 chars", input: "id=507f1f77bcf86cd79943901", expected: "id=507f1f77bcf86cd79943901"},
		{name: "25 chars", input: "id=507f1f77bcf86cd7994390111", expected: "id=507f1f77bcf86cd7994390111"},
		{name: "embedded in word", input: "x507f1f77bcf86cd799439011", expected: "x507f1f77bcf86cd799439011"},
		{name: "followed by underscore", input: "507f1f77bcf86cd799439011_x", expected: "507f1f77bcf86cd799439011_x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ReplaceAll(tt.input))
		})
	}
}

func TestUUIDRule(t *testing.T) {
	r := rules[1]
	id := uuid.NewString()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "generated", input: "session " + id + " expired", expected: "session <uuid> expired"},
		{name: "fixed", input: "req=12345678-1234-1234-1234-123456789abc", expected: "req=<uuid>"},
		{name: "uppercase is not masked", input: "req=ABCDEF12-3456-7890-ABCD-EF1234567890", expected: "req=ABCDEF12-3456-7890-ABCD-EF1234567890"},
		{name: "too short", input: "req=12345678-1234-1234-1234-123456789ab", expected: "req=12345678-1234-1234-1234-123456789ab"},
		{name: "embedded in word", input: "req" + id, expected: "req" + id},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ReplaceAll(tt.input))
		})
	}
}

func TestLongNumberRule(t *testing.T) {
	r := rules[2]

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ten digits", input: "ts=1700000000", expected: "ts=<num>"},
		{name: "long run", input: "order 123456789012345 failed", expected: "order <num> failed"},
		{name: "nine digits", input: "order 123456789 failed", expected: "order 123456789 failed"},
		{name: "digits glued to letters", input: "v1234567890abc", expected: "v1234567890abc"},
		{name: "trailing letter", input: "1234567890s", expected: "1234567890s"},
		{name: "several", input: "1234567890 and 09876543210", expected: "<num> and <num>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.ReplaceAll(tt.input))
		})
	}
}

func TestDerive(t *testing.T) {
	t.Run("collapses lines that differ in timestamp ids and stack", func(t *testing.T) {
		a := Derive("2024-01-01 10:00:00 ERROR Payment failed id=507f1f77bcf86cd799439011 stack=at foo()")
		b := Derive("2024-01-01 11:00:00 ERROR Payment failed id=a1b2c3d4e5f6a7b8c9d0e1f2 stack=at bar()")
		assert.Equal(t, "Payment failed id=<oid>", a)
		assert.Equal(t, a, b)
	})

	t.Run("masks every identifier kind", func(t *testing.T) {
		line := "2024-01-01 10:00:00 ERROR user=507f1f77bcf86cd799439011 req=" + uuid.NewString() + " at=1700000000123"
		assert.Equal(t, "user=<oid> req=<uuid> at=<num>", Derive(line))
	})

	t.Run("leaves non-conforming prefix in place", func(t *testing.T) {
		line := "01/01/2024 ERROR Payment failed id=507f1f77bcf86cd799439011"
		assert.Equal(t, "01/01/2024 ERROR Payment failed id=<oid>", Derive(line))
	})

	t.Run("stack marker before the level does not panic", func(t *testing.T) {
		line := "2024-01-01 stack=x 10:00:00 ERROR boom"
		assert.Equal(t, "2024-01-01", Derive(line))
	})

	t.Run("is idempotent", func(t *testing.T) {
		inputs := []string{
			"2024-01-01 10:00:00 ERROR Payment failed id=507f1f77bcf86cd799439011 stack=at foo()",
			"2024-01-01 10:00:00 ERROR req " + uuid.NewString() + " took 12345678901ms",
			"2024-01-01 10:00:00 ERROR plain message",
			"not a log line 1234567890",
			strings.Repeat("a", 24) + " " + strings.Repeat("1", 36),
		}
		for _, in := range inputs {
			once := Derive(in)
			assert.Equal(t, once, Derive(once), in)
		}
	})
}

func TestRulesOrder(t *testing.T) {
	names := make([]string, 0, 3)
	for _, r := range Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"object-id", "uuid", "number"}, names)
}
