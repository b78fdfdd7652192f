package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vburojevic/errlens/internal/aggregate"
)

func TestTextWriter_WriteReport(t *testing.T) {
	DisableStyles()
	t.Cleanup(ResetStyles)

	t.Run("empty report", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewTextWriter(&buf).WriteReport(BuildReport(todayRange(), aggregate.Run(nil)))
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "2024-01-01 .. 2024-01-01")
		assert.Contains(t, out, "No errors")
	})

	t.Run("full report", func(t *testing.T) {
		rep := BuildReport(todayRange(), aggregate.Run(exampleLines()))
		rep.NewSignatures = []string{"Payment failed id=<oid>"}

		var buf bytes.Buffer
		require.NoError(t, NewTextWriter(&buf).WriteReport(rep))

		out := buf.String()
		assert.Contains(t, out, "By signature")
		assert.Contains(t, out, "Payment failed id=<oid>")
		assert.Contains(t, out, "By day")
		assert.Contains(t, out, "2024-01-01")
		assert.Contains(t, out, "[NEW] Payment failed id=<oid>")
	})
}
