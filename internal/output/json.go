package output

import (
	"bytes"
	"encoding/json"
	"io"
)

// JSONWriter writes pretty-printed JSON documents
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter creates a new JSON writer
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteReport outputs the report as a single indented document
func (w *JSONWriter) WriteReport(r *Report) error {
	return w.WriteRaw(r)
}

// WriteRaw encodes v fully before writing so a failed encode emits nothing
func (w *JSONWriter) WriteRaw(v interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false) // signatures carry <oid>-style placeholders
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	_, err := w.w.Write(buf.Bytes())
	return err
}
