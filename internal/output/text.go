package output

import (
	"bytes"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// TextWriter renders a report for humans
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport outputs a styled report with signature and day tables
func (w *TextWriter) WriteReport(r *Report) error {
	var buf bytes.Buffer

	buf.WriteString(Styles.Header.Render("Errors "+r.Period) + "\n")
	buf.WriteString(Styles.Label.Render("Range: ") + Styles.Value.Render(r.Start+" .. "+r.End) + "\n")

	if r.IsEmpty() {
		buf.WriteString(Styles.Label.Render("Total: ") + Styles.Value.Render("0") + "\n")
		buf.WriteString(Styles.Success.Render(r.Message) + "\n")
		_, err := w.w.Write(buf.Bytes())
		return err
	}

	buf.WriteString(Styles.Label.Render("Total: ") + Styles.Danger.Render(strconv.Itoa(r.Total)) + "\n")
	buf.WriteString(Styles.Label.Render("First: ") + r.First + "\n")
	buf.WriteString(Styles.Label.Render("Last:  ") + r.Last + "\n\n")

	buf.WriteString(Styles.Title.Render("By signature") + "\n")
	sigs := tablewriter.NewWriter(&buf)
	sigs.Header("Count", "Signature")
	for _, e := range r.BySignature.Entries() {
		if err := sigs.Append([]string{strconv.Itoa(e.Count), e.Key}); err != nil {
			return err
		}
	}
	if err := sigs.Render(); err != nil {
		return err
	}

	buf.WriteString("\n" + Styles.Title.Render("By day") + "\n")
	days := tablewriter.NewWriter(&buf)
	days.Header("Day", "Total", "Signatures")
	for _, d := range r.Days {
		day := r.ByDay.Get(d)
		if day == nil {
			continue
		}
		if err := days.Append([]string{d, strconv.Itoa(day.Total), strconv.Itoa(day.Signatures.Len())}); err != nil {
			return err
		}
	}
	if err := days.Render(); err != nil {
		return err
	}

	if len(r.NewSignatures) > 0 {
		buf.WriteString("\n" + Styles.Warning.Render("New signatures:") + "\n")
		for _, s := range r.NewSignatures {
			buf.WriteString("  [NEW] " + s + "\n")
		}
	}

	_, err := w.w.Write(buf.Bytes())
	return err
}
