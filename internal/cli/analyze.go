package cli

import (
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/vburojevic/errlens/internal/aggregate"
	"github.com/vburojevic/errlens/internal/domain"
	"github.com/vburojevic/errlens/internal/filter"
	"github.com/vburojevic/errlens/internal/logfile"
	"github.com/vburojevic/errlens/internal/output"
	"github.com/vburojevic/errlens/internal/period"
)

// AnalyzeCmd aggregates the error log over a trailing period
type AnalyzeCmd struct {
	Period            string `arg:"" optional:"" help:"Period to report: today, week (7 days) or month (30 days). Default: today"`
	File              string `short:"F" type:"path" help:"Error log to read (default: <log_dir>/error.log)"`
	PersistSignatures bool   `help:"Record signatures in the signature store and report the new ones"`
	SignatureFile     string `help:"Custom signature store path (default: ~/.errlens/signatures.json)"`
}

// Run executes the analyze command
func (c *AnalyzeCmd) Run(globals *Globals) error {
	cfg := globals.Config

	token := c.Period
	if token == "" && cfg != nil {
		token = cfg.DefaultPeriod
	}

	// The period is validated before the log is touched.
	rng, err := period.NewResolver(globals.clock()).Resolve(token)
	if err != nil {
		return c.outputError(globals, CodeInvalidPeriod, err.Error(), hintForPeriod())
	}
	globals.Log().Debug("resolved period",
		zap.String("period", string(rng.Period)),
		zap.String("start", rng.StartISO()),
		zap.String("end", rng.EndISO()))

	src := logfile.Source{File: c.File, WorkDir: globals.WorkDir}
	if cfg != nil {
		src.Dir = cfg.LogDir
		if src.File == "" {
			src.File = cfg.LogFile
		}
	}
	path, err := logfile.Locate(src)
	if err != nil {
		return c.outputError(globals, CodeReadError, err.Error())
	}
	globals.Log().Debug("reading log", zap.String("path", path))

	lines, err := logfile.Load(path)
	if err != nil {
		if logfile.IsNotFound(err) {
			return c.outputError(globals, CodeLogNotFound, err.Error(), hintForLogSource(err, path))
		}
		return c.outputError(globals, CodeReadError, err.Error())
	}

	kept := filter.Lines(lines, filter.ForRange(rng))
	globals.Log().Debug("filtered lines", zap.Int("read", len(lines)), zap.Int("kept", len(kept)))

	agg := aggregate.Run(kept)
	report := output.BuildReport(rng, agg)

	if c.PersistSignatures && !report.IsEmpty() {
		report.NewSignatures = c.recordSignatures(globals, agg)
	}

	if globals.Format == "text" {
		maybeNoStyle(globals)
		err = output.NewTextWriter(globals.Stdout).WriteReport(report)
	} else {
		err = output.NewJSONWriter(globals.Stdout).WriteReport(report)
	}
	if err != nil {
		return c.outputError(globals, CodeWriteError, err.Error())
	}
	return nil
}

// recordSignatures updates the store and returns signatures seen for the
// first time. Store failures are logged, never fatal.
func (c *AnalyzeCmd) recordSignatures(globals *Globals, agg *domain.Aggregation) []string {
	path := c.SignatureFile
	if path == "" && globals.Config != nil {
		path = globals.Config.SignatureFile
	}

	store, err := output.NewSignatureStore(path, globals.clock())
	if err != nil {
		globals.Log().Warn("failed to load signature store", zap.String("path", path), zap.Error(err))
		return nil
	}

	fresh := store.Record(agg)
	if err := store.Save(); err != nil {
		globals.Log().Warn("failed to save signature store", zap.String("path", store.Path()), zap.Error(err))
	}
	globals.Log().Debug("recorded signatures", zap.Int("known", store.Count()), zap.Int("new", len(fresh)))
	return fresh
}

func (c *AnalyzeCmd) outputError(globals *Globals, code, message string, hint ...string) error {
	return outputErrorCommon(globals, code, message, hint...)
}

// maybeNoStyle disables styles when stdout is not a TTY
func maybeNoStyle(globals *Globals) {
	if globals == nil || globals.Stdout == nil {
		return
	}
	if f, ok := globals.Stdout.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return
	}
	output.DisableStyles()
}
