package cli

import (
	"io"
	"os"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"

	"github.com/vburojevic/errlens/internal/config"
)

// CLI is the root command structure for errlens
type CLI struct {
	// Global flags
	Format  string     `short:"f" default:"${config_format}" enum:"json,text" help:"Output format"`
	Quiet   bool       `short:"q" help:"Suppress diagnostics on stderr (errors are still reported)"`
	Verbose bool       `short:"v" help:"Show debug output (resolved paths, ranges, line counts)"`
	Version VersionCmd `cmd:"" help:"Show version information"`

	// Commands
	Analyze    AnalyzeCmd    `cmd:"" default:"withargs" help:"Aggregate error lines for a period (default command)"`
	Config     ConfigCmd     `cmd:"" help:"Show or manage configuration"`
	Schema     SchemaCmd     `cmd:"" help:"Output JSON Schema for the report"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completions"`
}

// Globals holds shared state for all commands
type Globals struct {
	Format     string
	Quiet      bool
	Verbose    bool
	Stdout     io.Writer
	Stderr     io.Writer
	Config     *config.Config
	ConfigFile string

	// WorkDir anchors relative log paths; empty means the process cwd
	WorkDir string
	Clock   clock.Clock
	Logger  *zap.Logger
}

// NewGlobalsWithConfig creates a new Globals instance with config fallbacks
func NewGlobalsWithConfig(cli *CLI, cfg *config.Config) *Globals {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Globals{
		Format:  cli.Format,
		Quiet:   cli.Quiet,
		Verbose: cli.Verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Config:  cfg,
		Clock:   clock.New(),
	}

	// Apply config values if CLI flags weren't explicitly set
	if !cli.Quiet && cfg.Quiet {
		g.Quiet = true
	}
	if !cli.Verbose && cfg.Verbose {
		g.Verbose = true
	}

	g.Logger = NewLogger(g.Stderr, g.Verbose, g.Quiet)
	return g
}

// Log returns the diagnostics logger, never nil
func (g *Globals) Log() *zap.Logger {
	if g.Logger == nil {
		g.Logger = zap.NewNop()
	}
	return g.Logger
}

func (g *Globals) clock() clock.Clock {
	if g.Clock == nil {
		g.Clock = clock.New()
	}
	return g.Clock
}

// VersionCmd shows version information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run(globals *Globals) error {
	if globals.Format == "json" {
		return writeJSON(globals, map[string]string{
			"version": Version,
			"commit":  Commit,
		})
	}
	_, err := io.WriteString(globals.Stdout, "errlens version "+Version+" ("+Commit+")\n")
	return err
}

// Version information (set at build time)
var (
	Version = "dev"
	Commit  = "none"
)
