package cli

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vburojevic/errlens/internal/config"
	"github.com/vburojevic/errlens/internal/output"
)

// ConfigCmd shows or manages configuration
type ConfigCmd struct {
	Show     ConfigShowCmd     `cmd:"" default:"withargs" help:"Show current configuration"`
	Path     ConfigPathCmd     `cmd:"" help:"Show configuration file path"`
	Generate ConfigGenerateCmd `cmd:"" help:"Generate sample configuration file"`
}

// ConfigShowCmd shows current configuration
type ConfigShowCmd struct{}

// Run executes the config show command
func (c *ConfigShowCmd) Run(globals *Globals) error {
	cfg := globals.Config
	if cfg == nil {
		cfg = config.Default()
	}

	if globals.Format == "json" {
		return writeJSON(globals, map[string]interface{}{
			"type":           "config",
			"format":         cfg.Format,
			"quiet":          cfg.Quiet,
			"verbose":        cfg.Verbose,
			"log_dir":        cfg.LogDir,
			"log_file":       cfg.LogFile,
			"default_period": cfg.DefaultPeriod,
			"signature_file": cfg.SignatureFile,
			"config_file":    globals.ConfigFile,
		})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return outputErrorCommon(globals, CodeConfigError, err.Error())
	}

	fmt.Fprintln(globals.Stdout, "Current Configuration:")
	fmt.Fprintln(globals.Stdout, "")
	fmt.Fprint(globals.Stdout, string(data))

	if globals.ConfigFile != "" {
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintf(globals.Stdout, "Loaded from: %s\n", globals.ConfigFile)
	}

	return nil
}

// ConfigPathCmd shows config file path
type ConfigPathCmd struct{}

// Run executes the config path command
func (c *ConfigPathCmd) Run(globals *Globals) error {
	path := config.ConfigFile()

	if globals.Format == "json" {
		return writeJSON(globals, map[string]interface{}{
			"type": "config_path",
			"path": path,
		})
	}

	if path == "" {
		fmt.Fprintln(globals.Stdout, "No configuration file found")
		fmt.Fprintln(globals.Stdout, "")
		fmt.Fprintln(globals.Stdout, "Create one at:")
		fmt.Fprintln(globals.Stdout, "  ./.errlens.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.errlens.yaml")
		fmt.Fprintln(globals.Stdout, "  ~/.config/errlens/config.yaml")
	} else {
		fmt.Fprintf(globals.Stdout, "Config file: %s\n", path)
	}

	return nil
}

// ConfigGenerateCmd generates a sample configuration file
type ConfigGenerateCmd struct{}

// Run executes the config generate command
func (c *ConfigGenerateCmd) Run(globals *Globals) error {
	sampleConfig := `# errlens configuration file
# Place this file at ./.errlens.yaml, ~/.errlens.yaml or ~/.config/errlens/config.yaml

# Output format: "json" (default) or "text"
format: json

# Suppress diagnostics on stderr
quiet: false

# Enable debug diagnostics on stderr
verbose: false

# Directory holding error.log, relative to the working directory.
# The LOG_DIR environment variable overrides this.
log_dir: logs

# Read this file instead of <log_dir>/error.log
# log_file: /var/log/app/error.log

# Period used when none is given: today, week or month
default_period: today

# Signature store used by --persist-signatures
# signature_file: ~/.errlens/signatures.json
`

	fmt.Fprint(globals.Stdout, sampleConfig)
	return nil
}

func writeJSON(globals *Globals, v interface{}) error {
	return output.NewJSONWriter(globals.Stdout).WriteRaw(v)
}
