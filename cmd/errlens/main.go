package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/vburojevic/errlens/internal/cli"
	"github.com/vburojevic/errlens/internal/config"
)

func main() {
	// Load configuration from files/environment (plus provenance metadata).
	cfg, meta, err := config.LoadWithMeta()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
		meta = nil
	}

	var c cli.CLI

	// Config defaults are applied before parsing; explicit flags win.
	vars := kong.Vars{
		"config_format": cfg.Format,
	}

	ctx := kong.Parse(&c,
		kong.Name("errlens"),
		kong.Description("Aggregate error.log lines by signature and day\n\nerrlens [today|week|month]  prints a JSON summary of the trailing window"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		vars,
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	if meta != nil {
		globals.ConfigFile = meta.ConfigFile
	}
	defer func() { _ = globals.Log().Sync() }()

	if err := ctx.Run(globals); err != nil {
		_ = globals.Log().Sync()
		os.Exit(1)
	}
}
