package main

import (
	"fmt"
	"os"

	checkcmd "hull/cmd/hull/check"
	statuscmd "hull/cmd/hull/status"
	"hull/cmd/hull/ui"
	"hull/config"
	"hull/internal/logging"
	"hull/platform"

	"github.com/spf13/cobra"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var debug bool

	root := &cobra.Command{
		Use:           cfg.AppName,
		Short:         "Minimal cross-platform application skeleton",
		Version:       cfg.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := cfg.LogLevel
			if debug {
				level = logging.LevelDebug
			}
			return logging.Configure(level)
		},
	}
	root.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	root.AddCommand(statuscmd.Cmd(cfg))
	root.AddCommand(checkcmd.Cmd())

	if err := logging.Configure(cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	ui.ConfigureColor(cfg.NoColor)

	// Platform lifecycle brackets all command logic: Init once before
	// dispatch, Cleanup once after, including on command error.
	plat := platform.New()
	plat.Init()
	err = root.Execute()
	plat.Cleanup()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
