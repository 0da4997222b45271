// Package statuscmd implements "hull status".
package statuscmd

import (
	"fmt"

	"hull/cmd/hull/ui"
	"hull/config"
	"hull/internal/textutil"
	"hull/platform"

	"github.com/spf13/cobra"
)

// Cmd returns the "hull status" command. cfg is the startup
// configuration shared through the root command.
func Cmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show application and platform status",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			path := config.Path()
			fmt.Fprint(cmd.OutOrStdout(), ui.KeyValues("  ",
				ui.KV("Name", ui.Bold(cfg.AppName)),
				ui.KV("Version", cfg.Version),
				ui.KV("Platform", ui.Accent(platform.New().Name())),
				ui.KV("Config", path),
				ui.KV("Config present", ui.Bool(textutil.FileExists(path))),
			))
		},
	}
}
