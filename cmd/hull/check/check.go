// Package checkcmd implements "hull check".
package checkcmd

import (
	"fmt"

	"hull/cmd/hull/ui"
	"hull/internal/textutil"

	"github.com/spf13/cobra"
)

// Cmd returns the "hull check" command: it probes the given paths for
// readability and fails if any are missing.
func Cmd() *cobra.Command {
	var pathsFlag string

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check that files exist and are readable",
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := append(args, SplitPaths(pathsFlag)...)
			if len(paths) == 0 {
				return fmt.Errorf("no paths given (pass arguments or --paths)")
			}

			missing := 0
			for _, p := range paths {
				if textutil.FileExists(p) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessMsg("%s", p))
					continue
				}
				missing++
				fmt.Fprintln(cmd.OutOrStdout(), ui.ErrorMsg("%s", p))
			}

			if missing > 0 {
				return fmt.Errorf("%d of %d paths missing or unreadable", missing, len(paths))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&pathsFlag, "paths", "", "Comma-separated list of paths to check")
	return cmd
}

// SplitPaths parses a comma-separated path list, trimming each entry
// and dropping empties, so "a, b,,c" yields [a b c].
func SplitPaths(list string) []string {
	if textutil.Trim(list) == "" {
		return nil
	}

	var out []string
	for _, p := range textutil.Split(list, ',') {
		if p = textutil.Trim(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
