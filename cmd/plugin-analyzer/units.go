package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units [PATH]",
		Short: "List the compilation units of a workspace in provider order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args, 0)

			provider, err := a.provider(root)
			if err != nil {
				return err
			}

			m, err := provider.Load(cmd.Context(), root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, u := range m.Units() {
				name, ok := m.UnitName(u)
				if !ok {
					name = "<unnamed>"
				}

				if _, err := fmt.Fprintln(out, name); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
