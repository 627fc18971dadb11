package main

import (
	"github.com/spf13/cobra"

	"plugin-analyzer/internal/snapshot"
)

func newExportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [PATH]",
		Short: "Write the workspace model as a snapshot",
		Long: `export loads the workspace model and writes it as a snapshot that the
snapshot provider can read back. The encoding follows the output file's
extension; without --output, YAML is written to stdout.`,
		Args: cobra.MaximumNArgs(1),
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

			f := snapshot.Export(m)
			if output == "" {
				return snapshot.Encode(cmd.OutOrStdout(), f, snapshot.FormatYAML)
			}

			if err := snapshot.WriteFile(f, output); err != nil {
				return err
			}

			a.logger.Info("wrote snapshot", "path", output, "units", len(f.Units))

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "snapshot file to write (.yaml, .json or .toml)")

	return cmd
}
