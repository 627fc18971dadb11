package main

import (
	"github.com/spf13/cobra"

	"plugin-analyzer/internal/plugin"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze UNIT [PATH]",
		Short: "Print the components of a compilation unit",
		Example: `  plugin-analyzer analyze sample_plugin examples/sample_plugin/workspace.yaml
  plugin-analyzer analyze --dependency example.com/ecs --format json my/module .
  plugin-analyzer analyze --impls implicit my/module ./workspace`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootArg(args, 1)

			provider, err := a.provider(root)
			if err != nil {
				return err
			}

			analyzer := plugin.NewAnalyzer(provider,
				plugin.WithDependency(a.cfg.Dependency),
				plugin.WithInterface(a.cfg.Interface),
				plugin.WithLogger(a.logger),
			)

			crate, err := analyzer.Analyze(cmd.Context(), args[0], root)
			if err != nil {
				return err
			}

			return writeCrate(cmd.OutOrStdout(), crate, a.cfg.Format)
		},
	}
}
