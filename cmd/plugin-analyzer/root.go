package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"plugin-analyzer/internal/analyze"
	"plugin-analyzer/internal/config"
	"plugin-analyzer/internal/logging"
	"plugin-analyzer/internal/semantic"
	"plugin-analyzer/internal/snapshot"
)

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: config.NewViper()}

	root := &cobra.Command{
		Use:   "plugin-analyzer",
		Short: "List the ECS components declared by a compilation unit",
		Long: `plugin-analyzer finds every struct in a compilation unit that implements the
component interface of an ECS dependency (bevy_ecs::Component by default) and
prints its name, declaration path and fields.

PATH is either a Go workspace directory or a semantic model snapshot file
(.yaml, .json, .toml) exported by an external semantic engine.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}

	defaults := config.DefaultConfig()

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (yaml, toml or json)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.String("provider", defaults.Provider, "model provider: auto, go or snapshot")
	flags.String("dependency", defaults.Dependency, "unit declaring the component interface")
	flags.String("interface", defaults.Interface, "name of the component interface")
	flags.String("impls", defaults.Impls, "Go implementation records: declared or implicit")
	flags.String("format", defaults.Format, "output format: debug, json or yaml")

	for _, key := range []string{"provider", "dependency", "interface", "impls", "format"} {
		if err := a.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(newAnalyzeCmd(a), newUnitsCmd(a), newExportCmd(a))

	return root
}

// init resolves configuration and the logger before any subcommand runs.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}

	logger, err := logging.New(cmd.ErrOrStderr(), "plugin-analyzer", level)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	return nil
}

// provider returns the model provider configured for root.
func (a *app) provider(root string) (semantic.Provider, error) {
	switch p := a.cfg.ResolveProvider(root); p {
	case config.ProviderSnapshot:
		return snapshot.NewLoader(a.logger), nil
	case config.ProviderGo:
		mode, ok := analyze.ParseImplMode(a.cfg.Impls)
		if !ok {
			return nil, fmt.Errorf("unknown impls mode %q", a.cfg.Impls)
		}

		return analyze.NewLoader(analyze.WithImplMode(mode), analyze.WithLogger(a.logger)), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", p)
	}
}

// rootArg returns args[i], or "." when absent.
func rootArg(args []string, i int) string {
	if len(args) > i {
		return args[i]
	}

	return "."
}
