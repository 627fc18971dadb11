// Package main provides the CLI entrypoint for plugin-analyzer.
//
// plugin-analyzer lists the ECS components declared by a compilation unit:
// every struct implementing the component interface of the ECS dependency,
// with its declaration path and field names.
//
// Usage:
//
//	plugin-analyzer analyze UNIT [PATH]
//	plugin-analyzer units [PATH]
//	plugin-analyzer export [PATH] [-o snapshot.yaml]
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
)

// Version is the semantic version (set via -ldflags).
var Version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(Version)); err != nil {
		os.Exit(1)
	}
}
