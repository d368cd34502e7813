// Package main provides the CLI entrypoint for alias-resolver.
//
// alias-resolver reads annotation type declarations (YAML model files or Go
// structs) and answers attribute lookups that follow alias-for declarations:
//   - resolve: one attribute of one element
//   - links: the alias links of an annotation type
//   - check: model diagnostics
//   - endpoints: routes read through RequestMapping and its aliases
//   - export: the merged model as one YAML file
package main

import (
	"fmt"
	"os"

	"alias-resolver/internal/cli"
)

var (
	// Version information - will be set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	err := cli.Execute(cli.BuildInfo{Version: Version, Commit: GitCommit, Date: BuildDate})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
