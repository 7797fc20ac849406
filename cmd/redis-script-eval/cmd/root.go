package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "redis-script-eval",
	Short: "Embedded Lua-dialect script evaluator for a Redis-style store",
	Long: `redis-script-eval runs scripts written in a restricted Lua dialect
against a fake in-memory key-value store, the way a real server's
EVAL command runs a script against its keyspace.

It exists to exercise the evaluator core (lexer, parser, interpreter,
built-in library, and frame bridge) from a terminal: it is not itself
the server, the command dispatcher, or the script cache.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
