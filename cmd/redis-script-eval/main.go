// Command redis-script-eval is outer tooling around the eval core: it
// reads a script file, stages KEYS/ARGV/a fake keyspace, runs it, and
// prints the resulting wire frame. None of this lives in the core
// itself (§1 keeps I/O and caching out of scope) — it exists only to
// exercise the evaluator from a terminal the way go-dws's cmd/dwscript
// exercises its compiler pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/redis-eval/redis-eval/cmd/redis-script-eval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
