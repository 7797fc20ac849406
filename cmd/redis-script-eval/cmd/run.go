package cmd

import (
	"fmt"
	"os"

	"github.com/redis-eval/redis-eval/eval"
	"github.com/redis-eval/redis-eval/internal/value"
	"github.com/spf13/cobra"
)

var (
	fixturesPath string
	keysFlag     []string
	argvFlag     []string
	rawOutput    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a script against a fake in-memory store",
	Long: `Execute a script file the way EVAL would run it against a real
keyspace, using a small in-memory fake store and dispatcher.

Examples:
  redis-script-eval run script.lua --keys k --argv v
  redis-script-eval run script.lua --fixtures fixture.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&fixturesPath, "fixtures", "", "YAML fixture file describing keys, argv, and a pre-seeded store")
	runCmd.Flags().StringSliceVar(&keysFlag, "keys", nil, "KEYS values (repeatable, ignored if --fixtures is set)")
	runCmd.Flags().StringSliceVar(&argvFlag, "argv", nil, "ARGV values (repeatable, ignored if --fixtures is set)")
	runCmd.Flags().BoolVar(&rawOutput, "raw", false, "print the script's raw value instead of the wire-frame rendering")
}

func runScript(_ *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	store := make(fakeStore)
	var keys, argv [][]byte
	if fixturesPath != "" {
		f, err := loadFixture(fixturesPath)
		if err != nil {
			return fmt.Errorf("loading fixtures: %w", err)
		}
		keys, argv = f.byteKeys(), f.byteArgv()
		for k, v := range f.Store {
			store[k] = v
		}
	} else {
		keys, argv = toBytes(keysFlag), toBytes(argvFlag)
	}

	if rawOutput {
		v, err := eval.Run(src, keys, argv, fakeDispatcher{}, store, 0)
		if err != nil {
			return err
		}
		fmt.Println(value.ToDisplayString(v))
		return nil
	}

	frame, err := eval.Script(src, keys, argv, fakeDispatcher{}, store, 0)
	if err != nil {
		return err
	}
	fmt.Println(frame.String())
	return nil
}
