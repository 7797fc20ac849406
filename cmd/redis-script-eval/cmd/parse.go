package cmd

import (
	"fmt"
	"os"

	"github.com/redis-eval/redis-eval/internal/ast"
	"github.com/redis-eval/redis-eval/internal/lexer"
	"github.com/redis-eval/redis-eval/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a script and dump its AST as an S-expression tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		tokens, err := lexer.New(src).Tokenize()
		if err != nil {
			return err
		}
		block, err := parser.New(tokens).ParseChunk()
		if err != nil {
			return err
		}
		fmt.Print(ast.Sprint(block))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
