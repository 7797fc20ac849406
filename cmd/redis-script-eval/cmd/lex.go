package cmd

import (
	"fmt"
	"os"

	"github.com/redis-eval/redis-eval/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a script and dump its token stream",
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
		for _, tok := range tokens {
			fmt.Printf("%4d:%-3d %s\n", tok.Pos.Line, tok.Pos.Column, tok)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lexCmd)
}
