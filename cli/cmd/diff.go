package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/vexpera-br/toon-go"
)

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Compare two TOON documents in canonical form",
	Long:  `Decodes both documents, re-encodes them canonically and prints a unified diff. Formatting-only differences (quoting, number spelling, array layout) vanish; semantic differences remain. Exits 1 when the documents differ.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			_ = cmd.Help()
			return errors.New("diff needs exactly two files")
		}
		left, err := canonicalize(args[0])
		if err != nil {
			return err
		}
		right, err := canonicalize(args[1])
		if err != nil {
			return err
		}
		if left == right {
			return nil
		}
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(left),
			B:        difflib.SplitLines(right),
			FromFile: args[0],
			ToFile:   args[1],
			Context:  3,
		})
		if err != nil {
			return err
		}
		fmt.Print(text)
		os.Exit(1)
		return nil
	},
}

func canonicalize(path string) (string, error) {
	input, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	value, err := toon.Unmarshal(input, decodeOptions()...)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	out, err := toon.MarshalValue(value)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return out + "\n", nil
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
