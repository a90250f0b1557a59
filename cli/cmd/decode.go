package cmd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/vexpera-br/toon-go"
)

var (
	decodeCmd = &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a TOON document to JSON or YAML",
		Long:  `Decodes a TOON document (from a file or stdin) and writes it as JSON (default) or YAML. --ast dumps the decoded value tree instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			value, err := toon.Unmarshal(input, decodeOptions()...)
			if err != nil {
				return err
			}
			if decodeAst {
				fmt.Println(repr.String(value, repr.Indent("  ")))
				return nil
			}
			switch decodeTo {
			case "json":
				out, err := toon.ValueToJSON(value, "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
			case "yaml":
				out, err := toon.ValueToYAML(value)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
			default:
				return errors.New("--to must be json or yaml")
			}
			return nil
		},
	}

	decodeTo  string
	decodeAst bool
)

func init() {
	decodeCmd.Flags().StringVar(&decodeTo, "to", "json", "output format: json or yaml")
	decodeCmd.Flags().BoolVar(&decodeAst, "ast", false, "print the decoded value tree instead of converting")
	rootCmd.AddCommand(decodeCmd)
}
