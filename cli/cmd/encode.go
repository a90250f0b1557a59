package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vexpera-br/toon-go"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a JSON or YAML document as TOON",
		Long:  `Reads a JSON (default) or YAML document from a file or stdin and writes the TOON rendering. Object key order from the input is preserved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			var value toon.Value
			switch encodeFrom {
			case "json":
				value, err = toon.FromJSONBytes(input)
			case "yaml":
				value, err = toon.FromYAML(input)
			default:
				return errors.New("--from must be json or yaml")
			}
			if err != nil {
				return err
			}
			opts, err := encodeOptionsFromFlags(encodeDelimiter, encodeLengthMarker)
			if err != nil {
				return err
			}
			out, err := toon.MarshalValue(value, opts...)
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		},
	}

	encodeFrom         string
	encodeDelimiter    string
	encodeLengthMarker bool
)

func init() {
	encodeCmd.Flags().StringVar(&encodeFrom, "from", "json", "input format: json or yaml")
	encodeCmd.Flags().StringVar(&encodeDelimiter, "delimiter", "comma", "array delimiter: comma, tab or pipe")
	encodeCmd.Flags().BoolVar(&encodeLengthMarker, "length-marker", false, "emit [#N] length prefixes")
	rootCmd.AddCommand(encodeCmd)
}
