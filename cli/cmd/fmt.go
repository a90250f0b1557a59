package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vexpera-br/toon-go"
)

var (
	fmtCmd = &cobra.Command{
		Use:   "fmt [file]",
		Short: "Canonicalize a TOON document",
		Long:  `Decodes a TOON document and re-encodes it in canonical form: normalized numbers, minimal quoting, tabular layout wherever rows are homogeneous. Combine with --lenient to clean up sloppy documents.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args)
			if err != nil {
				return err
			}
			value, err := toon.Unmarshal(input, decodeOptions()...)
			if err != nil {
				return err
			}
			opts, err := encodeOptionsFromFlags(fmtDelimiter, fmtLengthMarker)
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

	fmtDelimiter    string
	fmtLengthMarker bool
)

func init() {
	fmtCmd.Flags().StringVar(&fmtDelimiter, "delimiter", "comma", "array delimiter: comma, tab or pipe")
	fmtCmd.Flags().BoolVar(&fmtLengthMarker, "length-marker", false, "emit [#N] length prefixes")
	rootCmd.AddCommand(fmtCmd)
}
