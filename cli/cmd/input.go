package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vexpera-br/toon-go"
	"github.com/vexpera-br/toon-go/toonparser"
)

// readInput reads the named file, or stdin when the argument is absent
// or "-".
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func decodeOptions() []toon.DecodeOption {
	opts := []toon.DecodeOption{toon.IndentWidth(indentWidth)}
	if lenient {
		opts = append(opts, toon.Lenient())
	}
	if verbose {
		opts = append(opts, toon.DebugLogger(logrus.StandardLogger()))
	}
	return opts
}

func parseDelimiterFlag(name string) (toonparser.Delimiter, error) {
	switch name {
	case "comma", ",":
		return toonparser.DelimiterComma, nil
	case "tab":
		return toonparser.DelimiterTab, nil
	case "pipe", "|":
		return toonparser.DelimiterPipe, nil
	default:
		return 0, errors.New("delimiter must be one of: comma, tab, pipe")
	}
}

func encodeOptionsFromFlags(delimiterName string, lengthMarker bool) ([]toon.EncodeOption, error) {
	delim, err := parseDelimiterFlag(delimiterName)
	if err != nil {
		return nil, err
	}
	opts := []toon.EncodeOption{toon.Indent(indentWidth), toon.Delimiter(delim)}
	if lengthMarker {
		opts = append(opts, toon.LengthMarker())
	}
	return opts, nil
}
