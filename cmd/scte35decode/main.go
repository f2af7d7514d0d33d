// Command scte35decode decodes a single SCTE-35 splice_info_section from
// hex or base64 and prints the result as a table or as JSON.
//
// Its usage is:
//
//	scte35decode [--format table|json] SIGNAL
//	scte35decode [--format table|json] --file PATH
//
// SIGNAL is a hex string (with or without a leading 0x) or a base64 string.
// With --file, the raw binary section is read from PATH ("-" for stdin).
//
// # Example
//
// Decode a base64-encoded signal as a table:
//
//	scte35decode /DAvAAAAAAAA///wBQb+szEidAAZAhdDVUVJQAAAw3+/CAgAAAAALKVp9QEAAJUyiJs=
package main

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/streamcue/scte35/scte35"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var format string
	var file string

	c := &cobra.Command{
		Use:   "scte35decode [signal]",
		Short: "Decode an SCTE-35 splice_info_section",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sis, err := decodeInput(args, file)
			// a fatal decode error leaves sis nil; non-fatal anomalies are
			// carried on sis.NonFatalErrors, not returned as err.
			if sis != nil {
				switch format {
				case "json":
					b, jerr := json.MarshalIndent(sis, "", "  ")
					if jerr != nil {
						return jerr
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\n", b)
				default:
					fmt.Fprint(cmd.OutOrStdout(), sis.Table("", "  "))
				}
			}
			return err
		},
	}
	c.Flags().StringVar(&format, "format", "table", "output format: table or json")
	c.Flags().StringVar(&file, "file", "", "read the raw binary section from PATH (\"-\" for stdin) instead of a positional signal")
	return c
}

func decodeInput(args []string, file string) (*scte35.SpliceInfoSection, error) {
	if file != "" {
		var r io.Reader
		if file == "-" {
			r = os.Stdin
		} else {
			f, err := os.Open(file)
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", file, err)
			}
			defer f.Close()
			r = f
		}
		buf, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		return scte35.TryFromBytes(buf)
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("requires a signal argument or --file")
	}
	signal := args[0]
	if strings.HasPrefix(signal, "0x") || strings.HasPrefix(signal, "0X") || isHexLikely(signal) {
		return scte35.TryFromHexString(signal)
	}
	buf, err := base64.StdEncoding.DecodeString(signal)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return scte35.TryFromBytes(buf)
}

// isHexLikely reports whether s looks like a bare hex string (even length,
// every character a hex digit) so callers don't need to remember the 0x
// prefix for hex input.
func isHexLikely(s string) bool {
	if len(s) == 0 || len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
