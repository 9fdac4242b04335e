/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/runestream/pkg/stream"
)

// dumpCmd hex-dumps a file through a stream reader, optionally verifying
// a trailing CRC-32.
var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Hex dump a file, optionally verifying a CRC-32 trailer",
	Long: `Dump prints the file as offset, hex bytes and ASCII, one row per
configured output width. With --check-crc the last 4 bytes are treated
as a big-endian CRC-32 trailer covering everything before them and the
dump fails on a mismatch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		checkCRC, _ := cmd.Flags().GetBool("check-crc")

		r := stream.NewReader(data, stream.Options{
			CalculateCRC32: true,
			Name:           filepath.Base(args[0]),
		})

		body := len(data)
		if checkCRC {
			if body >= 4 {
				body -= 4
			} else {
				body = 0
			}
		}

		out := cmd.OutOrStdout()
		width := cfg.Output.Width
		for offset := 0; offset < body; {
			n := width
			if body-offset < n {
				n = body - offset
			}
			row := r.Read(n)
			fmt.Fprintf(out, "%08x  %-*s  |%s|\n", offset, width*3-1, hexRow(row), asciiRow(row))
			offset += len(row)
		}

		if checkCRC {
			if err := r.CheckCRC32(); err != nil {
				return err
			}
			fmt.Fprintf(out, "crc32 ok: %08x\n", r.CRC32())
		}
		return nil
	},
}

func hexRow(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}

func asciiRow(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 0x20 && c < 0x7F {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}

func init() {
	dumpCmd.Flags().Bool("check-crc", false, "Verify a trailing CRC-32 over the preceding bytes")
	rootCmd.AddCommand(dumpCmd)
}
