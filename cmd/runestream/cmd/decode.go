/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/runestream/pkg/codec"
	"github.com/ssargent/runestream/pkg/stream"
)

// decodeCmd walks a file in 4-byte steps and shows each word as an
// unsigned integer and a single-precision float, using the configured
// endianness.
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a file as 32-bit words",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		r := stream.NewReader(data, stream.Options{})
		le := cfg.LittleEndian()
		out := cmd.OutOrStdout()

		offset := 0
		for r.Available() >= 4 {
			word := r.LookAhead(4)
			f := codec.DecodeFloat32(word, le)
			u := r.ReadUint32(le)
			fmt.Fprintf(out, "%08x  % x  %10d  %g\n", offset, word, u, f)
			offset += 4
		}
		if r.Available() > 0 {
			fmt.Fprintf(out, "%08x  % x  (trailing bytes)\n", offset, r.Read(r.Available()))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
