/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ssargent/runestream/pkg/stream"
)

// crcCmd computes the CRC-32 of a file by streaming it through a
// checksumming reader.
var crcCmd = &cobra.Command{
	Use:   "crc [file]",
	Short: "Compute the CRC-32 checksum of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		r := stream.NewReader(data, stream.Options{
			CalculateCRC32: true,
			Name:           filepath.Base(args[0]),
		})
		for r.HasData() {
			r.Read(4096)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%08x  %s\n", r.CRC32(), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(crcCmd)
}
