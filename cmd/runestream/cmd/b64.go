/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/runestream/pkg/base64"
)

var b64Cmd = &cobra.Command{
	Use:   "b64",
	Short: "Base64 text codec",
}

var b64EncodeCmd = &cobra.Command{
	Use:   "encode [data]",
	Short: "Encode bytes as Base64 text",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), base64.Encode(data))
		return nil
	},
}

var b64DecodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode Base64 text into bytes",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		decoded, err := base64.Decode(strings.TrimSpace(string(data)))
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(decoded)
		return err
	},
}

// readInput returns the single positional argument, or everything on
// stdin when no argument was given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return data, nil
}

func init() {
	b64Cmd.AddCommand(b64EncodeCmd)
	b64Cmd.AddCommand(b64DecodeCmd)
	rootCmd.AddCommand(b64Cmd)
}
