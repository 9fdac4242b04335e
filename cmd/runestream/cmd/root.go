/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/runestream/pkg/config"
)

// cfg holds the active tool configuration; commands read it after the
// persistent pre-run has resolved the --config flag.
var cfg = config.DefaultConfig()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "runestream",
	Short: "RuneStream - binary stream toolkit",
	Long: `RuneStream is a low-level binary serialization toolkit: stream cursors
over byte sequences, IEEE-754 float and unsigned integer codecs with
endianness control, streaming CRC-32 integrity checking, and a Base64
text codec.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		if path == "" {
			return nil
		}
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
}
