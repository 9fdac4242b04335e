/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/ssargent/runestream/cmd/runestream/cmd"
)

func main() {
	cmd.Execute()
}
