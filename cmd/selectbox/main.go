package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:   "selectbox",
	Short: "Searchable dropdown widgets for the terminal",
	Long:  "selectbox demos a searchable single-select combobox and a multi-select variant with chip-style selections, backed by a divider-aware list cursor.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return singleCmd.RunE(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("selectbox %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(singleCmd)
	rootCmd.AddCommand(multiCmd)
	rootCmd.AddCommand(configureCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
