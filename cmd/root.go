package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vps-showcase",
	Short: "VPS hosting plan showcase",
	Long:  "Render, serve and preview the animated VPS hosting plan showcase page.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
