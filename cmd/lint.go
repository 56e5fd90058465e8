package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the catalog",
	Long:  "Check the catalog against its field rules and exit non-zero when issues are found.",
	Run: func(_ *cobra.Command, _ []string) {
		_, showcaseService := mustCreateShowcaseService()
		if n := reportIssues(showcaseService); n > 0 {
			logrus.WithField("issues", n).Fatal("Catalog has issues")
		}
		logrus.Info("Catalog is valid")
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
