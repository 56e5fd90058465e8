package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the showcase page in the terminal",
	Run: func(_ *cobra.Command, _ []string) {
		_, showcaseService := mustCreateShowcaseService()

		restore := muteLogging()
		program := tea.NewProgram(tui.New(showcaseService.Page()), tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err := program.Run()
		restore()

		if err != nil {
			logrus.WithError(err).Fatal("Preview failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
