package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/dto"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/mapper"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/service"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the showcase page to static files",
	Long:  "Render index.html and catalog.json into the output directory.",
	Run: func(_ *cobra.Command, _ []string) {
		cfg, showcaseService := mustCreateShowcaseService()
		reportIssues(showcaseService)

		out := renderOut
		if out == "" {
			out = cfg.Render.OutputDir
		}
		if err := runJob("render", func() error { return renderSite(showcaseService, out) }); err != nil {
			logrus.WithError(err).Fatal("Render failed")
		}
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderOut, "out", "", "Output directory (defaults to OUTPUT_DIR)")
}

func renderSite(showcaseService *service.ShowcaseService, out string) error {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	page, err := showcaseService.HTML()
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, "index.html"), page, 0o644); err != nil {
		return fmt.Errorf("write index.html: %w", err)
	}

	groups, err := showcaseService.ListPlanGroups(context.Background())
	if err != nil {
		return fmt.Errorf("list plan groups: %w", err)
	}
	data, err := json.MarshalIndent(&dto.ListPlanGroupsResponse{Groups: mapper.PlanGroupsToResponse(groups)}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(filepath.Join(out, "catalog.json"), data, 0o644); err != nil {
		return fmt.Errorf("write catalog.json: %w", err)
	}

	logrus.WithField("out", out).WithField("bytes", len(page)).Info("Page rendered")
	return nil
}
