package cmd

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/catalog"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/repository"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/service"
	"github.com/vibast-solutions/ms-go-vps-showcase/config"
)

func mustCreateShowcaseService() (*config.Config, *service.ShowcaseService) {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := configureLogging(cfg); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	c, err := catalog.Resolve(cfg.Catalog.Path)
	if err != nil {
		logrus.WithError(err).WithField("path", cfg.Catalog.Path).Fatal("Failed to load catalog")
	}

	showcaseService := service.NewShowcaseService(repository.NewCatalogRepository(c))
	logrus.WithFields(logrus.Fields{
		"service": cfg.App.ServiceName,
		"groups":  len(c.Groups),
		"plans":   c.PlanCount(),
	}).Info("Catalog loaded")

	return cfg, showcaseService
}

// reportIssues logs catalog lint findings as warnings and returns their count.
func reportIssues(showcaseService *service.ShowcaseService) int {
	issues, err := showcaseService.Lint()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to lint catalog")
	}
	for _, issue := range issues {
		logrus.WithField("path", issue.Path).WithField("rule", issue.Rule).Warn("catalog_issue")
	}
	return len(issues)
}

func runJob(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	latency := time.Since(start)
	if err != nil {
		logrus.WithError(err).WithField("job", name).WithField("latency", latency.String()).Error("job_failed")
		return err
	}
	logrus.WithField("job", name).WithField("latency", latency.String()).Info("job_completed")
	return nil
}
