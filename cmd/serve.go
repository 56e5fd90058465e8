package cmd

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httprate"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/controller"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/factory"
	grpcserver "github.com/vibast-solutions/ms-go-vps-showcase/app/grpc"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/service"
	"github.com/vibast-solutions/ms-go-vps-showcase/config"
	"google.golang.org/grpc"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP and gRPC servers",
	Long:  "Serve the showcase page and its catalog over HTTP (Echo) and, when enabled, gRPC.",
	Run:   runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, showcaseService := mustCreateShowcaseService()
	reportIssues(showcaseService)

	// render once up front so template errors surface at startup
	if _, err := showcaseService.HTML(); err != nil {
		logrus.WithError(err).Fatal("Failed to render page")
	}

	pageController := controller.NewPageController(showcaseService)
	e := setupHTTPServer(pageController, cfg.Limits.RequestsPerMinute)

	var grpcSrv *grpc.Server
	if cfg.GRPC.Enabled {
		var lis net.Listener
		grpcSrv, lis = setupGRPCServer(cfg, showcaseService)

		go func() {
			logrus.WithField("addr", lis.Addr().String()).Info("Starting gRPC server")
			if err := grpcSrv.Serve(lis); err != nil {
				logrus.WithError(err).Fatal("gRPC server error")
			}
		}()
	}

	go func() {
		httpAddr := net.JoinHostPort(cfg.HTTP.Host, cfg.HTTP.Port)
		logrus.WithField("addr", httpAddr).Info("Starting HTTP server")
		if err := e.Start(httpAddr); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("HTTP shutdown error")
	}
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}

	logrus.Info("Server stopped")
}

func setupHTTPServer(pageController *controller.PageController, requestsPerMinute int) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = factory.NewJSONSerializer()

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogRequestID: true,
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
				"request_id": v.RequestID,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string {
			return fmt.Sprintf("rest-%s", uuid.New().String())
		},
	}))
	if requestsPerMinute > 0 {
		e.Use(echo.WrapMiddleware(httprate.LimitByIP(requestsPerMinute, time.Minute)))
	}

	e.GET("/", pageController.Index)
	e.GET("/health", pageController.Health)

	catalogGroup := e.Group("/catalog")
	catalogGroup.GET("/:id", pageController.GetPlanGroup)
	e.GET("/catalog.json", pageController.ListPlanGroups)

	return e
}

func setupGRPCServer(cfg *config.Config, showcaseService *service.ShowcaseService) (*grpc.Server, net.Listener) {
	grpcAddr := net.JoinHostPort(cfg.GRPC.Host, cfg.GRPC.Port)
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to listen on gRPC port")
	}

	grpcSrv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoveryInterceptor(),
			grpcserver.RequestIDInterceptor(),
			grpcserver.LoggingInterceptor(),
		),
	)
	grpcserver.RegisterCatalogServiceServer(grpcSrv, grpcserver.NewServer(showcaseService))

	return grpcSrv, lis
}
