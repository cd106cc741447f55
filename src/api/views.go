package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"inventory/src/api/controllers"
	handlers "inventory/src/api/handlers"
	"inventory/src/barcode"
	"inventory/src/config"
	"inventory/src/notifications"
	"inventory/src/repositories"
	"inventory/src/services"
	"inventory/src/utils"
)

type Server struct {
	Router  *chi.Mux
	Handler handlers.Handler

	Repos    *repositories.Repositories
	Feed     *notifications.Feed
	Notifier notifications.Notifier
	Warranty *services.WarrantyService

	logger *logrus.Logger
}

func NewServer(cfg *config.Config) (*Server, error) {
	logLevel, err := logrus.ParseLevel(cfg.Service.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger := utils.NewLogger(logLevel, false, "")

	repos := repositories.NewRepositories()
	if err := repositories.Seed(context.Background(), repos); err != nil {
		return nil, fmt.Errorf("seeding repositories: %w", err)
	}

	feed := notifications.NewFeed(50)
	notifier := notifications.Fanout{feed, &notifications.LogNotifier{Logger: logger}}

	renderer, err := barcode.NewRenderer(cfg.Render.FontPath)
	if err != nil {
		return nil, fmt.Errorf("loading caption font: %w", err)
	}
	decoder := barcode.NewDecoder()
	resolver := barcode.NewResolver(repos.Assets, repos.Categories, notifier, feed)

	scanner := services.NewScannerService(
		cameraProvider(cfg),
		decoder,
		resolver,
		notifier,
		time.Duration(cfg.Scanner.FrameIntervalMS)*time.Millisecond,
	)
	exporter := services.NewExportService()

	controller := controllers.NewController(
		repos, renderer, decoder, resolver, scanner, exporter, feed, notifier,
	)

	server := &Server{
		Router:   chi.NewRouter(),
		Handler:  *handlers.NewHandler(controller),
		Repos:    repos,
		Feed:     feed,
		Notifier: notifier,
		Warranty: services.NewWarrantyService(repos.Assets, notifier, cfg.Warranty.WindowDays),
		logger:   logger,
	}
	server.InitRoutes()
	return server, nil
}

func cameraProvider(cfg *config.Config) barcode.CameraProvider {
	if cfg.Scanner.Camera == "directory" && cfg.Scanner.FramesDir != "" {
		return &barcode.DirectoryCamera{Dir: cfg.Scanner.FramesDir}
	}
	return barcode.NoCamera{}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// withLogger makes the service logger reachable from every request
// context.
func withLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(utils.WithLogger(r.Context(), logger)))
		})
	}
}

func (s *Server) InitRoutes() {
	s.Router.Use(withLogger(s.logger))

	s.Router.Get("/alive", handlers.Healthcheck)

	s.Router.Route("/api/users", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllUsers)
		r.Get("/{id}", s.Handler.GetUserByID)
		r.Post("/", s.Handler.CreateUser)
		r.Put("/{id}", s.Handler.UpdateUser)
		r.Delete("/{id}", s.Handler.DeleteUser)
	})

	s.Router.Route("/api/divisions", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllDivisions)
		r.Get("/{id}", s.Handler.GetDivisionByID)
		r.Post("/", s.Handler.CreateDivision)
		r.Put("/{id}", s.Handler.UpdateDivision)
		r.Delete("/{id}", s.Handler.DeleteDivision)
	})

	s.Router.Route("/api/categories", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllCategories)
		r.Get("/{id}", s.Handler.GetCategoryByID)
		r.Post("/", s.Handler.CreateCategory)
		r.Put("/{id}", s.Handler.UpdateCategory)
		r.Delete("/{id}", s.Handler.DeleteCategory)
	})

	s.Router.Route("/api/components", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllComponents)
		r.Get("/{id}", s.Handler.GetComponentByID)
		r.Post("/", s.Handler.CreateComponent)
		r.Put("/{id}", s.Handler.UpdateComponent)
		r.Delete("/{id}", s.Handler.DeleteComponent)
	})

	s.Router.Route("/api/assets", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllAssets)
		r.Get("/export.csv", s.Handler.ExportAssetsCSV)
		r.Get("/export.xlsx", s.Handler.ExportAssetsXLSX)
		r.Get("/{id}", s.Handler.GetAssetByID)
		r.Post("/", s.Handler.CreateAsset)
		r.Put("/{id}", s.Handler.UpdateAsset)
		r.Delete("/{id}", s.Handler.DeleteAsset)

		r.Get("/{id}/code.png", s.Handler.GetAssetCode)
		r.Get("/{id}/code/print", s.Handler.GetAssetCodePrint)
		r.Get("/{id}/code/print.pdf", s.Handler.GetAssetCodePrintPDF)
	})

	s.Router.Route("/api/maintenance", func(r chi.Router) {
		r.Get("/", s.Handler.GetAllMaintenance)
		r.Get("/{id}", s.Handler.GetMaintenanceByID)
		r.Post("/", s.Handler.CreateMaintenance)
		r.Put("/{id}", s.Handler.UpdateMaintenance)
		r.Delete("/{id}", s.Handler.DeleteMaintenance)
	})

	s.Router.Route("/api/scans", func(r chi.Router) {
		r.Post("/", s.Handler.ResolveScan)
		r.Post("/frame", s.Handler.ScanFrame)
	})

	s.Router.Route("/api/scanner", func(r chi.Router) {
		r.Get("/", s.Handler.GetScannerState)
		r.Post("/start", s.Handler.StartScanner)
		r.Post("/stop", s.Handler.StopScanner)
	})

	s.Router.Route("/api/dashboard", func(r chi.Router) {
		r.Get("/stats", s.Handler.GetDashboardStats)
		r.Get("/report", s.Handler.GetDashboardReport)
		r.Get("/report.pdf", s.Handler.GetDashboardReportPDF)
	})

	s.Router.Get("/api/notifications", s.Handler.GetNotifications)
	s.Router.Get("/api/highlights", s.Handler.GetHighlights)
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		Handler:      server,
	}
	return httpServer
}
