// @title           Campaign URL API
// @version         1.0
// @description     Turns free-text campaign descriptions into validated, UTM-tagged URLs.

// @contact.name   API Support
// @contact.email  info@bentech.app

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/vit0-9/campaign_url_api/docs"
	"github.com/vit0-9/campaign_url_api/handlers"
	"github.com/vit0-9/campaign_url_api/pkg/config"
	"github.com/vit0-9/campaign_url_api/pkg/logging"
	"github.com/vit0-9/campaign_url_api/pkg/utils"
	"github.com/vit0-9/campaign_url_api/pkg/utils/llm"
	"github.com/vit0-9/campaign_url_api/pkg/utils/shortener"
)

const shutdownTimeout = 10 * time.Second

// App encapsulates all the components of the application
type App struct {
	Router           *gin.Engine
	CampaignHandlers *handlers.CampaignHandlers
	URLUtilHandlers  *handlers.URLUtilitiesHandlers
	HistoryHandlers  *handlers.HistoryHandlers
	HealthHandler    *handlers.HealthHandler

	cfg    *config.Config
	logger *zap.Logger
	links  *shortener.SQLRepository
}

// newAssembler wires the campaign pipeline shared by the server and the CLI.
// The returned repository must be closed by the caller.
func newAssembler(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*utils.CampaignAssembler, *shortener.SQLRepository, error) {
	completers, err := llm.NewFactory(cfg.LLMProvider, cfg.LLMConfig(), logger)
	if err != nil {
		return nil, nil, err
	}

	links, err := shortener.NewSQLRepository(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open link store: %w", err)
	}

	assembler := utils.NewCampaignAssembler(utils.AssemblerDeps{
		Completers:    completers,
		DefaultModel:  cfg.LLMModel,
		Validator:     utils.NewURLValidator(logger),
		Shortener:     shortener.NewService(links, logger),
		History:       utils.NewHistoryLog(cfg.HistoryPath, logger),
		PublicBaseURL: cfg.PublicBaseURL,
	}, logger)
	return assembler, links, nil
}

// NewApp creates and initializes a new application instance
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	assembler, links, err := newAssembler(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if !cfg.IsLocal() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logging.GinMiddleware(logger), gin.Recovery())
	if err := router.SetTrustedProxies(nil); err != nil {
		logger.Warn("could not reset trusted proxies", zap.Error(err))
	}

	app := &App{
		Router: router,
		CampaignHandlers: handlers.NewCampaignHandlers(assembler, handlers.CampaignDefaults{
			Temperature:       cfg.LLMTemperature,
			ValidationTimeout: cfg.ValidationTimeout,
		}),
		URLUtilHandlers: handlers.NewURLUtilitiesHandlers(assembler, cfg.ValidationTimeout, cfg.QRSize),
		HistoryHandlers: handlers.NewHistoryHandlers(assembler.History()),
		HealthHandler:   handlers.NewHealthHandler(cfg.LLMProvider, links),
		cfg:             cfg,
		logger:          logger,
		links:           links,
	}

	app.setupRoutes()
	return app, nil
}

// setupRoutes defines all the application routes
func (app *App) setupRoutes() {
	app.Router.GET("/api/v1/health", app.HealthHandler.HealthCheckHandler)

	campaignV1 := app.Router.Group("/api/v1/campaign")
	{
		campaignV1.POST("/extract", app.CampaignHandlers.ExtractCampaignHandler)
		campaignV1.POST("/build", app.CampaignHandlers.BuildCampaignHandler)
		campaignV1.GET("/build", app.CampaignHandlers.SharedCampaignHandler)
	}

	urlUtilV1 := app.Router.Group("/api/v1/url")
	{
		urlUtilV1.POST("/validate", app.URLUtilHandlers.ValidateURLHandler)
		urlUtilV1.POST("/shorten", app.URLUtilHandlers.ShortenURLHandler)
		urlUtilV1.GET("/qr", app.URLUtilHandlers.QRCodeHandler)
		urlUtilV1.POST("/generate-utm", app.URLUtilHandlers.GenerateUTMHandler)
		urlUtilV1.POST("/clean", app.URLUtilHandlers.CleanURLHandler)
	}

	historyV1 := app.Router.Group("/api/v1/history")
	{
		historyV1.GET("", app.HistoryHandlers.ListHistoryHandler)
		historyV1.GET("/roi", app.HistoryHandlers.ROIHandler)
	}

	app.Router.GET("/s/:code", app.URLUtilHandlers.RedirectHandler)

	// Absolute from the host, not affected by @BasePath
	app.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))
}

// Start serves until ctx is cancelled, then drains in-flight requests.
func (app *App) Start(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      2 * app.cfg.LLMTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("API server starting", zap.String("addr", addr), zap.String("provider", app.cfg.LLMProvider))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func (app *App) Close() error {
	return app.links.Close()
}
