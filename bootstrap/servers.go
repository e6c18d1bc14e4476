package bootstrap

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"content-indexer/config"
	"content-indexer/internal/auth"
	authmw "content-indexer/internal/auth/middleware"
	"content-indexer/middleware"
	"content-indexer/rest"
	"content-indexer/usecase"
	appOtel "content-indexer/utils/otel"
)

// newHTTPServer creates the REST HTTP server.
func newHTTPServer(
	searchUsecase *usecase.SearchContentUsecase,
	buildUsecase *usecase.BuildIndexUsecase,
	countUsecase *usecase.CountDocumentsUsecase,
	mappingUsecase *usecase.EnsureMappingUsecase,
	httpCfg config.HTTPConfig,
	otelCfg appOtel.Config,
) *http.Server {
	handler := rest.NewHandler(searchUsecase, buildUsecase, countUsecase, mappingUsecase, nil)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	if otelCfg.Enabled {
		e.Use(middleware.OTelStatus())
	}

	e.GET("/health", handler.Health)
	e.GET("/v1/search", handler.SearchContent)
	e.GET("/v1/index/count", handler.CountDocuments)

	admin := e.Group("/v1/index")
	if config.AdminJWTSecret != "" {
		authClient := auth.NewClient(config.AdminJWTSecret)
		authMiddleware := authmw.NewAuthMiddleware(authClient)
		admin.Use(authMiddleware.RequireServiceAuth(authmw.PermissionIndexAdmin))
	}
	admin.POST("/build", handler.TriggerBuild)
	admin.POST("/mapping", handler.EnsureMapping)

	return &http.Server{
		Addr:              httpCfg.Addr,
		Handler:           e,
		ReadHeaderTimeout: httpCfg.ReadHeaderTimeout,
	}
}
