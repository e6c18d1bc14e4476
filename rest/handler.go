package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"content-indexer/domain"
	"content-indexer/usecase"
	appOtel "content-indexer/utils/otel"
)

// Handler contains the HTTP handlers of the content indexer.
type Handler struct {
	searchUsecase  *usecase.SearchContentUsecase
	buildUsecase   *usecase.BuildIndexUsecase
	countUsecase   *usecase.CountDocumentsUsecase
	mappingUsecase *usecase.EnsureMappingUsecase
	logger         *slog.Logger
}

func NewHandler(
	searchUsecase *usecase.SearchContentUsecase,
	buildUsecase *usecase.BuildIndexUsecase,
	countUsecase *usecase.CountDocumentsUsecase,
	mappingUsecase *usecase.EnsureMappingUsecase,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		searchUsecase:  searchUsecase,
		buildUsecase:   buildUsecase,
		countUsecase:   countUsecase,
		mappingUsecase: mappingUsecase,
		logger:         logger,
	}
}

type SearchHit struct {
	ID     string         `json:"id"`
	URL    string         `json:"url"`
	Fields map[string]any `json:"fields"`
}

type SearchResponse struct {
	Query            string      `json:"query"`
	Section          string      `json:"section,omitempty"`
	Hits             []SearchHit `json:"hits"`
	EstimatedTotal   int64       `json:"estimated_total"`
	ProcessingTimeMs int64       `json:"processing_time_ms"`
}

// SearchContent handles GET /v1/search.
func (h *Handler) SearchContent(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter 'q' is required")
	}

	limit := parseIntParam(c.QueryParam("limit"), 0)
	offset := parseIntParam(c.QueryParam("offset"), 0)
	section := c.QueryParam("section")

	start := time.Now()
	var (
		hits  []domain.SearchDocument
		total int64
		took  time.Duration
	)

	if section != "" {
		result, err := h.searchUsecase.SearchInSection(c.Request().Context(), domain.SectionQuery{
			Query:   query,
			Section: section,
			Limit:   limit,
			Offset:  offset,
		})
		if err != nil {
			h.logger.Error("section search failed", "query", query, "section", section, "err", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
		}
		hits, total, took = result.Hits, result.EstimatedTotal, result.ProcessingTime
	} else {
		result, err := h.searchUsecase.Search(c.Request().Context(), domain.ContentQuery{
			Query:  query,
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			h.logger.Error("search failed", "query", query, "err", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "search failed")
		}
		hits, total, took = result.Hits, result.EstimatedTotal, result.ProcessingTime
	}

	recordSearchDuration(c.Request().Context(), time.Since(start))

	resp := SearchResponse{
		Query:            query,
		Section:          section,
		Hits:             make([]SearchHit, 0, len(hits)),
		EstimatedTotal:   total,
		ProcessingTimeMs: took.Milliseconds(),
	}
	for _, hit := range hits {
		resp.Hits = append(resp.Hits, SearchHit{
			ID:     hit.ID,
			URL:    hit.URL,
			Fields: hit.Fields,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

type CountResponse struct {
	Count int64 `json:"count"`
}

// CountDocuments handles GET /v1/index/count. A count of -1 means the
// count query failed.
func (h *Handler) CountDocuments(c echo.Context) error {
	count := h.countUsecase.Execute(c.Request().Context())
	return c.JSON(http.StatusOK, CountResponse{Count: count})
}

type BuildResponse struct {
	BuildID string `json:"build_id"`
}

// TriggerBuild handles POST /v1/index/build. The build runs in the
// background; concurrent builds against the same index are not
// coordinated.
func (h *Handler) TriggerBuild(c echo.Context) error {
	buildID := uuid.NewString()

	go func() {
		ctx := context.Background()
		start := time.Now()

		result, err := h.buildUsecase.Execute(ctx)
		if err != nil {
			h.logger.Error("index build failed", "build_id", buildID, "err", err)
			recordBuildError(ctx)
			return
		}
		recordBuild(ctx, result, time.Since(start))

		h.logger.Info("index build finished",
			"build_id", buildID,
			"indexed", result.IndexedCount,
			"removed", result.RemovedCount,
			"skipped", result.SkippedCount,
		)
	}()

	return c.JSON(http.StatusAccepted, BuildResponse{BuildID: buildID})
}

type MappingResponse struct {
	Registered bool `json:"registered"`
}

// EnsureMapping handles POST /v1/index/mapping.
func (h *Handler) EnsureMapping(c echo.Context) error {
	registered, err := h.mappingUsecase.Execute(c.Request().Context())
	if err != nil {
		h.logger.Error("mapping registration failed", "err", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "mapping registration failed")
	}
	return c.JSON(http.StatusOK, MappingResponse{Registered: registered})
}

// Health handles GET /health.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func parseIntParam(value string, defaultVal int64) int64 {
	if value == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}

func recordSearchDuration(ctx context.Context, d time.Duration) {
	m := appOtel.Metrics
	if m == nil {
		return
	}
	m.SearchDuration.Record(ctx, d.Seconds())
}

func recordBuild(ctx context.Context, result *usecase.BuildResult, d time.Duration) {
	m := appOtel.Metrics
	if m == nil {
		return
	}
	if result.IndexedCount > 0 {
		m.IndexedTotal.Add(ctx, int64(result.IndexedCount))
	}
	if result.RemovedCount > 0 {
		m.RemovedTotal.Add(ctx, int64(result.RemovedCount))
	}
	m.BuildDuration.Record(ctx, d.Seconds())
}

func recordBuildError(ctx context.Context) {
	m := appOtel.Metrics
	if m == nil {
		return
	}
	m.ErrorsTotal.Add(ctx, 1)
}
