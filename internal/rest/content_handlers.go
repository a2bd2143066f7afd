package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/agrovia/portal/config"
	"github.com/agrovia/portal/internal/db"
	"github.com/agrovia/portal/internal/metrics"
	"github.com/agrovia/portal/internal/portal"
)

const testDBSampleSize = 5

// Diagnostics is the live database surface used by /api/test-db.
type Diagnostics interface {
	ServerInfo(ctx context.Context) (*portal.ServerInfo, error)
	Categories(ctx context.Context, siteOnly bool) ([]portal.Category, error)
	LatestVideos(ctx context.Context, limit int) ([]portal.Video, error)
}

type ContentHandler struct {
	source   portal.Source
	mock     portal.Source
	diag     Diagnostics
	database config.Database
	content  config.Content
	log      *slog.Logger
}

// NewContentHandler creates handlers that serve source on the regular endpoints and
// mock on /api/videos.
func NewContentHandler(source, mock portal.Source, diag Diagnostics, cfg config.Config, log *slog.Logger) *ContentHandler {
	return &ContentHandler{
		source:   source,
		mock:     mock,
		diag:     diag,
		database: cfg.Database,
		content:  cfg.Content,
		log:      log,
	}
}

// errorMessage maps an error to the text exposed in a failed envelope.
func errorMessage(err error) string {
	var connErr *db.ConnectionError
	if errors.As(err, &connErr) {
		return "database unavailable"
	}
	if errors.Is(err, portal.ErrInvalidLimit) {
		return portal.ErrInvalidLimit.Error()
	}
	return "internal error"
}

func (h *ContentHandler) handleFailure(c echo.Context, err error, message string) error {
	h.log.Error("handleFailure", "error", err, "path", c.Path(), "message", message)
	metrics.EnvelopeFailures.WithLabelValues(c.Path()).Inc()
	return c.JSON(http.StatusOK, failed(message))
}

// listParams decodes and validates categoria and limit, applying the configured defaults.
func (h *ContentHandler) listParams(c echo.Context) (string, int, error) {
	var req ListRequest
	if err := c.Bind(&req); err != nil {
		return "", 0, errors.New("invalid request parameters")
	}
	if err := validateStruct(req); err != nil {
		return "", 0, err
	}

	category := strings.TrimSpace(req.Categoria)
	if category == "" {
		category = h.content.DefaultCategory
	}

	limit := h.content.DefaultLimit
	if req.Limit != nil {
		limit = *req.Limit
	}

	return category, limit, nil
}

func (h *ContentHandler) videos(c echo.Context, src portal.Source) error {
	category, limit, err := h.listParams(c)
	if err != nil {
		return h.handleFailure(c, err, err.Error())
	}

	page, err := src.Videos(c.Request().Context(), category, limit)
	if err != nil {
		return h.handleFailure(c, err, errorMessage(err))
	}

	metrics.ContentSourceServed.WithLabelValues(page.Source).Inc()
	return c.JSON(http.StatusOK, okVideos(NewVideos(page.Items), page.Source))
}

// MockVideos handles GET /api/videos
// @Summary List videos from the static dataset
// @Description Always served from the mock dataset, newest first
// @Tags videos
// @Produce json
// @Param categoria query string false "Category name (default from config)"
// @Param limit query int false "Maximum number of videos (1..100)"
// @Success 200 {object} rest.VideosResponse
// @Router /api/videos [get]
func (h *ContentHandler) MockVideos(c echo.Context) error {
	return h.videos(c, h.mock)
}

// Videos handles GET /api/videos-v2
// @Summary List videos
// @Description Lists videos of a category from the configured source, newest first
// @Tags videos
// @Produce json
// @Param categoria query string false "Category name (default from config)"
// @Param limit query int false "Maximum number of videos (1..100)"
// @Success 200 {object} rest.VideosResponse
// @Router /api/videos-v2 [get]
func (h *ContentHandler) Videos(c echo.Context) error {
	return h.videos(c, h.source)
}

// VideoByID handles GET /api/videos/:id
// @Summary Get video by ID
// @Tags videos
// @Produce json
// @Param id path int true "Video ID"
// @Success 200 {object} rest.VideoResponse
// @Router /api/videos/{id} [get]
func (h *ContentHandler) VideoByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return h.handleFailure(c, err, "invalid id")
	}

	entry, err := h.source.Video(c.Request().Context(), id)
	if err != nil {
		return h.handleFailure(c, err, errorMessage(err))
	}
	if entry.Value == nil {
		return c.JSON(http.StatusOK, failed("video not found"))
	}

	metrics.ContentSourceServed.WithLabelValues(entry.Source).Inc()
	return c.JSON(http.StatusOK, okVideo(NewVideo(*entry.Value), entry.Source))
}

// Posts handles GET /api/posts
// @Summary List posts
// @Description Lists posts of a category from the configured source, newest first
// @Tags posts
// @Produce json
// @Param categoria query string false "Category name (default from config)"
// @Param limit query int false "Maximum number of posts (1..100)"
// @Success 200 {object} rest.PostsResponse
// @Router /api/posts [get]
func (h *ContentHandler) Posts(c echo.Context) error {
	category, limit, err := h.listParams(c)
	if err != nil {
		return h.handleFailure(c, err, err.Error())
	}

	page, err := h.source.Posts(c.Request().Context(), category, limit)
	if err != nil {
		return h.handleFailure(c, err, errorMessage(err))
	}

	metrics.ContentSourceServed.WithLabelValues(page.Source).Inc()
	return c.JSON(http.StatusOK, okPosts(NewPosts(page.Items), page.Source))
}

// PostByID handles GET /api/posts/:id
// @Summary Get post by ID
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.PostResponse
// @Router /api/posts/{id} [get]
func (h *ContentHandler) PostByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return h.handleFailure(c, err, "invalid id")
	}

	entry, err := h.source.Post(c.Request().Context(), id)
	if err != nil {
		return h.handleFailure(c, err, errorMessage(err))
	}
	if entry.Value == nil {
		return c.JSON(http.StatusOK, failed("post not found"))
	}

	metrics.ContentSourceServed.WithLabelValues(entry.Source).Inc()
	return c.JSON(http.StatusOK, okPost(NewPost(*entry.Value), entry.Source))
}

// SiteCategories handles GET /api/categorias/site
// @Summary List categories shown on the site
// @Description Categories flagged showOnSite, ordered by orderNumber
// @Tags categories
// @Produce json
// @Success 200 {object} rest.CategoriesResponse
// @Router /api/categorias/site [get]
func (h *ContentHandler) SiteCategories(c echo.Context) error {
	page, err := h.source.Categories(c.Request().Context(), true)
	if err != nil {
		h.log.Error("SiteCategories", "error", err)
		metrics.EnvelopeFailures.WithLabelValues(c.Path()).Inc()
		return c.JSON(http.StatusOK, failedCategories(errorMessage(err)))
	}

	return c.JSON(http.StatusOK, okCategories(NewCategories(page.Items)))
}

// TestDB handles GET /api/test-db
// @Summary Database diagnostic
// @Description Reports the sanitized connection configuration and runs sample queries against the live database
// @Tags diagnostics
// @Produce json
// @Success 200 {object} rest.TestDBResponse
// @Router /api/test-db [get]
func (h *ContentHandler) TestDB(c echo.Context) error {
	cfg := h.database.Sanitized()

	var (
		info       *portal.ServerInfo
		categories []portal.Category
		videos     []portal.Video
	)

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() (err error) {
		info, err = h.diag.ServerInfo(ctx)
		return err
	})
	g.Go(func() (err error) {
		categories, err = h.diag.Categories(ctx, false)
		return err
	})
	g.Go(func() (err error) {
		videos, err = h.diag.LatestVideos(ctx, testDBSampleSize)
		return err
	})

	if err := g.Wait(); err != nil {
		h.log.Error("TestDB", "error", err)
		metrics.EnvelopeFailures.WithLabelValues(c.Path()).Inc()
		return c.JSON(http.StatusOK, failedTestDB(cfg, errorMessage(err)))
	}

	var si *ServerInfo
	if info != nil {
		v := NewServerInfo(*info)
		si = &v
	}

	return c.JSON(http.StatusOK, okTestDB(cfg, si, NewCategories(categories), NewVideos(videos)))
}

// Disabled handles the authentication, signup and password reset routes.
// @Summary Disabled endpoint
// @Description Authentication is not available in this deployment
// @Tags auth
// @Produce json
// @Failure 503 {object} rest.ErrorResponse
// @Router /api/auth/{path} [get]
// @Router /api/auth/{path} [post]
// @Router /api/signup [post]
// @Router /api/reset-password [post]
func (h *ContentHandler) Disabled(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "authentication is disabled"})
}
