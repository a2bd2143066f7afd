package site

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/agrovia/portal/config"
	"github.com/agrovia/portal/internal/portal"
)

//go:embed templates/*.html
var templatesFS embed.FS

const maxParallelSections = 4

var homeTemplate = template.Must(
	template.New("home.html").Funcs(template.FuncMap{
		"videoLink": videoLink,
	}).ParseFS(templatesFS, "templates/home.html"),
)

// Section is one category block of the home page. Error is set instead of content
// when the category could not be loaded.
type Section struct {
	Category portal.Category
	Videos   []portal.Video
	Posts    []portal.Post
	Error    string
}

type HomePage struct {
	Title    string
	Sections []Section
	Partners []config.Partner
	Error    string
	// APIURL prefixes the content API links, empty keeps them relative.
	APIURL string
}

type Handler struct {
	source portal.Source
	cfg    config.Site
	apiURL string
	log    *slog.Logger
}

// NewHandler creates the home page handler. apiURL is the public API base the page links to.
func NewHandler(source portal.Source, cfg config.Site, apiURL string, logger *slog.Logger) *Handler {
	return &Handler{
		source: source,
		cfg:    cfg,
		apiURL: strings.TrimRight(apiURL, "/"),
		log:    logger,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
}

// Home renders the portal home page.
func (h *Handler) Home(c echo.Context) error {
	page := h.Build(c.Request().Context())

	var buf bytes.Buffer
	if err := homeTemplate.Execute(&buf, page); err != nil {
		h.log.Error("render home page", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "render failed").SetInternal(err)
	}

	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// Build loads every site category section. Failures are reported inside the page.
func (h *Handler) Build(ctx context.Context) HomePage {
	page := HomePage{
		Title:    h.cfg.Title,
		Partners: h.cfg.Partners,
		APIURL:   h.apiURL,
	}

	categories, err := h.source.Categories(ctx, true)
	if err != nil {
		h.log.Error("load site categories", "error", err)
		page.Error = "Nao foi possivel carregar as categorias."
		return page
	}

	page.Sections = make([]Section, len(categories.Items))

	var g errgroup.Group
	g.SetLimit(maxParallelSections)
	for i, category := range categories.Items {
		g.Go(func() error {
			page.Sections[i] = h.section(ctx, category)
			return nil
		})
	}
	_ = g.Wait()

	return page
}

func (h *Handler) section(ctx context.Context, category portal.Category) Section {
	s := Section{Category: category}

	limit := h.cfg.SectionLimit
	if limit < 1 {
		limit = 1
	}

	videos, err := h.source.Videos(ctx, category.Name, limit)
	if err != nil {
		h.log.Error("load section videos", "category", category.Name, "error", err)
		s.Error = "Erro ao carregar videos."
		return s
	}

	posts, err := h.source.Posts(ctx, category.Name, limit)
	if err != nil {
		h.log.Error("load section posts", "category", category.Name, "error", err)
		s.Error = "Erro ao carregar posts."
		return s
	}

	s.Videos = videos.Items
	s.Posts = posts.Items

	return s
}

// videoLink prefers the external URL, then the uploaded file, then the API entry.
func videoLink(apiURL string, v portal.Video) string {
	switch {
	case v.ExternalURL != nil:
		return *v.ExternalURL
	case v.FileURL != nil:
		return *v.FileURL
	default:
		return apiURL + "/api/videos/" + strconv.Itoa(v.ID)
	}
}
