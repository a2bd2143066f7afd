package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrovia/portal/config"
	_ "github.com/agrovia/portal/docs"
	"github.com/agrovia/portal/internal/db"
	"github.com/agrovia/portal/internal/portal"
)

func noOpLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubSource is a manual stub implementation of portal.Source for testing
type stubSource struct {
	videosFunc     func(ctx context.Context, category string, limit int) (portal.Page[portal.Video], error)
	postsFunc      func(ctx context.Context, category string, limit int) (portal.Page[portal.Post], error)
	categoriesFunc func(ctx context.Context, siteOnly bool) (portal.Page[portal.Category], error)
	videoFunc      func(ctx context.Context, id int) (portal.Entry[portal.Video], error)
	postFunc       func(ctx context.Context, id int) (portal.Entry[portal.Post], error)
}

func (s *stubSource) Videos(ctx context.Context, category string, limit int) (portal.Page[portal.Video], error) {
	if s.videosFunc != nil {
		return s.videosFunc(ctx, category, limit)
	}
	return portal.Page[portal.Video]{Source: portal.SourceLive}, nil
}

func (s *stubSource) Posts(ctx context.Context, category string, limit int) (portal.Page[portal.Post], error) {
	if s.postsFunc != nil {
		return s.postsFunc(ctx, category, limit)
	}
	return portal.Page[portal.Post]{Source: portal.SourceLive}, nil
}

func (s *stubSource) Categories(ctx context.Context, siteOnly bool) (portal.Page[portal.Category], error) {
	if s.categoriesFunc != nil {
		return s.categoriesFunc(ctx, siteOnly)
	}
	return portal.Page[portal.Category]{Source: portal.SourceLive}, nil
}

func (s *stubSource) Video(ctx context.Context, id int) (portal.Entry[portal.Video], error) {
	if s.videoFunc != nil {
		return s.videoFunc(ctx, id)
	}
	return portal.Entry[portal.Video]{Source: portal.SourceLive}, nil
}

func (s *stubSource) Post(ctx context.Context, id int) (portal.Entry[portal.Post], error) {
	if s.postFunc != nil {
		return s.postFunc(ctx, id)
	}
	return portal.Entry[portal.Post]{Source: portal.SourceLive}, nil
}

// stubDiagnostics is a manual stub implementation of Diagnostics for testing
type stubDiagnostics struct {
	serverInfoFunc   func(ctx context.Context) (*portal.ServerInfo, error)
	categoriesFunc   func(ctx context.Context, siteOnly bool) ([]portal.Category, error)
	latestVideosFunc func(ctx context.Context, limit int) ([]portal.Video, error)
}

func (s *stubDiagnostics) ServerInfo(ctx context.Context) (*portal.ServerInfo, error) {
	if s.serverInfoFunc != nil {
		return s.serverInfoFunc(ctx)
	}
	return &portal.ServerInfo{Version: "PostgreSQL 16.1", Database: "agrovia"}, nil
}

func (s *stubDiagnostics) Categories(ctx context.Context, siteOnly bool) ([]portal.Category, error) {
	if s.categoriesFunc != nil {
		return s.categoriesFunc(ctx, siteOnly)
	}
	return nil, nil
}

func (s *stubDiagnostics) LatestVideos(ctx context.Context, limit int) ([]portal.Video, error) {
	if s.latestVideosFunc != nil {
		return s.latestVideosFunc(ctx, limit)
	}
	return nil, nil
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Database.Password = "s3cret"
	return cfg
}

func newTestServer(source portal.Source, diag Diagnostics) *echo.Echo {
	e := NewEcho(noOpLogger(), ServerOptions{})
	NewContentHandler(source, portal.NewMockSource(), diag, testConfig(), noOpLogger()).RegisterRoutes(e)
	return e
}

func doRequest(t *testing.T, e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestMockVideos(t *testing.T) {
	e := newTestServer(&stubSource{}, &stubDiagnostics{})

	rec := doRequest(t, e, http.MethodGet, "/api/videos?categoria=Agrovia%20Conversa")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[VideosResponse](t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "mock", resp.Source)
	require.Len(t, resp.Videos, 2)
	assert.Equal(t, time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC), resp.Videos[0].UploadedAt.UTC())
	assert.Equal(t, "Agrovia Conversa", resp.Videos[0].CategoryName)
}

func TestVideos(t *testing.T) {
	t.Run("DefaultsFromConfig", func(t *testing.T) {
		var gotCategory string
		var gotLimit int
		src := &stubSource{
			videosFunc: func(ctx context.Context, category string, limit int) (portal.Page[portal.Video], error) {
				gotCategory, gotLimit = category, limit
				return portal.Page[portal.Video]{Source: portal.SourceLive}, nil
			},
		}
		e := newTestServer(src, &stubDiagnostics{})

		rec := doRequest(t, e, http.MethodGet, "/api/videos-v2")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Agrovia Conversa", gotCategory)
		assert.Equal(t, 10, gotLimit)
	})

	t.Run("UnknownCategoryIsEmptySuccess", func(t *testing.T) {
		e := newTestServer(&stubSource{}, &stubDiagnostics{})

		rec := doRequest(t, e, http.MethodGet, "/api/videos-v2?categoria=Nao%20Existe&limit=5")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"success":true,"videos":[],"source":"live"}`, rec.Body.String())
	})

	t.Run("OmitsNullOptionalFields", func(t *testing.T) {
		src := &stubSource{
			videosFunc: func(ctx context.Context, category string, limit int) (portal.Page[portal.Video], error) {
				return portal.Page[portal.Video]{
					Items:  []portal.Video{{ID: 5, Title: "Pragas do milho", Category: portal.CategoryRef{ID: 2, Name: category}}},
					Source: portal.SourceLive,
				}, nil
			},
		}
		e := newTestServer(src, &stubDiagnostics{})

		rec := doRequest(t, e, http.MethodGet, "/api/videos-v2?categoria=Agrovia%20Responde")
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `"title":"Pragas do milho"`)
		assert.NotContains(t, body, "fileUrl")
		assert.NotContains(t, body, "authorName")
	})

	t.Run("ValidationFailures", func(t *testing.T) {
		e := newTestServer(&stubSource{}, &stubDiagnostics{})

		tests := []struct {
			name    string
			target  string
			message string
		}{
			{"ZeroLimit", "/api/videos-v2?limit=0", "limit must be at least 1"},
			{"LimitTooLarge", "/api/videos-v2?limit=101", "limit must be at most 100"},
			{"NotANumber", "/api/videos-v2?limit=abc", "invalid request parameters"},
			{"LongCategory", "/api/videos-v2?categoria=" + strings.Repeat("a", 121), "categoria must be at most 120 characters"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rec := doRequest(t, e, http.MethodGet, tt.target)
				require.Equal(t, http.StatusOK, rec.Code)

				resp := decode[FailedResponse](t, rec)
				assert.False(t, resp.Success)
				assert.Equal(t, tt.message, resp.Error)
			})
		}
	})

	t.Run("ErrorsDowngradeToEnvelope", func(t *testing.T) {
		tests := []struct {
			name    string
			err     error
			message string
		}{
			{"Connection", &db.ConnectionError{Addr: "db:5432", Err: errors.New("refused")}, "database unavailable"},
			{"Query", &db.QueryError{Operation: "videos_by_category", Err: errors.New("syntax error")}, "internal error"},
			{"Unknown", errors.New("boom"), "internal error"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				src := &stubSource{
					videosFunc: func(ctx context.Context, category string, limit int) (portal.Page[portal.Video], error) {
						return portal.Page[portal.Video]{}, tt.err
					},
				}
				e := newTestServer(src, &stubDiagnostics{})

				rec := doRequest(t, e, http.MethodGet, "/api/videos-v2?categoria=Agrovia%20Conversa")
				require.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, `{"success":false,"error":"`+tt.message+`"}`, rec.Body.String())
			})
		}
	})
}

func TestVideoByID(t *testing.T) {
	src := &stubSource{
		videoFunc: func(ctx context.Context, id int) (portal.Entry[portal.Video], error) {
			if id != 7 {
				return portal.Entry[portal.Video]{Source: portal.SourceLive}, nil
			}
			return portal.Entry[portal.Video]{
				Value:  &portal.Video{ID: 7, Title: "Irrigacao inteligente"},
				Source: portal.SourceLive,
			}, nil
		},
	}
	e := newTestServer(src, &stubDiagnostics{})

	t.Run("Found", func(t *testing.T) {
		resp := decode[VideoResponse](t, doRequest(t, e, http.MethodGet, "/api/videos/7"))
		assert.True(t, resp.Success)
		assert.Equal(t, 7, resp.Video.ID)
	})

	t.Run("NotFound", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/videos/8")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, FailedResponse{Error: "video not found"}, decode[FailedResponse](t, rec))
	})

	t.Run("InvalidID", func(t *testing.T) {
		rec := doRequest(t, e, http.MethodGet, "/api/videos/abc")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "invalid id", decode[FailedResponse](t, rec).Error)
	})
}

func TestPosts(t *testing.T) {
	lastName := "Souza"
	src := &stubSource{
		postsFunc: func(ctx context.Context, category string, limit int) (portal.Page[portal.Post], error) {
			return portal.Page[portal.Post]{
				Items: []portal.Post{
					{ID: 1, Title: "Safra 2024", Author: &portal.Author{UserID: 3, Name: "Ana", LastName: &lastName}},
					{ID: 2, Title: "Feira de inverno"},
				},
				Source: portal.SourceLive,
			}, nil
		},
		postFunc: func(ctx context.Context, id int) (portal.Entry[portal.Post], error) {
			return portal.Entry[portal.Post]{}, &db.ConnectionError{Addr: "db:5432", Err: io.EOF}
		},
	}
	e := newTestServer(src, &stubDiagnostics{})

	resp := decode[PostsResponse](t, doRequest(t, e, http.MethodGet, "/api/posts?categoria=Agrovia%20Responde"))
	assert.True(t, resp.Success)
	require.Len(t, resp.Posts, 2)
	require.NotNil(t, resp.Posts[0].UserID)
	assert.Equal(t, 3, *resp.Posts[0].UserID)
	assert.Equal(t, "Souza", *resp.Posts[0].AuthorLastName)
	assert.Nil(t, resp.Posts[1].UserID)
	assert.Nil(t, resp.Posts[1].AuthorName)

	failedResp := decode[FailedResponse](t, doRequest(t, e, http.MethodGet, "/api/posts/1"))
	assert.Equal(t, "database unavailable", failedResp.Error)
}

func TestSiteCategories(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		var gotSiteOnly bool
		src := &stubSource{
			categoriesFunc: func(ctx context.Context, siteOnly bool) (portal.Page[portal.Category], error) {
				gotSiteOnly = siteOnly
				return portal.Page[portal.Category]{
					Items:  []portal.Category{{ID: 1, Name: "Agrovia Conversa", ShowOnSite: true, OrderNumber: 1}},
					Source: portal.SourceLive,
				}, nil
			},
		}
		e := newTestServer(src, &stubDiagnostics{})

		rec := doRequest(t, e, http.MethodGet, "/api/categorias/site")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotSiteOnly)
		assert.JSONEq(t,
			`{"categorias":[{"id":1,"name":"Agrovia Conversa","showOnSite":true,"orderNumber":1}]}`,
			rec.Body.String())
	})

	t.Run("Failure", func(t *testing.T) {
		src := &stubSource{
			categoriesFunc: func(ctx context.Context, siteOnly bool) (portal.Page[portal.Category], error) {
				return portal.Page[portal.Category]{}, &db.ConnectionError{Addr: "db:5432", Err: io.EOF}
			},
		}
		e := newTestServer(src, &stubDiagnostics{})

		rec := doRequest(t, e, http.MethodGet, "/api/categorias/site")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"categorias":[],"error":"database unavailable"}`, rec.Body.String())
	})
}

func TestTestDB(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		var gotLimit int
		diag := &stubDiagnostics{
			categoriesFunc: func(ctx context.Context, siteOnly bool) ([]portal.Category, error) {
				return []portal.Category{{ID: 1, Name: "Agrovia Conversa"}, {ID: 3, Name: "Parceiros"}}, nil
			},
			latestVideosFunc: func(ctx context.Context, limit int) ([]portal.Video, error) {
				gotLimit = limit
				return []portal.Video{{ID: 1}}, nil
			},
		}
		e := newTestServer(&stubSource{}, diag)

		resp := decode[TestDBResponse](t, doRequest(t, e, http.MethodGet, "/api/test-db"))
		assert.True(t, resp.Success)
		assert.Equal(t, "***", resp.Config.Password)
		assert.Equal(t, "agrovia", resp.Config.User)
		require.NotNil(t, resp.ServerInfo)
		assert.Equal(t, "PostgreSQL 16.1", resp.ServerInfo.Version)
		assert.Len(t, resp.Categories, 2)
		assert.Len(t, resp.Videos, 1)
		assert.Equal(t, testDBSampleSize, gotLimit)
	})

	t.Run("EmptyDatabase", func(t *testing.T) {
		e := newTestServer(&stubSource{}, &stubDiagnostics{})

		rec := doRequest(t, e, http.MethodGet, "/api/test-db")
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, []any{}, body["categories"])
		assert.Equal(t, []any{}, body["videos"])
	})

	t.Run("Failure", func(t *testing.T) {
		diag := &stubDiagnostics{
			serverInfoFunc: func(ctx context.Context) (*portal.ServerInfo, error) {
				return nil, &db.ConnectionError{Addr: "db:5432", Err: errors.New("refused")}
			},
		}
		e := newTestServer(&stubSource{}, diag)

		rec := doRequest(t, e, http.MethodGet, "/api/test-db")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "s3cret")

		resp := decode[TestDBResponse](t, rec)
		assert.False(t, resp.Success)
		assert.Equal(t, "database unavailable", resp.Error)
		assert.Equal(t, "***", resp.Config.Password)
		assert.Nil(t, resp.ServerInfo)
	})
}

func TestDisabledRoutes(t *testing.T) {
	e := newTestServer(&stubSource{}, &stubDiagnostics{})

	tests := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/auth/session"},
		{http.MethodPost, "/api/auth/callback/credentials"},
		{http.MethodPost, "/api/signup"},
		{http.MethodPost, "/api/reset-password"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			rec := doRequest(t, e, tt.method, tt.target)
			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.JSONEq(t, `{"error":"authentication is disabled"}`, rec.Body.String())
		})
	}
}

func TestServiceRoutes(t *testing.T) {
	e := newTestServer(&stubSource{}, &stubDiagnostics{})

	rec := doRequest(t, e, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = doRequest(t, e, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portal_api_requests_total")

	rec = doRequest(t, e, http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/videos-v2"`)
	assert.Contains(t, rec.Body.String(), `"/api/auth/{path}"`)
	assert.Contains(t, rec.Body.String(), "Maximum number of posts (1..100)")

	var doc struct {
		Swagger string         `json:"swagger"`
		Paths   map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "2.0", doc.Swagger)
	assert.Len(t, doc.Paths, 10)

	rec = doRequest(t, e, http.MethodGet, "/api/videos")
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}
