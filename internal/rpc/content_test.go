package rpc

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/agrovia/portal/config"
	"github.com/agrovia/portal/internal/db"
	"github.com/agrovia/portal/internal/portal"
)

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// failingSource returns err from every call.
type failingSource struct {
	err error
}

func (s failingSource) Videos(context.Context, string, int) (portal.Page[portal.Video], error) {
	return portal.Page[portal.Video]{}, s.err
}

func (s failingSource) Posts(context.Context, string, int) (portal.Page[portal.Post], error) {
	return portal.Page[portal.Post]{}, s.err
}

func (s failingSource) Categories(context.Context, bool) (portal.Page[portal.Category], error) {
	return portal.Page[portal.Category]{}, s.err
}

func (s failingSource) Video(context.Context, int) (portal.Entry[portal.Video], error) {
	return portal.Entry[portal.Video]{}, s.err
}

func (s failingSource) Post(context.Context, int) (portal.Entry[portal.Post], error) {
	return portal.Entry[portal.Post]{}, s.err
}

func newTestRPC(source portal.Source) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(logger, source, config.Default().Content)
}

func call(t *testing.T, h http.Handler, method string, params interface{}) rpcResponse {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestContentService_Videos(t *testing.T) {
	h := newTestRPC(portal.NewMockSource())

	t.Run("DefaultCategory", func(t *testing.T) {
		resp := call(t, h, "content.videos", map[string]interface{}{"filter": map[string]interface{}{}})
		require.Nil(t, resp.Error)

		var page VideoPage
		require.NoError(t, json.Unmarshal(resp.Result, &page))
		assert.Equal(t, "mock", page.Source)
		require.Len(t, page.Videos, 2)
		assert.Equal(t, 2, page.Videos[0].ID)
		assert.Equal(t, "Agrovia Conversa", page.Videos[0].Category.Name)
	})

	t.Run("Limit", func(t *testing.T) {
		resp := call(t, h, "content.videos", map[string]interface{}{
			"filter": map[string]interface{}{"categoria": "Agrovia Responde", "limit": 1},
		})
		require.Nil(t, resp.Error)

		var page VideoPage
		require.NoError(t, json.Unmarshal(resp.Result, &page))
		require.Len(t, page.Videos, 1)
		assert.Equal(t, 4, page.Videos[0].ID)
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		resp := call(t, h, "content.videos", map[string]interface{}{
			"filter": map[string]interface{}{"limit": 500},
		})
		require.NotNil(t, resp.Error)
		assert.Equal(t, 400, resp.Error.Code)
	})
}

func TestContentService_ByID(t *testing.T) {
	h := newTestRPC(portal.NewMockSource())

	resp := call(t, h, "content.post", map[string]interface{}{"id": 1})
	require.Nil(t, resp.Error)
	var post Post
	require.NoError(t, json.Unmarshal(resp.Result, &post))
	require.NotNil(t, post.Author)
	assert.Equal(t, "Equipe", post.Author.Name)

	resp = call(t, h, "content.video", map[string]interface{}{"id": 99})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)

	resp = call(t, h, "content.video", []int{0})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 400, resp.Error.Code)
}

func TestContentService_Categories(t *testing.T) {
	h := newTestRPC(portal.NewMockSource())

	resp := call(t, h, "content.categories", map[string]interface{}{})
	require.Nil(t, resp.Error)
	var all Categories
	require.NoError(t, json.Unmarshal(resp.Result, &all))
	assert.Len(t, all, 3)

	resp = call(t, h, "content.categories", map[string]interface{}{"siteOnly": true})
	require.Nil(t, resp.Error)
	var site Categories
	require.NoError(t, json.Unmarshal(resp.Result, &site))
	assert.Len(t, site, 2)
}

func TestContentService_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Connection", &db.ConnectionError{Addr: "db:5432", Err: io.EOF}, 503},
		{"Query", &db.QueryError{Operation: "videos_by_category", Err: errors.New("boom")}, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRPC(failingSource{err: tt.err})

			resp := call(t, h, "content.videos", map[string]interface{}{"filter": map[string]interface{}{}})
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.NotContains(t, resp.Error.Message, "db:5432")
		})
	}
}

func TestContentService_SMD(t *testing.T) {
	var _ zenrpc.Invoker = NewContentService(portal.NewMockSource(), config.Content{})

	methods := ContentService{}.SMD().Methods
	assert.Len(t, methods, 5)
	assert.Contains(t, methods, "Videos")
}
