package rpc

import (
	"context"
	"errors"
	"strings"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/agrovia/portal/config"
	"github.com/agrovia/portal/internal/db"
	"github.com/agrovia/portal/internal/portal"
)

//go:generate zenrpc

const (
	maxLimit        = 100
	maxCategoryName = 120
)

// ContentService provides RPC methods for portal content.
type ContentService struct {
	zenrpc.Service
	source  portal.Source
	content config.Content
}

func NewContentService(source portal.Source, content config.Content) *ContentService {
	return &ContentService{source: source, content: content}
}

func (s *ContentService) listParams(filter ContentFilter) (string, int, error) {
	category := s.content.DefaultCategory
	if filter.Categoria != nil && strings.TrimSpace(*filter.Categoria) != "" {
		category = strings.TrimSpace(*filter.Categoria)
	}
	if len(category) > maxCategoryName {
		return "", 0, zenrpc.NewStringError(400, "categoria must be at most 120 characters")
	}

	limit := s.content.DefaultLimit
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	if limit < 1 || limit > maxLimit {
		return "", 0, zenrpc.NewStringError(400, "limit must be between 1 and 100")
	}

	return category, limit, nil
}

// rpcError hides driver details behind a stable JSON-RPC error.
func rpcError(err error) error {
	var connErr *db.ConnectionError
	switch {
	case errors.As(err, &connErr):
		return zenrpc.NewStringError(503, "database unavailable")
	case errors.Is(err, portal.ErrInvalidLimit):
		return zenrpc.NewStringError(400, err.Error())
	default:
		return zenrpc.NewStringError(500, "internal error")
	}
}

// Videos lists videos of a category, newest first.
//
//zenrpc:filter category and limit
//zenrpc:return videos and the source that served them
//zenrpc:400 invalid filter
//zenrpc:500 internal server error
//zenrpc:503 database unavailable
func (s *ContentService) Videos(ctx context.Context, filter ContentFilter) (*VideoPage, error) {
	category, limit, err := s.listParams(filter)
	if err != nil {
		return nil, err
	}

	page, err := s.source.Videos(ctx, category, limit)
	if err != nil {
		return nil, rpcError(err)
	}

	return &VideoPage{Videos: NewVideos(page.Items), Source: page.Source}, nil
}

// Posts lists posts of a category, newest first.
//
//zenrpc:filter category and limit
//zenrpc:return posts and the source that served them
//zenrpc:400 invalid filter
//zenrpc:500 internal server error
//zenrpc:503 database unavailable
func (s *ContentService) Posts(ctx context.Context, filter ContentFilter) (*PostPage, error) {
	category, limit, err := s.listParams(filter)
	if err != nil {
		return nil, err
	}

	page, err := s.source.Posts(ctx, category, limit)
	if err != nil {
		return nil, rpcError(err)
	}

	return &PostPage{Posts: NewPosts(page.Items), Source: page.Source}, nil
}

// Video retrieves a single video.
//
//zenrpc:id video numeric ID
//zenrpc:return video
//zenrpc:400 id must be positive
//zenrpc:404 video not found
//zenrpc:500 internal server error
func (s *ContentService) Video(ctx context.Context, id int) (*Video, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	entry, err := s.source.Video(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	if entry.Value == nil {
		return nil, zenrpc.NewStringError(404, "video not found")
	}

	video := NewVideo(*entry.Value)
	return &video, nil
}

// Post retrieves a single post.
//
//zenrpc:id post numeric ID
//zenrpc:return post
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *ContentService) Post(ctx context.Context, id int) (*Post, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	entry, err := s.source.Post(ctx, id)
	if err != nil {
		return nil, rpcError(err)
	}
	if entry.Value == nil {
		return nil, zenrpc.NewStringError(404, "post not found")
	}

	post := NewPost(*entry.Value)
	return &post, nil
}

// Categories lists categories ordered by orderNumber.
//
//zenrpc:siteOnly=false only categories shown on the site
//zenrpc:return list of categories
//zenrpc:500 internal server error
func (s *ContentService) Categories(ctx context.Context, siteOnly *bool) (Categories, error) {
	only := siteOnly != nil && *siteOnly

	page, err := s.source.Categories(ctx, only)
	if err != nil {
		return nil, rpcError(err)
	}

	return NewCategories(page.Items), nil
}
