package portal

import (
	"context"
)

const (
	SourceLive = "live"
	SourceMock = "mock"
)

// Page is a list of content together with the source that produced it.
type Page[T any] struct {
	Items  []T
	Source string
}

// Entry is a single lookup result. Value is nil when nothing matched.
type Entry[T any] struct {
	Value  *T
	Source string
}

// Source is the strategy behind the content endpoints.
type Source interface {
	Videos(ctx context.Context, category string, limit int) (Page[Video], error)
	Posts(ctx context.Context, category string, limit int) (Page[Post], error)
	Categories(ctx context.Context, siteOnly bool) (Page[Category], error)
	Video(ctx context.Context, id int) (Entry[Video], error)
	Post(ctx context.Context, id int) (Entry[Post], error)
}

// LiveSource reads content from the database.
type LiveSource struct {
	manager *Manager
}

var _ Source = (*LiveSource)(nil)

func NewLiveSource(manager *Manager) *LiveSource {
	return &LiveSource{manager: manager}
}

func (s *LiveSource) Videos(ctx context.Context, category string, limit int) (Page[Video], error) {
	videos, err := s.manager.FindVideosByCategory(ctx, category, limit)
	if err != nil {
		return Page[Video]{}, err
	}
	return Page[Video]{Items: videos, Source: SourceLive}, nil
}

func (s *LiveSource) Posts(ctx context.Context, category string, limit int) (Page[Post], error) {
	posts, err := s.manager.FindPostsByCategory(ctx, category, limit)
	if err != nil {
		return Page[Post]{}, err
	}
	return Page[Post]{Items: posts, Source: SourceLive}, nil
}

func (s *LiveSource) Categories(ctx context.Context, siteOnly bool) (Page[Category], error) {
	categories, err := s.manager.Categories(ctx, siteOnly)
	if err != nil {
		return Page[Category]{}, err
	}
	return Page[Category]{Items: categories, Source: SourceLive}, nil
}

func (s *LiveSource) Video(ctx context.Context, id int) (Entry[Video], error) {
	video, err := s.manager.FindVideoByID(ctx, id)
	if err != nil {
		return Entry[Video]{}, err
	}
	return Entry[Video]{Value: video, Source: SourceLive}, nil
}

func (s *LiveSource) Post(ctx context.Context, id int) (Entry[Post], error) {
	post, err := s.manager.FindPostByID(ctx, id)
	if err != nil {
		return Entry[Post]{}, err
	}
	return Entry[Post]{Value: post, Source: SourceLive}, nil
}
