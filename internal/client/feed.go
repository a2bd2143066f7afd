package client

import (
	"context"
	"sync"

	"github.com/agrovia/portal/internal/rest"
)

// FetchFunc loads the data of a feed for param.
type FetchFunc[P, T any] func(ctx context.Context, param P) (T, error)

// State is a snapshot of a feed.
type State[T any] struct {
	Data    T
	Loading bool
	Err     error
}

// Feed keeps the result of the latest load. Starting a load cancels the previous one,
// and only the latest load may commit. After Close nothing commits.
type Feed[P, T any] struct {
	fetch FetchFunc[P, T]

	mu     sync.Mutex
	state  State[T]
	gen    uint64
	cancel context.CancelFunc
	closed bool
}

func NewFeed[P, T any](fetch FetchFunc[P, T]) *Feed[P, T] {
	return &Feed[P, T]{fetch: fetch}
}

// Load starts fetching param. The returned channel is closed when this load settles,
// whether it committed or was superseded.
func (f *Feed[P, T]) Load(ctx context.Context, param P) <-chan struct{} {
	done := make(chan struct{})

	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		close(done)
		return done
	}

	if f.cancel != nil {
		f.cancel()
	}
	f.gen++
	gen := f.gen
	reqCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.state.Loading = true
	f.state.Err = nil
	f.mu.Unlock()

	go func() {
		defer close(done)
		defer cancel()

		data, err := f.fetch(reqCtx, param)

		f.mu.Lock()
		defer f.mu.Unlock()

		if f.closed || gen != f.gen {
			return
		}

		if err != nil {
			f.state = State[T]{Err: err}
		} else {
			f.state = State[T]{Data: data}
		}
		f.cancel = nil
	}()

	return done
}

func (f *Feed[P, T]) State() State[T] {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Close cancels the pending load and stops every later commit.
func (f *Feed[P, T]) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.closed = true
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}

// NewVideoFeed lists videos of the category passed to Load.
func NewVideoFeed(c *Client, limit int) *Feed[string, rest.Videos] {
	return NewFeed[string, rest.Videos](func(ctx context.Context, categoria string) (rest.Videos, error) {
		resp, err := c.Videos(ctx, categoria, limit)
		if err != nil {
			return nil, err
		}
		return resp.Videos, nil
	})
}

// NewPostFeed lists posts of the category passed to Load.
func NewPostFeed(c *Client, limit int) *Feed[string, rest.Posts] {
	return NewFeed[string, rest.Posts](func(ctx context.Context, categoria string) (rest.Posts, error) {
		resp, err := c.Posts(ctx, categoria, limit)
		if err != nil {
			return nil, err
		}
		return resp.Posts, nil
	})
}

// NewCategoryFeed lists the site categories. Load takes no meaningful parameter.
func NewCategoryFeed(c *Client) *Feed[struct{}, rest.Categories] {
	return NewFeed[struct{}, rest.Categories](func(ctx context.Context, _ struct{}) (rest.Categories, error) {
		return c.SiteCategories(ctx)
	})
}
