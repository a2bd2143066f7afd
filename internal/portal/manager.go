package portal

import (
	"context"
	"errors"
	"fmt"

	"github.com/agrovia/portal/internal/db"
)

var ErrInvalidLimit = errors.New("limit must be greater than 0")

// Manager is the content repository: it maps query rows to domain entities.
type Manager struct {
	db *db.Repository
}

func NewManager(repo *db.Repository) *Manager {
	return &Manager{
		db: repo,
	}
}

// FindVideosByCategory returns at most limit videos of the named category ordered by
// upload date descending. An unknown category yields an empty slice.
func (m *Manager) FindVideosByCategory(ctx context.Context, category string, limit int) ([]Video, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	list, err := m.db.VideosByCategory(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("db get videos by category: %w", err)
	}

	return Map(list, NewVideo), nil
}

func (m *Manager) LatestVideos(ctx context.Context, limit int) ([]Video, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	list, err := m.db.LatestVideos(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("db get latest videos: %w", err)
	}

	return Map(list, NewVideo), nil
}

func (m *Manager) FindVideoByID(ctx context.Context, id int) (*Video, error) {
	row, err := m.db.VideoByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get video by id: %w", err)
	} else if row == nil {
		return nil, nil
	}

	video := NewVideo(*row)
	return &video, nil
}

// FindPostsByCategory returns at most limit posts of the named category ordered by
// publish date descending.
func (m *Manager) FindPostsByCategory(ctx context.Context, category string, limit int) ([]Post, error) {
	if limit < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	list, err := m.db.PostsByCategory(ctx, category, limit)
	if err != nil {
		return nil, fmt.Errorf("db get posts by category: %w", err)
	}

	return Map(list, NewPost), nil
}

func (m *Manager) FindPostByID(ctx context.Context, id int) (*Post, error) {
	row, err := m.db.PostByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	} else if row == nil {
		return nil, nil
	}

	post := NewPost(*row)
	return &post, nil
}

func (m *Manager) Categories(ctx context.Context, siteOnly bool) ([]Category, error) {
	list, err := m.db.Categories(ctx, siteOnly)
	if err != nil {
		return nil, fmt.Errorf("db get categories: %w", err)
	}

	return Map(list, NewCategory), nil
}

func (m *Manager) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	info, err := m.db.ServerInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get server info: %w", err)
	} else if info == nil {
		return nil, nil
	}

	return &ServerInfo{
		Version:  info.Version,
		Database: info.Database,
		Now:      info.Now,
	}, nil
}
