package db

import (
	"context"
	"fmt"
)

const (
	videoColumns = `
	v.id, v.title, v.description, v.file_url, v.external_url, v.cover_url,
	v.author_name, v.author_role, v.uploaded_at, v.category_id, c.name AS category_name`

	postColumns = `
	p.id, p.title, p.description, p.content, p.image_url, p.thumbnail_url,
	p.external_link, p.published_at, p.category_id, c.name AS category_name,
	p.user_id, u.name AS author_name, u.last_name AS author_last_name`

	videosByCategoryQuery = `SELECT` + videoColumns + `
	FROM videos v
	JOIN categories c ON c.id = v.category_id
	WHERE c.name = ?categoria
	ORDER BY v.uploaded_at DESC, v.id DESC
	LIMIT ?limit`

	latestVideosQuery = `SELECT` + videoColumns + `
	FROM videos v
	JOIN categories c ON c.id = v.category_id
	ORDER BY v.uploaded_at DESC, v.id DESC
	LIMIT ?limit`

	videoByIDQuery = `SELECT` + videoColumns + `
	FROM videos v
	JOIN categories c ON c.id = v.category_id
	WHERE v.id = ?id`

	postsByCategoryQuery = `SELECT` + postColumns + `
	FROM posts p
	JOIN categories c ON c.id = p.category_id
	LEFT JOIN users u ON u.id = p.user_id
	WHERE c.name = ?categoria
	ORDER BY p.published_at DESC, p.id DESC
	LIMIT ?limit`

	postByIDQuery = `SELECT` + postColumns + `
	FROM posts p
	JOIN categories c ON c.id = p.category_id
	LEFT JOIN users u ON u.id = p.user_id
	WHERE p.id = ?id`

	categoriesQuery = `SELECT id, name, show_on_site, order_number
	FROM categories
	ORDER BY order_number ASC, name ASC`

	siteCategoriesQuery = `SELECT id, name, show_on_site, order_number
	FROM categories
	WHERE show_on_site
	ORDER BY order_number ASC, name ASC`

	serverInfoQuery = `SELECT version() AS version, current_database() AS database, now() AS now`
)

// Repository runs the content queries. It only reads.
type Repository struct {
	q Querier
}

func New(q Querier) *Repository {
	return &Repository{
		q: q,
	}
}

// VideosByCategory returns at most limit videos of the named category, newest first.
// An unknown category yields an empty result.
func (r *Repository) VideosByCategory(ctx context.Context, category string, limit int) ([]Video, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var videos []Video
	err := r.q.Run(WithOperation(ctx, "videos_by_category"), &videos, videosByCategoryQuery, Params{
		"categoria": category,
		"limit":     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query videos: %w", err)
	}

	return videos, nil
}

func (r *Repository) LatestVideos(ctx context.Context, limit int) ([]Video, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var videos []Video
	err := r.q.Run(WithOperation(ctx, "latest_videos"), &videos, latestVideosQuery, Params{
		"limit": limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query latest videos: %w", err)
	}

	return videos, nil
}

// VideoByID returns nil without error when the video does not exist.
func (r *Repository) VideoByID(ctx context.Context, id int) (*Video, error) {
	var videos []Video
	err := r.q.Run(WithOperation(ctx, "video_by_id"), &videos, videoByIDQuery, Params{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get video by id: %w", err)
	} else if len(videos) == 0 {
		return nil, nil
	}

	return &videos[0], nil
}

// PostsByCategory returns at most limit posts of the named category, newest first.
func (r *Repository) PostsByCategory(ctx context.Context, category string, limit int) ([]Post, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be greater than 0: limit=%d", limit)
	}

	var posts []Post
	err := r.q.Run(WithOperation(ctx, "posts_by_category"), &posts, postsByCategoryQuery, Params{
		"categoria": category,
		"limit":     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostByID(ctx context.Context, id int) (*Post, error) {
	var posts []Post
	err := r.q.Run(WithOperation(ctx, "post_by_id"), &posts, postByIDQuery, Params{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	} else if len(posts) == 0 {
		return nil, nil
	}

	return &posts[0], nil
}

// Categories returns categories by orderNumber; siteOnly keeps those shown on the site.
func (r *Repository) Categories(ctx context.Context, siteOnly bool) ([]Category, error) {
	query, op := categoriesQuery, "categories"
	if siteOnly {
		query, op = siteCategoriesQuery, "site_categories"
	}

	var categories []Category
	if err := r.q.Run(WithOperation(ctx, op), &categories, query, nil); err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	var info []ServerInfo
	if err := r.q.Run(WithOperation(ctx, "server_info"), &info, serverInfoQuery, nil); err != nil {
		return nil, fmt.Errorf("failed to query server info: %w", err)
	} else if len(info) == 0 {
		return nil, nil
	}

	return &info[0], nil
}
