package db

import "time"

type Category struct {
	tableName struct{} `pg:",discard_unknown_columns"`

	ID          int    `pg:"id"`
	Name        string `pg:"name"`
	ShowOnSite  bool   `pg:"show_on_site,use_zero"`
	OrderNumber int    `pg:"order_number,use_zero"`
}

type Video struct {
	tableName struct{} `pg:",discard_unknown_columns"`

	ID           int       `pg:"id"`
	Title        string    `pg:"title"`
	Description  string    `pg:"description"`
	FileURL      *string   `pg:"file_url"`
	ExternalURL  *string   `pg:"external_url"`
	CoverURL     *string   `pg:"cover_url"`
	AuthorName   *string   `pg:"author_name"`
	AuthorRole   *string   `pg:"author_role"`
	UploadedAt   time.Time `pg:"uploaded_at"`
	CategoryID   int       `pg:"category_id"`
	CategoryName string    `pg:"category_name"`
}

type Post struct {
	tableName struct{} `pg:",discard_unknown_columns"`

	ID             int       `pg:"id"`
	Title          string    `pg:"title"`
	Description    string    `pg:"description"`
	Content        *string   `pg:"content"`
	ImageURL       *string   `pg:"image_url"`
	ThumbnailURL   *string   `pg:"thumbnail_url"`
	ExternalLink   *string   `pg:"external_link"`
	PublishedAt    time.Time `pg:"published_at"`
	CategoryID     int       `pg:"category_id"`
	CategoryName   string    `pg:"category_name"`
	UserID         *int      `pg:"user_id"`
	AuthorName     *string   `pg:"author_name"`
	AuthorLastName *string   `pg:"author_last_name"`
}

type ServerInfo struct {
	tableName struct{} `pg:",discard_unknown_columns"`

	Version  string    `pg:"version"`
	Database string    `pg:"database"`
	Now      time.Time `pg:"now"`
}
