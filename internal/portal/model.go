package portal

import "time"

type Category struct {
	ID          int
	Name        string
	ShowOnSite  bool
	OrderNumber int
}

// CategoryRef is the category denormalised onto content at query time.
type CategoryRef struct {
	ID   int
	Name string
}

type Video struct {
	ID          int
	Title       string
	Description string
	FileURL     *string
	ExternalURL *string
	CoverURL    *string
	AuthorName  *string
	AuthorRole  *string
	UploadedAt  time.Time
	Category    CategoryRef
}

type Author struct {
	UserID   int
	Name     string
	LastName *string
}

type Post struct {
	ID           int
	Title        string
	Description  string
	Content      *string
	ImageURL     *string
	ThumbnailURL *string
	ExternalLink *string
	PublishedAt  time.Time
	Category     CategoryRef
	Author       *Author
}

type ServerInfo struct {
	Version  string
	Database string
	Now      time.Time
}
