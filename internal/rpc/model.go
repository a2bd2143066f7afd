package rpc

import (
	"time"
)

type ContentFilter struct {
	//categoria category name, default from config
	Categoria *string `json:"categoria,omitempty"`
	//limit=10 maximum number of items (1..100)
	Limit *int `json:"limit,omitempty"`
}

type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShowOnSite  bool   `json:"showOnSite"`
	OrderNumber int    `json:"orderNumber"`
}

type Author struct {
	UserID   int     `json:"userId"`
	Name     string  `json:"name"`
	LastName *string `json:"lastName,omitempty"`
}

type Video struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	FileURL     *string     `json:"fileUrl,omitempty"`
	ExternalURL *string     `json:"externalUrl,omitempty"`
	CoverURL    *string     `json:"coverUrl,omitempty"`
	AuthorName  *string     `json:"authorName,omitempty"`
	AuthorRole  *string     `json:"authorRole,omitempty"`
	UploadedAt  time.Time   `json:"uploadedAt"`
	Category    CategoryRef `json:"category"`
}

type Post struct {
	ID           int         `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Content      *string     `json:"content,omitempty"`
	ImageURL     *string     `json:"imageUrl,omitempty"`
	ThumbnailURL *string     `json:"thumbnailUrl,omitempty"`
	ExternalLink *string     `json:"externalLink,omitempty"`
	PublishedAt  time.Time   `json:"publishedAt"`
	Category     CategoryRef `json:"category"`
	Author       *Author     `json:"author,omitempty"`
}

type VideoPage struct {
	Videos Videos `json:"videos"`
	Source string `json:"source"`
}

type PostPage struct {
	Posts  Posts  `json:"posts"`
	Source string `json:"source"`
}
