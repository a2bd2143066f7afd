package rest

import (
	"time"

	"github.com/agrovia/portal/config"
)

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ShowOnSite  bool   `json:"showOnSite"`
	OrderNumber int    `json:"orderNumber"`
}

type Video struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	FileURL      *string   `json:"fileUrl,omitempty"`
	ExternalURL  *string   `json:"externalUrl,omitempty"`
	CoverURL     *string   `json:"coverUrl,omitempty"`
	AuthorName   *string   `json:"authorName,omitempty"`
	AuthorRole   *string   `json:"authorRole,omitempty"`
	UploadedAt   time.Time `json:"uploadedAt"`
	CategoryID   int       `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
}

type Post struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Content        *string   `json:"content,omitempty"`
	ImageURL       *string   `json:"imageUrl,omitempty"`
	ThumbnailURL   *string   `json:"thumbnailUrl,omitempty"`
	ExternalLink   *string   `json:"externalLink,omitempty"`
	PublishedAt    time.Time `json:"publishedAt"`
	CategoryID     int       `json:"categoryId"`
	CategoryName   string    `json:"categoryName"`
	UserID         *int      `json:"userId,omitempty"`
	AuthorName     *string   `json:"authorName,omitempty"`
	AuthorLastName *string   `json:"authorLastName,omitempty"`
}

type ServerInfo struct {
	Version  string    `json:"version"`
	Database string    `json:"database"`
	Now      time.Time `json:"now"`
}

// Envelopes. Content endpoints always answer 200 with one of the types below;
// build them with the ok*/failed constructors only.

type FailedResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type VideosResponse struct {
	Success bool   `json:"success"`
	Videos  Videos `json:"videos"`
	Source  string `json:"source"`
}

type PostsResponse struct {
	Success bool   `json:"success"`
	Posts   Posts  `json:"posts"`
	Source  string `json:"source"`
}

type VideoResponse struct {
	Success bool   `json:"success"`
	Video   Video  `json:"video"`
	Source  string `json:"source"`
}

type PostResponse struct {
	Success bool   `json:"success"`
	Post    Post   `json:"post"`
	Source  string `json:"source"`
}

type CategoriesResponse struct {
	Categorias Categories `json:"categorias"`
	Error      string     `json:"error,omitempty"`
}

type TestDBResponse struct {
	Success    bool          `json:"success"`
	Config     config.Public `json:"config"`
	ServerInfo *ServerInfo   `json:"serverInfo,omitempty"`
	Categories Categories    `json:"categories"`
	Videos     Videos        `json:"videos"`
	Error      string        `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func failed(message string) FailedResponse {
	return FailedResponse{Success: false, Error: message}
}

func okVideos(items Videos, source string) VideosResponse {
	if items == nil {
		items = Videos{}
	}
	return VideosResponse{Success: true, Videos: items, Source: source}
}

func okPosts(items Posts, source string) PostsResponse {
	if items == nil {
		items = Posts{}
	}
	return PostsResponse{Success: true, Posts: items, Source: source}
}

func okVideo(v Video, source string) VideoResponse {
	return VideoResponse{Success: true, Video: v, Source: source}
}

func okPost(p Post, source string) PostResponse {
	return PostResponse{Success: true, Post: p, Source: source}
}

func okCategories(items Categories) CategoriesResponse {
	if items == nil {
		items = Categories{}
	}
	return CategoriesResponse{Categorias: items}
}

func okTestDB(cfg config.Public, info *ServerInfo, categories Categories, videos Videos) TestDBResponse {
	if categories == nil {
		categories = Categories{}
	}
	if videos == nil {
		videos = Videos{}
	}
	return TestDBResponse{Success: true, Config: cfg, ServerInfo: info, Categories: categories, Videos: videos}
}

func failedTestDB(cfg config.Public, message string) TestDBResponse {
	return TestDBResponse{Config: cfg, Categories: Categories{}, Videos: Videos{}, Error: message}
}

func failedCategories(message string) CategoriesResponse {
	return CategoriesResponse{Categorias: Categories{}, Error: message}
}
