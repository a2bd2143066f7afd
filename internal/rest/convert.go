package rest

import "github.com/agrovia/portal/internal/portal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c portal.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		ShowOnSite:  c.ShowOnSite,
		OrderNumber: c.OrderNumber,
	}
}

func NewVideo(v portal.Video) Video {
	return Video{
		ID:           v.ID,
		Title:        v.Title,
		Description:  v.Description,
		FileURL:      v.FileURL,
		ExternalURL:  v.ExternalURL,
		CoverURL:     v.CoverURL,
		AuthorName:   v.AuthorName,
		AuthorRole:   v.AuthorRole,
		UploadedAt:   v.UploadedAt,
		CategoryID:   v.Category.ID,
		CategoryName: v.Category.Name,
	}
}

func NewPost(p portal.Post) Post {
	post := Post{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		ThumbnailURL: p.ThumbnailURL,
		ExternalLink: p.ExternalLink,
		PublishedAt:  p.PublishedAt,
		CategoryID:   p.Category.ID,
		CategoryName: p.Category.Name,
	}

	if p.Author != nil {
		userID := p.Author.UserID
		name := p.Author.Name
		post.UserID = &userID
		post.AuthorName = &name
		post.AuthorLastName = p.Author.LastName
	}

	return post
}

func NewServerInfo(s portal.ServerInfo) ServerInfo {
	return ServerInfo{
		Version:  s.Version,
		Database: s.Database,
		Now:      s.Now,
	}
}
