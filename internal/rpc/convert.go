package rpc

import "github.com/agrovia/portal/internal/portal"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategoryRef(c portal.CategoryRef) CategoryRef {
	return CategoryRef{
		ID:   c.ID,
		Name: c.Name,
	}
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
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		FileURL:     v.FileURL,
		ExternalURL: v.ExternalURL,
		CoverURL:    v.CoverURL,
		AuthorName:  v.AuthorName,
		AuthorRole:  v.AuthorRole,
		UploadedAt:  v.UploadedAt,
		Category:    NewCategoryRef(v.Category),
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
		Category:     NewCategoryRef(p.Category),
	}

	if p.Author != nil {
		post.Author = &Author{
			UserID:   p.Author.UserID,
			Name:     p.Author.Name,
			LastName: p.Author.LastName,
		}
	}

	return post
}
