package portal

import "github.com/agrovia/portal/internal/db"

// Map converts every element of list with converter.
func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewCategory(c db.Category) Category {
	return Category{
		ID:          c.ID,
		Name:        c.Name,
		ShowOnSite:  c.ShowOnSite,
		OrderNumber: c.OrderNumber,
	}
}

func NewVideo(v db.Video) Video {
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
		Category: CategoryRef{
			ID:   v.CategoryID,
			Name: v.CategoryName,
		},
	}
}

func NewPost(p db.Post) Post {
	post := Post{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Content:      p.Content,
		ImageURL:     p.ImageURL,
		ThumbnailURL: p.ThumbnailURL,
		ExternalLink: p.ExternalLink,
		PublishedAt:  p.PublishedAt,
		Category: CategoryRef{
			ID:   p.CategoryID,
			Name: p.CategoryName,
		},
	}

	if p.UserID != nil {
		post.Author = &Author{
			UserID:   *p.UserID,
			LastName: p.AuthorLastName,
		}
		if p.AuthorName != nil {
			post.Author.Name = *p.AuthorName
		}
	}

	return post
}
