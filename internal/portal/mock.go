package portal

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// MockSource serves a fixed dataset with the same ordering and limit rules as the database.
type MockSource struct {
	categories []Category
	videos     []Video
	posts      []Post
}

var _ Source = (*MockSource)(nil)

func NewMockSource() *MockSource {
	return NewMockSourceWith(mockCategories, mockVideos, mockPosts)
}

func NewMockSourceWith(categories []Category, videos []Video, posts []Post) *MockSource {
	return &MockSource{
		categories: categories,
		videos:     videos,
		posts:      posts,
	}
}

func (s *MockSource) Videos(_ context.Context, category string, limit int) (Page[Video], error) {
	if limit < 1 {
		return Page[Video]{}, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	items := make([]Video, 0, limit)
	for _, v := range s.videos {
		if v.Category.Name == category {
			items = append(items, v)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].UploadedAt.Equal(items[j].UploadedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].UploadedAt.After(items[j].UploadedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}

	return Page[Video]{Items: items, Source: SourceMock}, nil
}

func (s *MockSource) Posts(_ context.Context, category string, limit int) (Page[Post], error) {
	if limit < 1 {
		return Page[Post]{}, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	items := make([]Post, 0, limit)
	for _, p := range s.posts {
		if p.Category.Name == category {
			items = append(items, p)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].PublishedAt.Equal(items[j].PublishedAt) {
			return items[i].ID > items[j].ID
		}
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}

	return Page[Post]{Items: items, Source: SourceMock}, nil
}

func (s *MockSource) Categories(_ context.Context, siteOnly bool) (Page[Category], error) {
	items := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		if siteOnly && !c.ShowOnSite {
			continue
		}
		items = append(items, c)
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].OrderNumber == items[j].OrderNumber {
			return items[i].Name < items[j].Name
		}
		return items[i].OrderNumber < items[j].OrderNumber
	})

	return Page[Category]{Items: items, Source: SourceMock}, nil
}

func (s *MockSource) Video(_ context.Context, id int) (Entry[Video], error) {
	for i := range s.videos {
		if s.videos[i].ID == id {
			v := s.videos[i]
			return Entry[Video]{Value: &v, Source: SourceMock}, nil
		}
	}
	return Entry[Video]{Source: SourceMock}, nil
}

func (s *MockSource) Post(_ context.Context, id int) (Entry[Post], error) {
	for i := range s.posts {
		if s.posts[i].ID == id {
			p := s.posts[i]
			return Entry[Post]{Value: &p, Source: SourceMock}, nil
		}
	}
	return Entry[Post]{Source: SourceMock}, nil
}

func ptr(s string) *string {
	return &s
}

var (
	conversa = CategoryRef{ID: 1, Name: "Agrovia Conversa"}
	responde = CategoryRef{ID: 2, Name: "Agrovia Responde"}

	mockCategories = []Category{
		{ID: 1, Name: "Agrovia Conversa", ShowOnSite: true, OrderNumber: 1},
		{ID: 2, Name: "Agrovia Responde", ShowOnSite: true, OrderNumber: 2},
		{ID: 3, Name: "Parceiros", ShowOnSite: false, OrderNumber: 3},
	}

	mockVideos = []Video{
		{
			ID:          1,
			Title:       "Agricultura regenerativa na pratica",
			Description: "Produtores contam como recuperaram o solo em tres safras.",
			ExternalURL: ptr("https://www.youtube.com/watch?v=agrovia01"),
			CoverURL:    ptr("/images/videos/regenerativa.jpg"),
			AuthorName:  ptr("Marina Costa"),
			AuthorRole:  ptr("Engenheira agronoma"),
			UploadedAt:  time.Date(2024, 1, 10, 10, 0, 0, 0, time.UTC),
			Category:    conversa,
		},
		{
			ID:          2,
			Title:       "Tecnologia e sucessao familiar",
			Description: "Como a nova geracao leva dados para a fazenda.",
			ExternalURL: ptr("https://www.youtube.com/watch?v=agrovia02"),
			CoverURL:    ptr("/images/videos/sucessao.jpg"),
			AuthorName:  ptr("Paulo Mendes"),
			AuthorRole:  ptr("Produtor rural"),
			UploadedAt:  time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC),
			Category:    conversa,
		},
		{
			ID:          3,
			Title:       "Quando aplicar calcario?",
			Description: "Respostas rapidas sobre correcao de solo.",
			FileURL:     ptr("/media/videos/calcario.mp4"),
			AuthorName:  ptr("Marina Costa"),
			AuthorRole:  ptr("Engenheira agronoma"),
			UploadedAt:  time.Date(2024, 2, 2, 10, 0, 0, 0, time.UTC),
			Category:    responde,
		},
		{
			ID:          4,
			Title:       "Seguro rural vale a pena?",
			Description: "Especialista explica coberturas e custos.",
			UploadedAt:  time.Date(2024, 2, 9, 10, 0, 0, 0, time.UTC),
			Category:    responde,
		},
	}

	mockPosts = []Post{
		{
			ID:          1,
			Title:       "Agrovia chega a novas regioes",
			Description: "O portal amplia a cobertura para o Centro-Oeste.",
			Content:     ptr("<p>O Agrovia passa a cobrir novas regioes produtoras.</p>"),
			ImageURL:    ptr("/images/posts/expansao.jpg"),
			PublishedAt: time.Date(2024, 1, 15, 8, 0, 0, 0, time.UTC),
			Category:    conversa,
			Author:      &Author{UserID: 1, Name: "Equipe", LastName: ptr("Agrovia")},
		},
		{
			ID:           2,
			Title:        "Calendario de eventos do agro",
			Description:  "Feiras e dias de campo do trimestre.",
			ExternalLink: ptr("https://agrovia.com.br/eventos"),
			PublishedAt:  time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
			Category:     responde,
		},
	}
)
