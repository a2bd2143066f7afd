package rest

import "github.com/agrovia/portal/internal/portal"

//go:generate colgen -imports=github.com/agrovia/portal/internal/portal
//colgen:Video,Post,Category
//colgen:Video:Map(portal),Index(ID)
//colgen:Post:Map(portal),Index(ID)
//colgen:Category:Map(portal),Index(ID)

type Videos []Video

func NewVideos(in []portal.Video) Videos {
	return Map(in, NewVideo)
}

type Posts []Post

func NewPosts(in []portal.Post) Posts {
	return Map(in, NewPost)
}

type Categories []Category

func NewCategories(in []portal.Category) Categories {
	return Map(in, NewCategory)
}
