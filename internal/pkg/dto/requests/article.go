package requests

import "time"

type CreateArticle struct {
	Author        string     `json:"author" validate:"required"`
	PublishedDate *time.Time `json:"published_date"`
	Title         string     `json:"title" validate:"required"`
	Content       string     `json:"content" validate:"required"`
	ArticleCover  string     `json:"article_cover" validate:"omitempty,url"`
	AuthorImage   string     `json:"author_image" validate:"omitempty,url"`
}

type UpdateArticle struct {
	Title   *string `json:"title" validate:"omitempty,min=1"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

func (r *UpdateArticle) IsEmpty() bool {
	return r.Title == nil && r.Content == nil
}

type ArticleQuery struct {
	Sort string `json:"sort" validate:"omitempty,oneof=alphabetical newest oldest"`
}
