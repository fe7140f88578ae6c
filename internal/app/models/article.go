package models

import "time"

type Article struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	Author        string    `json:"author" bson:"author"`
	PublishedDate time.Time `json:"published_date" bson:"published_date"`
	Title         string    `json:"title" bson:"title"`
	Content       string    `json:"content" bson:"content"`
	ArticleCover  string    `json:"article_cover" bson:"article_cover"`
	AuthorImage   string    `json:"author_image" bson:"author_image"`
	TimeModel     `bson:",inline"`
}
