package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Article statuses used by the moderation flow. Any other string is stored as-is.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// Article represents a news article
type Article struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title          string             `bson:"title,omitempty" json:"title,omitempty"`
	Image          string             `bson:"image,omitempty" json:"image,omitempty"`
	Publisher      string             `bson:"publisher,omitempty" json:"publisher,omitempty"`
	PublisherImage string             `bson:"publisherImage,omitempty" json:"publisherImage,omitempty"`
	Tag            string             `bson:"tag,omitempty" json:"tag,omitempty"`
	Description    string             `bson:"description,omitempty" json:"description,omitempty"`
	AuthorName     string             `bson:"authorName,omitempty" json:"authorName,omitempty"`
	AuthorEmail    string             `bson:"authorEmail,omitempty" json:"authorEmail,omitempty"`
	AuthorImage    string             `bson:"authorImage,omitempty" json:"authorImage,omitempty"`
	PostedDate     string             `bson:"postedDate,omitempty" json:"postedDate,omitempty"`
	Status         string             `bson:"status,omitempty" json:"status,omitempty"`
	IsPremium      bool               `bson:"isPremium" json:"isPremium"`
	Views          int64              `bson:"views" json:"views"`
	Extra          bson.M             `bson:",inline" json:"-"`
}

func (a Article) MarshalJSON() ([]byte, error) {
	type plain Article
	return marshalWithExtra(plain(a), a.Extra)
}

func (a *Article) UnmarshalJSON(data []byte) error {
	type plain Article
	var p plain
	extra, err := unmarshalWithExtra(data, &p)
	if err != nil {
		return err
	}
	p.Extra = extra
	*a = Article(p)
	return nil
}

// ArticleSummary is the image+title projection used by the most-viewed listing
type ArticleSummary struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title string             `bson:"title,omitempty" json:"title,omitempty"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}

// ArticleContent holds the editable fields of an article
type ArticleContent struct {
	Title          string `json:"title"`
	Image          string `json:"image"`
	Publisher      string `json:"publisher"`
	PublisherImage string `json:"publisherImage"`
	Tag            string `json:"tag"`
	Description    string `json:"description"`
}
