package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewsItem is a bilingual news record as stored in the "newsitem" collection.
type NewsItem struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TitleEN  string             `json:"title_en" bson:"title_en"`
	TitleAR  string             `json:"title_ar" bson:"title_ar"`
	BodyEN   string             `json:"body_en,omitempty" bson:"body_en,omitempty"`
	BodyAR   string             `json:"body_ar,omitempty" bson:"body_ar,omitempty"`
	ImageURL string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Tag      string             `json:"tag,omitempty" bson:"tag,omitempty"`
	Featured bool               `json:"featured" bson:"featured"`
}

// NewsCreate is the request payload for creating a news item. Unknown JSON
// fields are ignored by the decoder; featured defaults to false.
type NewsCreate struct {
	TitleEN  string `json:"title_en"`
	TitleAR  string `json:"title_ar"`
	BodyEN   string `json:"body_en"`
	BodyAR   string `json:"body_ar"`
	ImageURL string `json:"image_url"`
	Tag      string `json:"tag"`
	Featured bool   `json:"featured"`
}

func (n *NewsCreate) Validate() error {
	var problems []string
	if n.TitleEN == "" {
		problems = append(problems, "title_en is required")
	}
	if n.TitleAR == "" {
		problems = append(problems, "title_ar is required")
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Item builds the storable record from a validated payload.
func (n *NewsCreate) Item() *NewsItem {
	return &NewsItem{
		TitleEN:  n.TitleEN,
		TitleAR:  n.TitleAR,
		BodyEN:   n.BodyEN,
		BodyAR:   n.BodyAR,
		ImageURL: n.ImageURL,
		Tag:      n.Tag,
		Featured: n.Featured,
	}
}
