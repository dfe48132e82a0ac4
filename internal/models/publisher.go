package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Publisher represents a news outlet
type Publisher struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"publisher" json:"publisher"`
	Logo  string             `bson:"logo,omitempty" json:"logo,omitempty"`
	Extra bson.M             `bson:",inline" json:"-"`
}

// Publishers are read-only, so only the encoding side is needed.
func (p Publisher) MarshalJSON() ([]byte, error) {
	type plain Publisher
	return marshalWithExtra(plain(p), p.Extra)
}
