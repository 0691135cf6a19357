package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyImage — изображение объекта. Флаг Enabled управляет тем,
// может ли изображение быть обложкой; включенных может быть несколько.
type PropertyImage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IDProperty primitive.ObjectID `bson:"idProperty" json:"idProperty"`
	File       string             `bson:"file" json:"file"`
	Enabled    bool               `bson:"enabled" json:"enabled"`
}

// PropertyImageDraft — данные для добавления изображения.
type PropertyImageDraft struct {
	IDProperty string
	File       string
	Enabled    bool
}
