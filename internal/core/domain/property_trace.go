package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PropertyTrace — запись из истории сделок по объекту.
// История только дописывается; удалить запись можно по id.
type PropertyTrace struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IDProperty primitive.ObjectID `bson:"idProperty" json:"idProperty"`
	DateSale   time.Time          `bson:"dateSale" json:"dateSale"`
	Name       string             `bson:"name" json:"name"`
	Value      float64            `bson:"value" json:"value"`
	Tax        float64            `bson:"tax" json:"tax"`
}

// PropertyTraceDraft — данные для добавления записи истории.
type PropertyTraceDraft struct {
	IDProperty string
	DateSale   time.Time
	Name       string
	Value      float64
	Tax        float64
}
