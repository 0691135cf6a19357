package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property — карточка объекта недвижимости в каталоге.
// Идентификатор назначается хранилищем при создании и дальше не меняется.
type Property struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	IDOwner      primitive.ObjectID `bson:"idOwner" json:"idOwner"`
	Name         string             `bson:"name" json:"name"`
	Address      string             `bson:"address" json:"address"`
	Price        float64            `bson:"price" json:"price"`
	CodeInternal string             `bson:"codeInternal" json:"codeInternal"`
	Year         int                `bson:"year" json:"year"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PropertyDraft — данные для создания или полной замены объекта.
// Идентификаторы здесь еще строковые: их разбирает use case.
type PropertyDraft struct {
	IDOwner      string
	Name         string
	Address      string
	Price        float64
	CodeInternal string
	Year         int
}

// PropertyChange — событие изменения каталога для внешних подписчиков.
type PropertyChange struct {
	Action     string    // "created", "updated" или "deleted"
	PropertyID string
	OccurredAt time.Time
}

const (
	PropertyCreated = "created"
	PropertyUpdated = "updated"
	PropertyDeleted = "deleted"
)
