package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner — владелец объекта недвижимости.
// Ссылочная целостность с Property.IDOwner не контролируется:
// "висячая" ссылка допустима.
type Owner struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Address  string             `bson:"address" json:"address"`
	Photo    *string            `bson:"photo,omitempty" json:"photo,omitempty"`
	Birthday *time.Time         `bson:"birthday,omitempty" json:"birthday,omitempty"`
}

// OwnerDraft — данные для создания или полной замены владельца.
type OwnerDraft struct {
	Name     string
	Address  string
	Photo    *string
	Birthday *time.Time
}
