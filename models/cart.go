package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DateLayout is how cart dates are served: UTC with milliseconds.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

type CartItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductName string             `bson:"productName" json:"productName"`
	Quantity    float64            `bson:"quantity" json:"quantity" validate:"gte=0"`
	Price       float64            `bson:"price" json:"price" validate:"gte=0"`
	Date        *time.Time         `bson:"date" json:"date"`
}

func (ci CartItem) MarshalJSON() ([]byte, error) {
	type plain CartItem
	out := struct {
		plain
		Date *string `json:"date"`
	}{plain: plain(ci)}

	if ci.Date != nil {
		s := ci.Date.UTC().Format(DateLayout)
		out.Date = &s
	}
	return json.Marshal(out)
}
