package entity

import (
	"github.com/google/uuid"
)

type Location struct {
	ID      uuid.UUID `db:"id"`
	ShopID  uuid.UUID `db:"shop_id"`
	Address string    `db:"address"`
	City    *string   `db:"city"`
	State   *string   `db:"state"`
	Zipcode *string   `db:"zipcode"`
}
