package entity

import (
	"github.com/google/uuid"
)

type MenuCategory string

const (
	CategoryCoffee MenuCategory = "coffee"
	CategoryFood   MenuCategory = "food"
	CategoryPastry MenuCategory = "pastry"
	CategoryOther  MenuCategory = "other"
)

type MenuItem struct {
	ID          uuid.UUID     `db:"id"`
	ShopID      uuid.UUID     `db:"shop_id"`
	Name        string        `db:"name"`
	Description *string       `db:"description"`
	PriceCents  int64         `db:"price_cents"`
	Category    *MenuCategory `db:"category"`
}
