package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	ShopID uuid.UUID `db:"shop_id"`
	UserID uuid.UUID `db:"user_id"`
	Rating int       `db:"rating"` // 1-5
	Text   *string   `db:"review_text"`
}
