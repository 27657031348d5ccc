package request

import "encoding/json"

type MenuItemRequest struct {
	Name string `json:"item_name" validate:"required,min=1,max=100"`
	// Decimal price like 4.50; parsed into cents by the service
	Price       json.Number `json:"price" validate:"required"`
	Description *string     `json:"description,omitempty"`
	Category    *string     `json:"category,omitempty" validate:"omitempty,oneof=coffee food pastry other"`
}
