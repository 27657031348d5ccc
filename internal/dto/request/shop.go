package request

type ShopRequest struct {
	Name        string  `json:"shop_name" validate:"required,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone_num,omitempty" validate:"omitempty,max=30"`
	Website     *string `json:"website,omitempty" validate:"omitempty,max=200"`
}

// ShopUpdateRequest carries partial updates: nil fields stay untouched
type ShopUpdateRequest struct {
	Name        *string `json:"shop_name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
	Phone       *string `json:"phone_num,omitempty" validate:"omitempty,max=30"`
	Website     *string `json:"website,omitempty" validate:"omitempty,max=200"`
}
