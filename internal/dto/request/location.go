package request

type LocationRequest struct {
	Address string  `json:"address" validate:"required,min=1,max=100"`
	City    *string `json:"city,omitempty" validate:"omitempty,max=100"`
	State   *string `json:"state,omitempty" validate:"omitempty,max=100"`
	Zipcode *string `json:"zipcode,omitempty" validate:"omitempty,max=30"`
}
