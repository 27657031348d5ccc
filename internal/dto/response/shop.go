package response

import (
	"time"

	"coffee-directory/internal/data/entity"
	"coffee-directory/pkg/utils"
)

type ShopResponse struct {
	ShopID      string    `json:"shop_id"`
	Name        string    `json:"shop_name"`
	Description *string   `json:"description"`
	Phone       *string   `json:"phone_num"`
	Website     *string   `json:"website"`
	CreatedAt   time.Time `json:"created_at"`
}

type ShopDetailResponse struct {
	ShopResponse
	Locations []LocationResponse `json:"locations"`
	MenuItems []MenuItemResponse `json:"menu_items"`
	Reviews   []ReviewResponse   `json:"reviews"`
}

type ShopCreatedResponse struct {
	ShopID string `json:"shop_id"`
}

type LocationResponse struct {
	LocationID string  `json:"location_id"`
	Address    string  `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Zipcode    *string `json:"zipcode"`
}

type LocationCreatedResponse struct {
	LocationID string `json:"location_id"`
}

type MenuItemResponse struct {
	ItemID      string  `json:"item_id"`
	Name        string  `json:"item_name"`
	Description *string `json:"description"`
	Price       string  `json:"price"`
	Category    *string `json:"category"`
}

type MenuItemCreatedResponse struct {
	ItemID string `json:"item_id"`
}

// Helper converters
func ShopToResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ShopID:      shop.ID.String(),
		Name:        shop.Name,
		Description: shop.Description,
		Phone:       shop.Phone,
		Website:     shop.Website,
		CreatedAt:   shop.CreatedAt,
	}
}

func LocationToResponse(location *entity.Location) LocationResponse {
	return LocationResponse{
		LocationID: location.ID.String(),
		Address:    location.Address,
		City:       location.City,
		State:      location.State,
		Zipcode:    location.Zipcode,
	}
}

func MenuItemToResponse(item *entity.MenuItem) MenuItemResponse {
	var category *string
	if item.Category != nil {
		c := string(*item.Category)
		category = &c
	}

	return MenuItemResponse{
		ItemID:      item.ID.String(),
		Name:        item.Name,
		Description: item.Description,
		Price:       utils.FormatPrice(item.PriceCents),
		Category:    category,
	}
}
