package usecase

import (
	"context"
	"fmt"
	"time"

	"coffee-directory/internal/data/entity"
	"coffee-directory/internal/data/repository"
	"coffee-directory/internal/dto/request"
	"coffee-directory/internal/dto/response"
	"coffee-directory/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShopService interface {
	ListShops(ctx context.Context, filter repository.ShopFilter) ([]response.ShopResponse, error)
	CreateShop(ctx context.Context, req *request.ShopRequest) (*response.ShopCreatedResponse, error)
	GetShop(ctx context.Context, shopID string) (*response.ShopDetailResponse, error)
	UpdateShop(ctx context.Context, shopID string, req *request.ShopUpdateRequest) error
	DeleteShop(ctx context.Context, shopID string) error
	AddLocation(ctx context.Context, shopID string, req *request.LocationRequest) (*response.LocationCreatedResponse, error)
	AddMenuItem(ctx context.Context, shopID string, req *request.MenuItemRequest) (*response.MenuItemCreatedResponse, error)
}

type shopService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewShopService(repo *repository.Repository, log *zap.Logger) ShopService {
	return &shopService{
		repo: repo,
		log:  log.With(zap.String("service", "shop")),
	}
}

func (s *shopService) ListShops(ctx context.Context, filter repository.ShopFilter) ([]response.ShopResponse, error) {
	shops, err := s.repo.Shop.FindAll(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list shops", zap.Error(err))
		return nil, fmt.Errorf("failed to list shops")
	}

	out := make([]response.ShopResponse, 0, len(shops))
	for _, shop := range shops {
		out = append(out, response.ShopToResponse(shop))
	}

	return out, nil
}

func (s *shopService) CreateShop(ctx context.Context, req *request.ShopRequest) (*response.ShopCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create shop validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	shop := &entity.Shop{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Website:     req.Website,
	}

	if err := s.repo.Shop.Create(ctx, shop); err != nil {
		s.log.Error("Failed to create shop", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create shop")
	}

	s.log.Info("Shop created",
		zap.String("shop_id", shop.ID.String()),
		zap.String("name", shop.Name))

	return &response.ShopCreatedResponse{ShopID: shop.ID.String()}, nil
}

func (s *shopService) GetShop(ctx context.Context, shopID string) (*response.ShopDetailResponse, error) {
	shop, err := s.findShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	// Eager full-collection fetch, no pagination
	locations, err := s.repo.Location.FindByShopID(ctx, shop.ID)
	if err != nil {
		s.log.Error("Failed to load shop locations", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("failed to load shop")
	}

	items, err := s.repo.MenuItem.FindByShopID(ctx, shop.ID)
	if err != nil {
		s.log.Error("Failed to load shop menu", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("failed to load shop")
	}

	reviews, err := s.repo.Review.FindByShopID(ctx, shop.ID)
	if err != nil {
		s.log.Error("Failed to load shop reviews", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("failed to load shop")
	}

	detail := &response.ShopDetailResponse{
		ShopResponse: response.ShopToResponse(shop),
		Locations:    make([]response.LocationResponse, 0, len(locations)),
		MenuItems:    make([]response.MenuItemResponse, 0, len(items)),
		Reviews:      make([]response.ReviewResponse, 0, len(reviews)),
	}
	for _, location := range locations {
		detail.Locations = append(detail.Locations, response.LocationToResponse(location))
	}
	for _, item := range items {
		detail.MenuItems = append(detail.MenuItems, response.MenuItemToResponse(item))
	}
	for _, review := range reviews {
		detail.Reviews = append(detail.Reviews, response.ReviewToResponse(review))
	}

	return detail, nil
}

func (s *shopService) UpdateShop(ctx context.Context, shopID string, req *request.ShopUpdateRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update shop validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	shop, err := s.findShop(ctx, shopID)
	if err != nil {
		return err
	}

	// Partial update: only fields present in the request overwrite
	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Description != nil {
		shop.Description = req.Description
	}
	if req.Phone != nil {
		shop.Phone = req.Phone
	}
	if req.Website != nil {
		shop.Website = req.Website
	}

	if err := s.repo.Shop.Update(ctx, shop); err != nil {
		s.log.Error("Failed to update shop", zap.Error(err), zap.String("shop_id", shopID))
		return fmt.Errorf("failed to update shop")
	}

	s.log.Info("Shop updated", zap.String("shop_id", shopID))
	return nil
}

func (s *shopService) DeleteShop(ctx context.Context, shopID string) error {
	shop, err := s.findShop(ctx, shopID)
	if err != nil {
		return err
	}

	if err := s.repo.Shop.Delete(ctx, shop.ID); err != nil {
		s.log.Error("Failed to delete shop", zap.Error(err), zap.String("shop_id", shopID))
		return fmt.Errorf("failed to delete shop")
	}

	return nil
}

func (s *shopService) AddLocation(ctx context.Context, shopID string, req *request.LocationRequest) (*response.LocationCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add location validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	shop, err := s.findShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	location := &entity.Location{
		ID:      uuid.New(),
		ShopID:  shop.ID,
		Address: req.Address,
		City:    req.City,
		State:   req.State,
		Zipcode: req.Zipcode,
	}

	if err := s.repo.Location.Create(ctx, location); err != nil {
		s.log.Error("Failed to add location", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("failed to add location")
	}

	s.log.Info("Location added",
		zap.String("location_id", location.ID.String()),
		zap.String("shop_id", shopID))

	return &response.LocationCreatedResponse{LocationID: location.ID.String()}, nil
}

func (s *shopService) AddMenuItem(ctx context.Context, shopID string, req *request.MenuItemRequest) (*response.MenuItemCreatedResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add menu item validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	priceCents, err := utils.ParsePrice(req.Price.String())
	if err != nil {
		s.log.Warn("Bad menu item price", zap.String("price", req.Price.String()), zap.Error(err))
		return nil, fmt.Errorf("validation failed: %s", err.Error())
	}

	shop, err := s.findShop(ctx, shopID)
	if err != nil {
		return nil, err
	}

	var category *entity.MenuCategory
	if req.Category != nil {
		c := entity.MenuCategory(*req.Category)
		category = &c
	}

	item := &entity.MenuItem{
		ID:          uuid.New(),
		ShopID:      shop.ID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  priceCents,
		Category:    category,
	}

	if err := s.repo.MenuItem.Create(ctx, item); err != nil {
		s.log.Error("Failed to add menu item", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("failed to add menu item")
	}

	s.log.Info("Menu item added",
		zap.String("item_id", item.ID.String()),
		zap.String("shop_id", shopID))

	return &response.MenuItemCreatedResponse{ItemID: item.ID.String()}, nil
}

// findShop resolves a path ID to a shop. A malformed ID behaves the
// same as an unknown one.
func (s *shopService) findShop(ctx context.Context, shopID string) (*entity.Shop, error) {
	id, err := uuid.Parse(shopID)
	if err != nil {
		return nil, fmt.Errorf("shop %s not found", shopID)
	}

	shop, err := s.repo.Shop.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find shop", zap.Error(err), zap.String("shop_id", shopID))
		return nil, fmt.Errorf("failed to find shop")
	}
	if shop == nil {
		return nil, fmt.Errorf("shop %s not found", shopID)
	}

	return shop, nil
}
