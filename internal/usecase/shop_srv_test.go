package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"coffee-directory/internal/data/entity"
	"coffee-directory/internal/data/repository"
	"coffee-directory/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func seededShop(store *memStore, name string) *entity.Shop {
	shop := &entity.Shop{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name: name,
	}
	store.shops[shop.ID] = shop
	return shop
}

func seededLocation(store *memStore, shopID uuid.UUID, city, state string) *entity.Location {
	location := &entity.Location{
		ID:      uuid.New(),
		ShopID:  shopID,
		Address: "1 Main St",
		City:    strPtr(city),
		State:   strPtr(state),
	}
	store.locations = append(store.locations, location)
	return location
}

func TestCreateShop(t *testing.T) {
	ctx := context.Background()

	t.Run("creates shop", func(t *testing.T) {
		store := newMemStore()
		svc := NewShopService(newTestRepository(store), testLogger())

		resp, err := svc.CreateShop(ctx, &request.ShopRequest{
			Name:        "Qahwah House",
			Description: strPtr("Yemeni coffee"),
		})
		require.NoError(t, err)

		id, err := uuid.Parse(resp.ShopID)
		require.NoError(t, err)
		require.NotNil(t, store.shops[id])
		assert.Equal(t, "Qahwah House", store.shops[id].Name)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		store := newMemStore()
		svc := NewShopService(newTestRepository(store), testLogger())

		_, err := svc.CreateShop(ctx, &request.ShopRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.Empty(t, store.shops)
	})
}

func TestGetShop(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		store := newMemStore()
		svc := NewShopService(newTestRepository(store), testLogger())

		_, err := svc.GetShop(ctx, uuid.New().String())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		store := newMemStore()
		svc := NewShopService(newTestRepository(store), testLogger())

		_, err := svc.GetShop(ctx, "42")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("returns shop with children", func(t *testing.T) {
		store := newMemStore()
		shop := seededShop(store, "NY Caffeine")
		seededLocation(store, shop.ID, "New York", "NY")
		store.items = append(store.items, &entity.MenuItem{
			ID:         uuid.New(),
			ShopID:     shop.ID,
			Name:       "Latte",
			PriceCents: 450,
		})
		svc := NewShopService(newTestRepository(store), testLogger())

		detail, err := svc.GetShop(ctx, shop.ID.String())
		require.NoError(t, err)
		assert.Equal(t, "NY Caffeine", detail.Name)
		require.Len(t, detail.Locations, 1)
		assert.Equal(t, "1 Main St", detail.Locations[0].Address)
		require.Len(t, detail.MenuItems, 1)
		assert.Equal(t, "4.50", detail.MenuItems[0].Price)
		assert.Empty(t, detail.Reviews)
	})
}

func TestUpdateShop(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update keeps absent fields", func(t *testing.T) {
		store := newMemStore()
		shop := seededShop(store, "Old Name")
		shop.Description = strPtr("old description")
		shop.Phone = strPtr("555-0100")
		svc := NewShopService(newTestRepository(store), testLogger())

		err := svc.UpdateShop(ctx, shop.ID.String(), &request.ShopUpdateRequest{
			Name: strPtr("New Name"),
		})
		require.NoError(t, err)

		updated := store.shops[shop.ID]
		assert.Equal(t, "New Name", updated.Name)
		require.NotNil(t, updated.Description)
		assert.Equal(t, "old description", *updated.Description)
		require.NotNil(t, updated.Phone)
		assert.Equal(t, "555-0100", *updated.Phone)
	})

	t.Run("unknown shop is not found", func(t *testing.T) {
		store := newMemStore()
		svc := NewShopService(newTestRepository(store), testLogger())

		err := svc.UpdateShop(ctx, uuid.New().String(), &request.ShopUpdateRequest{
			Name: strPtr("New Name"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestListShops(t *testing.T) {
	ctx := context.Background()

	store := newMemStore()
	austinShop := seededShop(store, "Radio Coffee")
	seededLocation(store, austinShop.ID, "Austin", "TX")
	nyShop := seededShop(store, "NY Caffeine")
	seededLocation(store, nyShop.ID, "New York", "NY")
	noLocationShop := seededShop(store, "Ghost Cafe")

	svc := NewShopService(newTestRepository(store), testLogger())

	t.Run("no filter returns all", func(t *testing.T) {
		shops, err := svc.ListShops(ctx, repository.ShopFilter{})
		require.NoError(t, err)
		assert.Len(t, shops, 3)
	})

	t.Run("city filter is case-insensitive and excludes shops without matching location", func(t *testing.T) {
		shops, err := svc.ListShops(ctx, repository.ShopFilter{City: strPtr("austin")})
		require.NoError(t, err)
		require.Len(t, shops, 1)
		assert.Equal(t, austinShop.ID.String(), shops[0].ShopID)
		_ = noLocationShop
	})

	t.Run("name filter is substring match", func(t *testing.T) {
		shops, err := svc.ListShops(ctx, repository.ShopFilter{Name: strPtr("caffeine")})
		require.NoError(t, err)
		require.Len(t, shops, 1)
		assert.Equal(t, "NY Caffeine", shops[0].Name)
	})

	t.Run("filters are AND-combined", func(t *testing.T) {
		shops, err := svc.ListShops(ctx, repository.ShopFilter{
			Name: strPtr("radio"),
			City: strPtr("new york"),
		})
		require.NoError(t, err)
		assert.Empty(t, shops)
	})
}

func TestDeleteShopCascades(t *testing.T) {
	ctx := context.Background()

	store := newMemStore()
	shop := seededShop(store, "Doomed Cafe")
	seededLocation(store, shop.ID, "Austin", "TX")
	store.items = append(store.items, &entity.MenuItem{
		ID:         uuid.New(),
		ShopID:     shop.ID,
		Name:       "Drip",
		PriceCents: 300,
	})
	store.reviews = append(store.reviews, &entity.Review{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		ShopID:     shop.ID,
		UserID:     uuid.New(),
		Rating:     5,
	})

	svc := NewShopService(newTestRepository(store), testLogger())

	require.NoError(t, svc.DeleteShop(ctx, shop.ID.String()))

	assert.Empty(t, store.shops)
	assert.Empty(t, store.locations)
	assert.Empty(t, store.items)
	assert.Empty(t, store.reviews)

	err := svc.DeleteShop(ctx, shop.ID.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestAddLocation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing address rejected", func(t *testing.T) {
		store := newMemStore()
		shop := seededShop(store, "NY Caffeine")
		svc := NewShopService(newTestRepository(store), testLogger())

		_, err := svc.AddLocation(ctx, shop.ID.String(), &request.LocationRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
		assert.Empty(t, store.locations)
	})

	t.Run("unknown shop is not found", func(t *testing.T) {
		store := newMemStore()
		svc := NewShopService(newTestRepository(store), testLogger())

		_, err := svc.AddLocation(ctx, uuid.New().String(), &request.LocationRequest{Address: "1 Main St"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("adds location", func(t *testing.T) {
		store := newMemStore()
		shop := seededShop(store, "NY Caffeine")
		svc := NewShopService(newTestRepository(store), testLogger())

		resp, err := svc.AddLocation(ctx, shop.ID.String(), &request.LocationRequest{
			Address: "5 Broadway",
			City:    strPtr("New York"),
		})
		require.NoError(t, err)
		require.Len(t, store.locations, 1)
		assert.Equal(t, resp.LocationID, store.locations[0].ID.String())
		assert.Equal(t, shop.ID, store.locations[0].ShopID)
	})
}

func TestAddMenuItem(t *testing.T) {
	ctx := context.Background()

	t.Run("adds item with parsed price", func(t *testing.T) {
		store := newMemStore()
		shop := seededShop(store, "NY Caffeine")
		svc := NewShopService(newTestRepository(store), testLogger())

		resp, err := svc.AddMenuItem(ctx, shop.ID.String(), &request.MenuItemRequest{
			Name:     "Cortado",
			Price:    json.Number("4.5"),
			Category: strPtr("coffee"),
		})
		require.NoError(t, err)
		require.Len(t, store.items, 1)
		assert.Equal(t, resp.ItemID, store.items[0].ID.String())
		assert.Equal(t, int64(450), store.items[0].PriceCents)
		require.NotNil(t, store.items[0].Category)
		assert.Equal(t, entity.CategoryCoffee, *store.items[0].Category)
	})

	t.Run("bad price rejected", func(t *testing.T) {
		store := newMemStore()
		shop := seededShop(store, "NY Caffeine")
		svc := NewShopService(newTestRepository(store), testLogger())

		for _, price := range []string{"", "-3", "-0.50", "abc", "0", "1.999"} {
			_, err := svc.AddMenuItem(ctx, shop.ID.String(), &request.MenuItemRequest{
				Name:  "Cortado",
				Price: json.Number(price),
			})
			require.Error(t, err, "price %q", price)
			assert.Contains(t, err.Error(), "validation failed")
		}
		assert.Empty(t, store.items)
	})

	t.Run("bad category rejected", func(t *testing.T) {
		store := newMemStore()
		shop := seededShop(store, "NY Caffeine")
		svc := NewShopService(newTestRepository(store), testLogger())

		_, err := svc.AddMenuItem(ctx, shop.ID.String(), &request.MenuItemRequest{
			Name:     "Cortado",
			Price:    json.Number("4.50"),
			Category: strPtr("sushi"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("unknown shop is not found", func(t *testing.T) {
		store := newMemStore()
		svc := NewShopService(newTestRepository(store), testLogger())

		_, err := svc.AddMenuItem(ctx, uuid.New().String(), &request.MenuItemRequest{
			Name:  "Cortado",
			Price: json.Number("4.50"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
