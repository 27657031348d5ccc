package usecase

import (
	"context"
	"fmt"
	"strings"

	"coffee-directory/internal/data/entity"
	"coffee-directory/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// memStore backs the in-memory repository fakes used by the service tests.
// Cascade behavior mirrors the SQL repositories.
type memStore struct {
	users     map[uuid.UUID]*entity.User
	shops     map[uuid.UUID]*entity.Shop
	locations []*entity.Location
	items     []*entity.MenuItem
	reviews   []*entity.Review
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[uuid.UUID]*entity.User),
		shops: make(map[uuid.UUID]*entity.Shop),
	}
}

func newTestRepository(store *memStore) *repository.Repository {
	return &repository.Repository{
		User:     &fakeUserRepo{store: store},
		Shop:     &fakeShopRepo{store: store},
		Location: &fakeLocationRepo{store: store},
		MenuItem: &fakeMenuItemRepo{store: store},
		Review:   &fakeReviewRepo{store: store},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}

// ---------- users ----------

type fakeUserRepo struct {
	store *memStore
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.store.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.store.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range f.store.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.store.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.store.users)), nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.store.users[id]; !ok {
		return fmt.Errorf("user %s not found", id.String())
	}

	kept := f.store.reviews[:0]
	for _, r := range f.store.reviews {
		if r.UserID != id {
			kept = append(kept, r)
		}
	}
	f.store.reviews = kept

	delete(f.store.users, id)
	return nil
}

// ---------- shops ----------

type fakeShopRepo struct {
	store *memStore
}

func (f *fakeShopRepo) Create(_ context.Context, shop *entity.Shop) error {
	f.store.shops[shop.ID] = shop
	return nil
}

func (f *fakeShopRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Shop, error) {
	return f.store.shops[id], nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (f *fakeShopRepo) FindAll(_ context.Context, filter repository.ShopFilter) ([]*entity.Shop, error) {
	var out []*entity.Shop
	for _, shop := range f.store.shops {
		if filter.Name != nil && !containsFold(shop.Name, *filter.Name) {
			continue
		}

		if filter.City != nil || filter.State != nil {
			matched := false
			for _, l := range f.store.locations {
				if l.ShopID != shop.ID {
					continue
				}
				if filter.City != nil && (l.City == nil || !containsFold(*l.City, *filter.City)) {
					continue
				}
				if filter.State != nil && (l.State == nil || !containsFold(*l.State, *filter.State)) {
					continue
				}
				matched = true
				break
			}
			if !matched {
				continue
			}
		}

		out = append(out, shop)
	}
	return out, nil
}

func (f *fakeShopRepo) Update(_ context.Context, shop *entity.Shop) error {
	if _, ok := f.store.shops[shop.ID]; !ok {
		return fmt.Errorf("shop %s not found", shop.ID.String())
	}
	f.store.shops[shop.ID] = shop
	return nil
}

func (f *fakeShopRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.store.shops)), nil
}

func (f *fakeShopRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.store.shops[id]; !ok {
		return fmt.Errorf("shop %s not found", id.String())
	}

	keptReviews := f.store.reviews[:0]
	for _, r := range f.store.reviews {
		if r.ShopID != id {
			keptReviews = append(keptReviews, r)
		}
	}
	f.store.reviews = keptReviews

	keptItems := f.store.items[:0]
	for _, it := range f.store.items {
		if it.ShopID != id {
			keptItems = append(keptItems, it)
		}
	}
	f.store.items = keptItems

	keptLocations := f.store.locations[:0]
	for _, l := range f.store.locations {
		if l.ShopID != id {
			keptLocations = append(keptLocations, l)
		}
	}
	f.store.locations = keptLocations

	delete(f.store.shops, id)
	return nil
}

// ---------- locations ----------

type fakeLocationRepo struct {
	store *memStore
}

func (f *fakeLocationRepo) Create(_ context.Context, location *entity.Location) error {
	f.store.locations = append(f.store.locations, location)
	return nil
}

func (f *fakeLocationRepo) FindByShopID(_ context.Context, shopID uuid.UUID) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range f.store.locations {
		if l.ShopID == shopID {
			out = append(out, l)
		}
	}
	return out, nil
}

// ---------- menu items ----------

type fakeMenuItemRepo struct {
	store *memStore
}

func (f *fakeMenuItemRepo) Create(_ context.Context, item *entity.MenuItem) error {
	f.store.items = append(f.store.items, item)
	return nil
}

func (f *fakeMenuItemRepo) FindByShopID(_ context.Context, shopID uuid.UUID) ([]*entity.MenuItem, error) {
	var out []*entity.MenuItem
	for _, it := range f.store.items {
		if it.ShopID == shopID {
			out = append(out, it)
		}
	}
	return out, nil
}

// ---------- reviews ----------

type fakeReviewRepo struct {
	store *memStore
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.store.reviews = append(f.store.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByShopID(_ context.Context, shopID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.store.reviews {
		if r.ShopID == shopID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, r := range f.store.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
