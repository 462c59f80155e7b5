package repository

import (
	"context"
	"fmt"

	"github.com/piresc/dokanbaki/internal/pkg/jsondb"
	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// ShopRepo implements shops.ShopRepo over the record store
type ShopRepo struct {
	store jsondb.Store
}

// NewShopRepo creates a new shop repository
func NewShopRepo(store jsondb.Store) *ShopRepo {
	return &ShopRepo{store: store}
}

// CreateShop stores a new shop and fills in its id and createdAt
func (r *ShopRepo) CreateShop(ctx context.Context, shop *models.Shop) error {
	rec, err := jsondb.Encode(shop)
	if err != nil {
		return err
	}
	stored, err := r.store.Insert(ctx, jsondb.Shops, rec)
	if err != nil {
		return fmt.Errorf("failed to create shop: %w", err)
	}
	return jsondb.Decode(stored, shop)
}

// GetShopByID retrieves a shop by id
func (r *ShopRepo) GetShopByID(ctx context.Context, id string) (*models.Shop, error) {
	rec, err := r.store.FindOne(ctx, jsondb.Shops, jsondb.Matcher{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to get shop: %w", err)
	}
	return decodeShop(rec)
}

// ListShopsByOwner returns the owner's shops in creation order
func (r *ShopRepo) ListShopsByOwner(ctx context.Context, ownerID string) ([]models.Shop, error) {
	records, err := r.store.Find(ctx, jsondb.Shops, jsondb.Matcher{"ownerId": ownerID})
	if err != nil {
		return nil, fmt.Errorf("failed to list shops: %w", err)
	}
	return jsondb.DecodeAll[models.Shop](records)
}

// UpdateShop merges fields into the shop. It returns nil, nil for an unknown id.
func (r *ShopRepo) UpdateShop(ctx context.Context, id string, fields map[string]interface{}) (*models.Shop, error) {
	rec, err := r.store.Update(ctx, jsondb.Shops, id, jsondb.Record(fields))
	if err != nil {
		return nil, fmt.Errorf("failed to update shop: %w", err)
	}
	return decodeShop(rec)
}

func decodeShop(rec jsondb.Record) (*models.Shop, error) {
	if rec == nil {
		return nil, nil
	}
	var shop models.Shop
	if err := jsondb.Decode(rec, &shop); err != nil {
		return nil, err
	}
	return &shop, nil
}
