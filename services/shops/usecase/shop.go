package usecase

import (
	"context"
	"strings"

	"github.com/piresc/dokanbaki/internal/pkg/logger"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/piresc/dokanbaki/services/shops"
)

// CreateShop opens a new shop for ownerID within the plan's shop quota
func (u *ShopUC) CreateShop(ctx context.Context, ownerID string, req *models.ShopRequest) (*models.Shop, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, shops.ErrShopNameRequired
	}

	owner, err := u.ownerRepo.GetUserByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, shops.ErrOwnerNotFound
	}

	if limit, unlimited := u.quota(owner.SubscriptionPlan); !unlimited {
		existing, err := u.shopRepo.ListShopsByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if len(existing) >= limit {
			return nil, shops.ErrShopLimitReached
		}
	}

	shop := &models.Shop{
		OwnerID:   ownerID,
		Name:      name,
		Mobile:    strings.TrimSpace(req.Mobile),
		Address:   strings.TrimSpace(req.Address),
		Image:     strings.TrimSpace(req.Image),
		OwnerName: strings.TrimSpace(req.OwnerName),
	}
	if err := u.shopRepo.CreateShop(ctx, shop); err != nil {
		return nil, err
	}

	logger.Info("Shop created",
		logger.String("shop_id", shop.ID),
		logger.String("owner_id", ownerID))
	return shop, nil
}

// ListShops returns the owner's shops
func (u *ShopUC) ListShops(ctx context.Context, ownerID string) ([]models.Shop, error) {
	return u.shopRepo.ListShopsByOwner(ctx, ownerID)
}

// GetShop returns one of the owner's shops
func (u *ShopUC) GetShop(ctx context.Context, ownerID, shopID string) (*models.Shop, error) {
	return u.AuthorizeShop(ctx, ownerID, shopID)
}

// AuthorizeShop checks that shopID exists and belongs to ownerID
func (u *ShopUC) AuthorizeShop(ctx context.Context, ownerID, shopID string) (*models.Shop, error) {
	shop, err := u.shopRepo.GetShopByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, shops.ErrShopNotFound
	}
	if shop.OwnerID != ownerID {
		return nil, shops.ErrShopForbidden
	}
	return shop, nil
}

// UpdateShop replaces the editable shop details
func (u *ShopUC) UpdateShop(ctx context.Context, ownerID, shopID string, req *models.ShopRequest) (*models.Shop, error) {
	if _, err := u.AuthorizeShop(ctx, ownerID, shopID); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, shops.ErrShopNameRequired
	}

	shop, err := u.shopRepo.UpdateShop(ctx, shopID, map[string]interface{}{
		"name":      name,
		"mobile":    strings.TrimSpace(req.Mobile),
		"address":   strings.TrimSpace(req.Address),
		"image":     strings.TrimSpace(req.Image),
		"ownerName": strings.TrimSpace(req.OwnerName),
	})
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, shops.ErrShopNotFound
	}
	return shop, nil
}
