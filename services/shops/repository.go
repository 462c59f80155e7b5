package shops

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// ShopRepo represents the shop storage. GetShopByID returns nil, nil for an unknown id.
type ShopRepo interface {
	CreateShop(ctx context.Context, shop *models.Shop) error
	GetShopByID(ctx context.Context, id string) (*models.Shop, error)
	ListShopsByOwner(ctx context.Context, ownerID string) ([]models.Shop, error)
	UpdateShop(ctx context.Context, id string, fields map[string]interface{}) (*models.Shop, error)
}

// OwnerRepo reads the shop owner's account for quota checks
type OwnerRepo interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}
