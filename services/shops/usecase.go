package shops

import (
	"context"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/dokanbaki/services/shops ShopUC

// ShopUC represents the shop management usecase interface
type ShopUC interface {
	CreateShop(ctx context.Context, ownerID string, req *models.ShopRequest) (*models.Shop, error)
	ListShops(ctx context.Context, ownerID string) ([]models.Shop, error)
	GetShop(ctx context.Context, ownerID, shopID string) (*models.Shop, error)
	UpdateShop(ctx context.Context, ownerID, shopID string, req *models.ShopRequest) (*models.Shop, error)

	// AuthorizeShop returns the shop when ownerID owns it
	AuthorizeShop(ctx context.Context, ownerID, shopID string) (*models.Shop, error)
}
