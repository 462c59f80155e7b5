package usecase

import (
	"github.com/piresc/dokanbaki/services/shops"
)

// ShopUC implements shops.ShopUC
type ShopUC struct {
	shopRepo  shops.ShopRepo
	ownerRepo shops.OwnerRepo
	quota     shops.ShopQuota
}

// NewShopUC creates a new shop usecase instance. A nil quota means unlimited.
func NewShopUC(
	shopRepo shops.ShopRepo,
	ownerRepo shops.OwnerRepo,
	quota shops.ShopQuota,
) *ShopUC {
	if quota == nil {
		quota = shops.UnlimitedShops
	}
	return &ShopUC{
		shopRepo:  shopRepo,
		ownerRepo: ownerRepo,
		quota:     quota,
	}
}
