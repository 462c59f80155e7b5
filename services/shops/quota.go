package shops

import "github.com/piresc/dokanbaki/internal/pkg/models"

// ShopQuota reports how many shops a plan may own
type ShopQuota func(plan models.Plan) (limit int, unlimited bool)

// UnlimitedShops places no limit on any plan
func UnlimitedShops(models.Plan) (int, bool) {
	return 0, true
}

var planShopLimits = map[models.Plan]int{
	models.PlanFree:     1,
	models.PlanPro:      3,
	models.PlanPlatinum: 10,
}

// PlanShopLimits applies the published plan limits. TITANIUM is unlimited;
// unknown plans get the FREE limit.
func PlanShopLimits(plan models.Plan) (int, bool) {
	if plan == models.PlanTitanium {
		return 0, true
	}
	if limit, ok := planShopLimits[plan]; ok {
		return limit, false
	}
	return planShopLimits[models.PlanFree], false
}

// QuotaFromConfig selects the quota policy
func QuotaFromConfig(cfg models.QuotaConfig) ShopQuota {
	if cfg.ShopLimitEnabled {
		return PlanShopLimits
	}
	return UnlimitedShops
}
