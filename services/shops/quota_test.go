package shops

import (
	"testing"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestPlanShopLimits(t *testing.T) {
	tests := []struct {
		plan          models.Plan
		wantLimit     int
		wantUnlimited bool
	}{
		{models.PlanFree, 1, false},
		{models.PlanPro, 3, false},
		{models.PlanPlatinum, 10, false},
		{models.PlanTitanium, 0, true},
		{models.Plan("GOLD"), 1, false},
		{models.Plan(""), 1, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.plan), func(t *testing.T) {
			limit, unlimited := PlanShopLimits(tt.plan)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantUnlimited, unlimited)
		})
	}
}

func TestQuotaFromConfig(t *testing.T) {
	_, unlimited := QuotaFromConfig(models.QuotaConfig{})(models.PlanFree)
	assert.True(t, unlimited)

	limit, unlimited := QuotaFromConfig(models.QuotaConfig{ShopLimitEnabled: true})(models.PlanFree)
	assert.False(t, unlimited)
	assert.Equal(t, 1, limit)
}
