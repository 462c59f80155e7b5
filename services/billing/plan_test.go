package billing

import (
	"testing"
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/config"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestPlanUpdate(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	catalog := config.DefaultPlanCatalog()
	user := &models.User{ID: "U1", SMSBalance: 20, SubscriptionPlan: models.PlanFree}

	tests := []struct {
		name    string
		payment models.Payment
		want    map[string]interface{}
	}{
		{
			name:    "monthly pro",
			payment: models.Payment{Plan: models.PlanPro, Amount: 100},
			want: map[string]interface{}{
				"subscriptionPlan":   "PRO",
				"subscriptionExpiry": "2024-01-31T00:00:00.000Z",
			},
		},
		{
			name:    "yearly platinum",
			payment: models.Payment{Plan: models.PlanPlatinum, Amount: 2000},
			want: map[string]interface{}{
				"subscriptionPlan":   "PLATINUM",
				"subscriptionExpiry": "2024-12-31T00:00:00.000Z",
			},
		},
		{
			name:    "just under yearly stays monthly",
			payment: models.Payment{Plan: models.PlanTitanium, Amount: 4999},
			want: map[string]interface{}{
				"subscriptionPlan":   "TITANIUM",
				"subscriptionExpiry": "2024-01-31T00:00:00.000Z",
			},
		},
		{
			name:    "sms pack tops up balance",
			payment: models.Payment{Plan: models.PlanSMSPack, Amount: 1000},
			want:    map[string]interface{}{"smsBalance": 1020},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlanUpdate(user, &tt.payment, catalog, now))
		})
	}
}
