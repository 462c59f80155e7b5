package billing

import (
	"time"

	"github.com/piresc/dokanbaki/internal/pkg/models"
)

// Billing cycles
const (
	BillingMonthly = "monthly"
	BillingYearly  = "yearly"
	// BillingOnce is the cycle of one-off packs
	BillingOnce = "once"
)

const (
	monthlyPeriod = 30 * 24 * time.Hour
	yearlyPeriod  = 365 * 24 * time.Hour
)

// PlanUpdate returns the account fields changed by an approved payment. An
// SMS pack tops up the SMS balance; any other plan becomes the subscription,
// for a year when the amount covers the yearly price and a month otherwise.
func PlanUpdate(user *models.User, payment *models.Payment, catalog models.PlanCatalog, now time.Time) map[string]interface{} {
	spec := catalog[payment.Plan]

	if payment.Plan == models.PlanSMSPack {
		return map[string]interface{}{
			"smsBalance": user.SMSBalance + spec.SMSQuota,
		}
	}

	period := monthlyPeriod
	if spec.YearlyPrice > 0 && payment.Amount >= spec.YearlyPrice {
		period = yearlyPeriod
	}
	return map[string]interface{}{
		"subscriptionPlan":   string(payment.Plan),
		"subscriptionExpiry": models.FormatTime(now.Add(period)),
	}
}
