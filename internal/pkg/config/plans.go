package config

import (
	"fmt"
	"strings"

	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/spf13/viper"
)

// DefaultPlanCatalog returns the built-in plan prices in BDT
func DefaultPlanCatalog() models.PlanCatalog {
	return models.PlanCatalog{
		models.PlanPro:      {Name: "Dokan Pro", MonthlyPrice: 100, YearlyPrice: 1000, SMSQuota: 10},
		models.PlanPlatinum: {Name: "Dokan Platinum", MonthlyPrice: 200, YearlyPrice: 2000, SMSQuota: 50},
		models.PlanTitanium: {Name: "Dokan Titanium", MonthlyPrice: 500, YearlyPrice: 5000, SMSQuota: 200},
		models.PlanSMSPack:  {Name: "1000 SMS Pack", Price: 1000, SMSQuota: 1000},
	}
}

// LoadPlanCatalog reads plan overrides from a YAML file on top of the defaults.
// An empty path returns the defaults.
func LoadPlanCatalog(path string) (models.PlanCatalog, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	for plan, spec := range DefaultPlanCatalog() {
		key := "plans." + strings.ToLower(string(plan))
		v.SetDefault(key+".name", spec.Name)
		v.SetDefault(key+".monthly_price", spec.MonthlyPrice)
		v.SetDefault(key+".yearly_price", spec.YearlyPrice)
		v.SetDefault(key+".price", spec.Price)
		v.SetDefault(key+".sms_quota", spec.SMSQuota)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read plan catalog: %w", err)
		}
	}

	var raw struct {
		Plans map[string]models.PlanSpec `mapstructure:"plans"`
	}
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode plan catalog: %w", err)
	}

	catalog := make(models.PlanCatalog, len(raw.Plans))
	for name, spec := range raw.Plans {
		plan := models.Plan(strings.ToUpper(name))
		if plan == models.PlanFree {
			return nil, fmt.Errorf("plan %s cannot be priced", plan)
		}
		catalog[plan] = spec
	}

	return catalog, nil
}
