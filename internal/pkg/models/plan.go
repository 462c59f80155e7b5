package models

// PlanSpec is one entry of the plan catalog
type PlanSpec struct {
	Name         string  `mapstructure:"name" json:"name"`
	MonthlyPrice float64 `mapstructure:"monthly_price" json:"monthlyPrice"`
	YearlyPrice  float64 `mapstructure:"yearly_price" json:"yearlyPrice"`
	// Price is the one-off price of non-recurring packs
	Price    float64 `mapstructure:"price" json:"price,omitempty"`
	SMSQuota int     `mapstructure:"sms_quota" json:"smsQuota"`
}

// PlanCatalog maps purchasable plans to their prices
type PlanCatalog map[Plan]PlanSpec
