package models

// Plan is a subscription tier
type Plan string

const (
	PlanFree     Plan = "FREE"
	PlanPro      Plan = "PRO"
	PlanPlatinum Plan = "PLATINUM"
	PlanTitanium Plan = "TITANIUM"
	// PlanSMSPack is purchasable but never assigned as a user's tier
	PlanSMSPack Plan = "SMS_PACK"
)

// IsTier reports whether p can be held as a user's subscription plan
func (p Plan) IsTier() bool {
	switch p {
	case PlanFree, PlanPro, PlanPlatinum, PlanTitanium:
		return true
	}
	return false
}

// User represents a shop owner account
type User struct {
	ID                 string `json:"id,omitempty"`
	Name               string `json:"name"`
	Mobile             string `json:"mobile"`
	Email              string `json:"email,omitempty"`
	Password           string `json:"password,omitempty"`
	Image              string `json:"image,omitempty"`
	Address            string `json:"address,omitempty"`
	SubscriptionPlan   Plan   `json:"subscriptionPlan"`
	SubscriptionExpiry string `json:"subscriptionExpiry,omitempty"`
	SMSBalance         int    `json:"smsBalance"`
	CreatedAt          string `json:"createdAt,omitempty"`
}

// Public returns a copy of the user without the password hash
func (u User) Public() User {
	u.Password = ""
	return u
}

// RegisterRequest represents a registration form
type RegisterRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login form. Identifier is a mobile number or an email.
type LoginRequest struct {
	Identifier string `json:"mobile"`
	Password   string `json:"password"`
}

// ProfileUpdate holds the editable user profile fields
type ProfileUpdate struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Image   string `json:"image"`
}

// UserStats is the per-user row on the admin console
type UserStats struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Mobile             string   `json:"mobile"`
	SubscriptionPlan   Plan     `json:"subscriptionPlan"`
	SubscriptionExpiry string   `json:"subscriptionExpiry,omitempty"`
	ShopCount          int      `json:"shopCount"`
	ShopNames          []string `json:"shopNames"`
	TotalCustomers     int      `json:"totalCustomers"`
	TotalDue           float64  `json:"totalDue"`
}
