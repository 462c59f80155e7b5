package models

// Shop is a ledger book owned by a user
type Shop struct {
	ID        string `json:"id,omitempty"`
	OwnerID   string `json:"ownerId"`
	Name      string `json:"name"`
	Mobile    string `json:"mobile,omitempty"`
	Address   string `json:"address,omitempty"`
	Image     string `json:"image,omitempty"`
	OwnerName string `json:"ownerName,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// ShopRequest represents the shop create/update form
type ShopRequest struct {
	Name      string `json:"name"`
	Mobile    string `json:"mobile"`
	Address   string `json:"address"`
	Image     string `json:"image"`
	OwnerName string `json:"ownerName"`
}
