package models

// TransactionType distinguishes dues from payments
type TransactionType string

const (
	TransactionDue     TransactionType = "DUE"
	TransactionPayment TransactionType = "PAYMENT"
)

// Transaction is one ledger entry. CustomerName identifies the customer within a shop.
type Transaction struct {
	ID           string          `json:"id,omitempty"`
	ShopID       string          `json:"shopId"`
	CustomerName string          `json:"customerName"`
	MobileNumber string          `json:"mobileNumber"`
	Amount       float64         `json:"amount"`
	Type         TransactionType `json:"type"`
	Date         string          `json:"date"`
	DueDate      string          `json:"dueDate,omitempty"`
	ProductName  string          `json:"productName,omitempty"`
	RemindedOn   string          `json:"remindedOn,omitempty"` // date of the last overdue reminder
	CreatedAt    string          `json:"createdAt,omitempty"`
}

// EntryRequest represents a due or payment form
type EntryRequest struct {
	CustomerName string `json:"customerName"`
	MobileNumber string `json:"mobileNumber"`
	Amount       string `json:"amount"`
	Date         string `json:"date"`
	DueDate      string `json:"dueDate"`
	ProductName  string `json:"productName"`
}

// CustomerDue is the derived balance of one customer in one shop
type CustomerDue struct {
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	TotalDue float64 `json:"totalDue"`
	LastDate string  `json:"lastDate,omitempty"`
}

// CustomerLedger is a customer's balance with its transaction history
type CustomerLedger struct {
	Customer     CustomerDue   `json:"customer"`
	Transactions []Transaction `json:"transactions"`
}

// ShopSummary is the dashboard headline for a shop
type ShopSummary struct {
	CustomerCount   int     `json:"customerCount"`
	TotalReceivable float64 `json:"totalReceivable"`
	TotalAdvance    float64 `json:"totalAdvance"`
	TodayDue        float64 `json:"todayDue"`
	TodayCollection float64 `json:"todayCollection"`
}
