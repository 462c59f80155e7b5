package models

// NotificationType categorizes shop notifications
type NotificationType string

const (
	NotificationDueAlert NotificationType = "DUE_ALERT"
	NotificationSystem   NotificationType = "SYSTEM"
)

// Notification is a message shown to a shop owner
type Notification struct {
	ID      string           `json:"id,omitempty"`
	ShopID  string           `json:"shopId"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Date    string           `json:"date"`
	IsRead  bool             `json:"isRead"`
}

// Channel is the delivery medium of a customer message
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// Message is an outbound customer message
type Message struct {
	Channel Channel `json:"channel"`
	To      string  `json:"to"`
	Body    string  `json:"body"`
}

// OverdueReport summarizes one overdue check run
type OverdueReport struct {
	Checked int    `json:"checked"`
	Sent    int    `json:"sent"`
	Date    string `json:"date"`
}
