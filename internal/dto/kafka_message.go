package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type OrderCompletedEvent struct {
	OrderID string  `json:"order_id"`
	UserID  string  `json:"user_id"`
	Total   float64 `json:"total"`
	Date    string  `json:"date"`
}

type UserUpdateEvent struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
}
