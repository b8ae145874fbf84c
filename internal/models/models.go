package models

import "time"

type Cart struct {
	SessionID  string     `json:"session_id"`
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalPrice float64    `json:"total_price"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ItemID          string    `json:"item_id"`
	Label           string    `json:"label"`
	NormalizedLabel string    `json:"normalized_label"`
	Barcode         string    `json:"barcode,omitempty"`
	ProductName     string    `json:"product_name"`
	Price           float64   `json:"price"`
	Quantity        int       `json:"quantity"`
	Confidence      float64   `json:"confidence"`
	ImageURL        string    `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Action          string    `json:"action"`
	SoundTrigger    string    `json:"sound_trigger,omitempty"`
}

const (
	CartStatusActive    = "active"
	CartStatusCompleted = "completed"
)

const (
	ActionAdd    = "add"
	ActionRemove = "remove"
)

const (
	SoundIncrease = "increase"
	SoundDecrease = "decrease"
)

type CreateCartRequest struct {
	SessionID string `json:"session_id,omitempty"`
}
