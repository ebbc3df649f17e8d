package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type SessionResponse struct {
	Token string `json:"token"`
}

type CartItemResponse struct {
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	Subtotal      int     `json:"subtotal"`
	SubtotalLabel string  `json:"subtotal_label"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	Total      int                `json:"total"`
	TotalLabel string             `json:"total_label"`
}

type CheckoutResponse struct {
	Step     CheckoutStep `json:"step"`
	CartOpen bool         `json:"cart_open"`
}
