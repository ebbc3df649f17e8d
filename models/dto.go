package models

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type UpdateCartItemRequest struct {
	Op string `json:"op" binding:"required,oneof=increment decrement"`
}

type AdviceRequest struct {
	Query string `json:"query" binding:"required"`
}
