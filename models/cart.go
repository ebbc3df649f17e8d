package models

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (i CartItem) Subtotal() int {
	return i.Product.Price * i.Quantity
}
