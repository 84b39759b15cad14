package model

// CartItem is a product snapshot plus a quantity. At most one item per
// product id exists in a cart; adding an already-present product increments
// the quantity instead of appending.
type CartItem struct {
	Product
	Quantity int `json:"quantity"` // >= 1
}
