package request

type AddCartItem struct {
	ProductID int32  `json:"productId" validate:"required,gt=0"`
	Quantity  int32  `json:"quantity"  validate:"required,gt=0"`
	AddedBy   string `json:"addedBy"`
}

// Quantity floor semantics live in the service: negative is rejected and
// zero removes the item, so no validator tag here.
type UpdateCartItemQuantity struct {
	Quantity int32 `json:"quantity"`
}
