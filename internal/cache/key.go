package cache

const (
	KEY_CARTS          = "carts:%s"
	KEY_BUDGET_MONTHLY = "budget:monthly:%s"

	CHANNEL_CART_EVENTS = "cart:events:%s"
)
