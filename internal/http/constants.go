package http

const (
	KEY_HEADER_CONTENT_TYPE       = "Content-Type"
	KEY_HEADER_REQUEST_ID         = "X-Request-Id"
	VALUE_HEADER_APPLICATION_JSON = "application/json"
	VALUE_HEADER_EVENT_STREAM     = "text/event-stream"
)

const (
	CATALOG_BASE_URL = "http://catalog-service:8080/products"
	CART_BASE_URL    = "http://cart-service:8080/carts"
	BUDGET_BASE_URL  = "http://budget-service:8080/budgets"
	OFFER_BASE_URL   = "http://offer-service:8080/offers"
)
