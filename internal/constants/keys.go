package constants

const (
	KEY_APP_NAME            = "app"
	KEY_BODY                = "body"
	KEY_BUDGET              = "budget"
	KEY_CACHE_KEY           = "cacheKey"
	KEY_CART                = "cart"
	KEY_CART_CODE           = "cartCode"
	KEY_CART_ITEM           = "cartItem"
	KEY_CART_ITEM_ID        = "cartItemId"
	KEY_CHANNEL             = "channel"
	KEY_CONFIG              = "config"
	KEY_EVENT               = "event"
	KEY_HEADER              = "header"
	KEY_ITEMS_COUNT         = "itemsCount"
	KEY_LANGUAGE            = "language"
	KEY_MAX_BUDGET          = "maxBudget"
	KEY_MONTHLY_BUDGET      = "monthlyBudget"
	KEY_PATH_VALUES         = "pathValues"
	KEY_PROCESS             = "process"
	KEY_PRODUCT             = "product"
	KEY_PRODUCT_ID          = "productId"
	KEY_QUANTITY            = "quantity"
	KEY_QUERY               = "query"
	KEY_RADIUS              = "radius"
	KEY_REQUEST             = "request"
	KEY_REQUEST_HOST        = "host"
	KEY_REQUEST_ID          = "requestId"
	KEY_REQUEST_IP          = "requesterIP"
	KEY_REQUEST_METHOD      = "requestMethod"
	KEY_REQUEST_URI         = "requestURI"
	KEY_REQUEST_URL         = "requestURL"
	KEY_RESULT_COUNT        = "resultCount"
	KEY_SPAN_ID             = "spanId"
	KEY_STORE_ID            = "storeId"
	KEY_TAG                 = "tag"
	KEY_TRACE_ID            = "traceId"
)
