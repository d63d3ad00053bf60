package constants

const (
	APP_CATALOG_SERVICE = "catalog-service"
	APP_CART_SERVICE    = "cart-service"
	APP_BUDGET_SERVICE  = "budget-service"
	APP_OFFER_SERVICE   = "offer-service"
	APP_MAIN_ECOBAZAAR  = "main ecobazaar"
)
