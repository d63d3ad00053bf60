package response

import (
	"github.com/shopspring/decimal"
)

type Offer struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	OfferPrice    decimal.Decimal `json:"offerPrice"`
	Category      string          `json:"category"`
	Eco           bool            `json:"eco"`
	ValidTill     string          `json:"validTill"`
}

type Store struct {
	ID          int32    `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	DistanceKm  float64  `json:"distanceKm"`
	Rating      float64  `json:"rating"`
	Phone       string   `json:"phone"`
	OpenTill    string   `json:"openTill"`
	Offers      []Offer  `json:"offers"`
	Specialties []string `json:"specialties"`
	Image       string   `json:"image"`
}

// StoreLinks are the deep links a client hands to the device. Launching them
// is the device's concern.
type StoreLinks struct {
	MapURL        string `json:"mapUrl"`
	DirectionsURL string `json:"directionsUrl"`
	TelURL        string `json:"telUrl"`
	ShareText     string `json:"shareText"`
}
