package response

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            int32           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"originalPrice"`
	CarbonScore   float64         `json:"carbonScore"`
	CarbonLabel   string          `json:"carbonLabel"`
	Rating        float64         `json:"rating"`
	Category      string          `json:"category"`
	EcoFeatures   []string        `json:"ecoFeatures"`
	Keywords      []string        `json:"keywords"`
	Image         string          `json:"image"`
	InStock       bool            `json:"inStock"`
}

// CarbonLabel buckets a carbon score into the badge shown next to a product.
func CarbonLabel(score float64) string {
	if score <= 0.3 {
		return "low"
	}
	if score <= 0.6 {
		return "medium"
	}
	return "high"
}

type SampleSearch struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
	Budget      string `json:"budget"`
}
