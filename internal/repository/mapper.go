package repository

import (
	"github.com/shopspring/decimal"

	cartResponse "github.com/madhuraks/ecobazaar/cart/pkg/response"
	catalogResponse "github.com/madhuraks/ecobazaar/catalog/pkg/response"
)

func (p Product) Response() catalogResponse.Product {
	return catalogResponse.Product{
		ID:            p.ID,
		Name:          p.Name,
		Price:         decimal.NewFromBigInt(p.Price.Int, p.Price.Exp),
		OriginalPrice: decimal.NewFromBigInt(p.OriginalPrice.Int, p.OriginalPrice.Exp),
		CarbonScore:   p.CarbonScore,
		CarbonLabel:   catalogResponse.CarbonLabel(p.CarbonScore),
		Rating:        p.Rating,
		Category:      p.Category,
		EcoFeatures:   p.EcoFeatures,
		Keywords:      p.Keywords,
		Image:         p.Image,
		InStock:       p.InStock,
	}
}

func (i GroupCartItem) Response() cartResponse.CartItem {
	return cartResponse.CartItem{
		ID:            i.ID,
		CartCode:      i.CartCode,
		ProductID:     i.ProductID,
		Name:          i.Name,
		Price:         decimal.NewFromBigInt(i.Price.Int, i.Price.Exp),
		OriginalPrice: decimal.NewFromBigInt(i.OriginalPrice.Int, i.OriginalPrice.Exp),
		Quantity:      i.Quantity,
		Category:      i.Category,
		Eco:           i.Eco,
		CarbonScore:   i.CarbonScore,
		AddedBy:       i.AddedBy,
		AddedAt:       i.AddedAt.Time,
	}
}
