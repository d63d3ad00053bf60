package service

import (
	"github.com/shopspring/decimal"

	"github.com/madhuraks/ecobazaar/cart/pkg/response"
)

func Summarize(items []response.CartItem, memberCount int) response.Summary {
	totalItems := int32(0)
	totalAmount := decimal.Zero
	totalCarbon := 0.0
	for _, item := range items {
		quantity := decimal.NewFromInt32(item.Quantity)
		totalItems += item.Quantity
		totalAmount = totalAmount.Add(item.Price.Mul(quantity))
		totalCarbon += item.CarbonScore * float64(item.Quantity)
	}

	amountPerPerson := decimal.Zero
	if memberCount > 0 {
		amountPerPerson = totalAmount.DivRound(decimal.NewFromInt(int64(memberCount)), 2)
	}

	return response.Summary{
		TotalItems:      totalItems,
		TotalAmount:     totalAmount,
		TotalCarbon:     totalCarbon,
		MemberCount:     memberCount,
		AmountPerPerson: amountPerPerson,
	}
}
