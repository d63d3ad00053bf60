// Package calc recomputes the budget and eco-impact figures from a full cart
// snapshot on every call. There is no incremental path, a snapshot is small
// enough that a full pass is always correct and cheap.
package calc

import (
	"github.com/shopspring/decimal"

	budgetResponse "github.com/madhuraks/ecobazaar/budget/pkg/response"
	cartResponse "github.com/madhuraks/ecobazaar/cart/pkg/response"
)

const (
	StatusOnTrack          = "on_track"
	StatusApproachingLimit = "approaching_limit"
	StatusOverBudget       = "over_budget"

	recentTransactionCount = 4
	co2BaselinePerItem     = 10.0
	plasticPerEcoItem      = 2
	itemsPerTreePlanted    = 5
)

var DefaultMonthlyBudget = decimal.NewFromInt(3000)

func Status(spentPercentage float64) string {
	if spentPercentage <= 70 {
		return StatusOnTrack
	}
	if spentPercentage <= 90 {
		return StatusApproachingLimit
	}
	return StatusOverBudget
}

func BudgetStateOf(
	items []cartResponse.CartItem,
	monthlyBudget decimal.Decimal,
) budgetResponse.BudgetState {
	spent := decimal.Zero
	for _, item := range items {
		spent = spent.Add(item.Price.Mul(decimal.NewFromInt32(item.Quantity)))
	}

	spentPercentage := 0.0
	if monthlyBudget.IsPositive() {
		spentPercentage, _ = spent.
			Div(monthlyBudget).
			Mul(decimal.NewFromInt(100)).
			Float64()
	}

	return budgetResponse.BudgetState{
		MonthlyBudget:   monthlyBudget,
		CurrentSpent:    spent,
		Remaining:       monthlyBudget.Sub(spent),
		SpentPercentage: spentPercentage,
		Status:          Status(spentPercentage),
	}
}

func EcoImpactOf(items []cartResponse.CartItem) budgetResponse.EcoImpact {
	co2Saved := 0.0
	moneySaved := decimal.Zero
	ecoCount := 0
	for _, item := range items {
		quantity := float64(item.Quantity)
		co2Saved += (co2BaselinePerItem - item.CarbonScore) * quantity
		if item.OriginalPrice.IsPositive() {
			moneySaved = moneySaved.Add(
				item.OriginalPrice.Sub(item.Price).Mul(decimal.NewFromInt32(item.Quantity)),
			)
		}
		if item.Eco {
			ecoCount++
		}
	}

	return budgetResponse.EcoImpact{
		Co2Saved:       co2Saved,
		MoneySaved:     moneySaved,
		PlasticAvoided: ecoCount * plasticPerEcoItem,
		TreesPlanted:   len(items) / itemsPerTreePlanted,
	}
}

// RecentTransactions takes the first rows of the recency-ordered item list.
func RecentTransactions(items []cartResponse.CartItem) []budgetResponse.Transaction {
	count := len(items)
	if count > recentTransactionCount {
		count = recentTransactionCount
	}
	transactions := make([]budgetResponse.Transaction, count)
	for i := 0; i < count; i++ {
		item := items[i]
		transactions[i] = budgetResponse.Transaction{
			ID:      item.ID,
			Item:    item.Name,
			Amount:  item.Price.Mul(decimal.NewFromInt32(item.Quantity)),
			AddedAt: item.AddedAt,
			Eco:     item.Eco,
		}
	}
	return transactions
}

func Summarize(
	items []cartResponse.CartItem,
	monthlyBudget decimal.Decimal,
) budgetResponse.Summary {
	return budgetResponse.Summary{
		Budget:             BudgetStateOf(items, monthlyBudget),
		EcoImpact:          EcoImpactOf(items),
		RecentTransactions: RecentTransactions(items),
	}
}
