package calc

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	cartResponse "github.com/madhuraks/ecobazaar/cart/pkg/response"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name            string
		spentPercentage float64
		expected        string
	}{
		{name: "given zero spent should be on track", spentPercentage: 0, expected: StatusOnTrack},
		{name: "given exactly 70 percent should be on track", spentPercentage: 70, expected: StatusOnTrack},
		{name: "given just above 70 percent should be approaching limit", spentPercentage: 70.01, expected: StatusApproachingLimit},
		{name: "given exactly 90 percent should be approaching limit", spentPercentage: 90, expected: StatusApproachingLimit},
		{name: "given just above 90 percent should be over budget", spentPercentage: 90.01, expected: StatusOverBudget},
		{name: "given more than 100 percent should be over budget", spentPercentage: 130, expected: StatusOverBudget},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualValues(t, tt.expected, Status(tt.spentPercentage))
		})
	}
}

func TestBudgetStateOf(t *testing.T) {
	items := []cartResponse.CartItem{
		{Price: decimal.NewFromInt(200), Quantity: 3},
		{Price: decimal.NewFromInt(150), Quantity: 2},
	}

	actual := BudgetStateOf(items, decimal.NewFromInt(3000))

	assert.True(t, decimal.NewFromInt(900).Equal(actual.CurrentSpent), "spent should be 900 got %s", actual.CurrentSpent)
	assert.True(t, decimal.NewFromInt(2100).Equal(actual.Remaining), "remaining should be 2100 got %s", actual.Remaining)
	assert.InDelta(t, 30.0, actual.SpentPercentage, 0.001)
	assert.EqualValues(t, StatusOnTrack, actual.Status)
}

func TestBudgetStateOfZeroBudget(t *testing.T) {
	items := []cartResponse.CartItem{{Price: decimal.NewFromInt(100), Quantity: 1}}

	actual := BudgetStateOf(items, decimal.Zero)

	assert.Zero(t, actual.SpentPercentage, "spent percentage should be zero when budget is not positive")
	assert.EqualValues(t, StatusOnTrack, actual.Status)
}

func TestEcoImpactOf(t *testing.T) {
	items := []cartResponse.CartItem{
		{Price: decimal.NewFromInt(40), OriginalPrice: decimal.NewFromInt(50), Quantity: 2, CarbonScore: 0.5, Eco: true},
		{Price: decimal.NewFromInt(30), OriginalPrice: decimal.Zero, Quantity: 1, CarbonScore: 2.0, Eco: false},
		{Price: decimal.NewFromInt(10), OriginalPrice: decimal.NewFromInt(12), Quantity: 3, CarbonScore: 0.2, Eco: true},
	}

	actual := EcoImpactOf(items)

	// (10-0.5)*2 + (10-2)*1 + (10-0.2)*3 = 19 + 8 + 29.4
	assert.InDelta(t, 56.4, actual.Co2Saved, 0.001)
	// (50-40)*2 + (12-10)*3, the zero original price row contributes nothing
	assert.True(t, decimal.NewFromInt(26).Equal(actual.MoneySaved), "money saved should be 26 got %s", actual.MoneySaved)
	assert.EqualValues(t, 4, actual.PlasticAvoided)
	assert.EqualValues(t, 0, actual.TreesPlanted)
}

func TestEcoImpactOfTreesPlanted(t *testing.T) {
	items := make([]cartResponse.CartItem, 11)
	for i := range items {
		items[i] = cartResponse.CartItem{Price: decimal.NewFromInt(1), Quantity: 1}
	}

	actual := EcoImpactOf(items)

	assert.EqualValues(t, 2, actual.TreesPlanted, "11 items should plant 2 trees")
}

func TestRecentTransactions(t *testing.T) {
	now := time.Now()
	items := make([]cartResponse.CartItem, 6)
	for i := range items {
		items[i] = cartResponse.CartItem{
			ID:       uuid.New(),
			Name:     "item",
			Price:    decimal.NewFromInt(int64(i + 1)),
			Quantity: 2,
			AddedAt:  now.Add(-time.Duration(i) * time.Minute),
		}
	}

	actual := RecentTransactions(items)

	assert.Len(t, actual, 4, "only the most recent rows should be returned")
	assert.EqualValues(t, items[0].ID, actual[0].ID)
	assert.True(t, decimal.NewFromInt(2).Equal(actual[0].Amount), "amount should be price times quantity got %s", actual[0].Amount)
}

func TestRecentTransactionsFewerThanLimit(t *testing.T) {
	items := []cartResponse.CartItem{{ID: uuid.New(), Price: decimal.NewFromInt(5), Quantity: 1}}

	actual := RecentTransactions(items)

	assert.Len(t, actual, 1)
}

func TestSummarizeEmptyCart(t *testing.T) {
	actual := Summarize(nil, DefaultMonthlyBudget)

	assert.True(t, DefaultMonthlyBudget.Equal(actual.Budget.MonthlyBudget))
	assert.True(t, decimal.Zero.Equal(actual.Budget.CurrentSpent))
	assert.EqualValues(t, StatusOnTrack, actual.Budget.Status)
	assert.Zero(t, actual.EcoImpact.Co2Saved)
	assert.Empty(t, actual.RecentTransactions)
}
