package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/madhuraks/ecobazaar/cart/pkg/response"
)

func TestSummarize(t *testing.T) {
	items := []response.CartItem{
		{Price: decimal.NewFromInt(40), Quantity: 2, CarbonScore: 0.5},
		{Price: decimal.NewFromInt(25), Quantity: 1, CarbonScore: 1.2},
	}

	actual := Summarize(items, 4)

	assert.EqualValues(t, int32(3), actual.TotalItems)
	assert.True(t, decimal.NewFromInt(105).Equal(actual.TotalAmount), "total amount should be 105 got %s", actual.TotalAmount)
	assert.InDelta(t, 2.2, actual.TotalCarbon, 0.001)
	assert.EqualValues(t, 4, actual.MemberCount)
	assert.True(
		t,
		decimal.NewFromFloat(26.25).Equal(actual.AmountPerPerson),
		"amount per person should be 26.25 got %s",
		actual.AmountPerPerson,
	)
}

func TestSummarizeRoundsPerPerson(t *testing.T) {
	items := []response.CartItem{{Price: decimal.NewFromInt(100), Quantity: 1}}

	actual := Summarize(items, 3)

	assert.True(
		t,
		decimal.NewFromFloat(33.33).Equal(actual.AmountPerPerson),
		"amount per person should round to 2 places got %s",
		actual.AmountPerPerson,
	)
}

func TestSummarizeEmptyCart(t *testing.T) {
	actual := Summarize(nil, 4)

	assert.Zero(t, actual.TotalItems)
	assert.True(t, decimal.Zero.Equal(actual.TotalAmount))
	assert.Zero(t, actual.TotalCarbon)
	assert.True(t, decimal.Zero.Equal(actual.AmountPerPerson))
}

func TestSummarizeZeroMembers(t *testing.T) {
	items := []response.CartItem{{Price: decimal.NewFromInt(10), Quantity: 1}}

	actual := Summarize(items, 0)

	assert.True(t, decimal.Zero.Equal(actual.AmountPerPerson), "per person split should be zero without members")
}
