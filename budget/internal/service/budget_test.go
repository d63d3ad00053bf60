package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/madhuraks/ecobazaar/budget/internal/calc"
	cartResponse "github.com/madhuraks/ecobazaar/cart/pkg/response"
	inErrors "github.com/madhuraks/ecobazaar/internal/errors"
)

type memorySettingsStore struct {
	budgets map[string]decimal.Decimal
}

func newMemorySettingsStore() *memorySettingsStore {
	return &memorySettingsStore{budgets: map[string]decimal.Decimal{}}
}

func (s *memorySettingsStore) MonthlyBudget(
	c context.Context,
	cartCode string,
) (decimal.Decimal, error) {
	budget, ok := s.budgets[cartCode]
	if !ok {
		return calc.DefaultMonthlyBudget, nil
	}
	return budget, nil
}

func (s *memorySettingsStore) SetMonthlyBudget(
	c context.Context,
	cartCode string,
	budget decimal.Decimal,
) error {
	s.budgets[cartCode] = budget
	return nil
}

func testContext() context.Context {
	c := context.Background()
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339Nano}).
		WithContext(c)
}

func newCartServer(t *testing.T, carts map[string]cartResponse.Cart) *httptest.Server {
	return httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := r.URL.Path[len("/"):]
			cart, ok := carts[code]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			err := json.NewEncoder(w).Encode(map[string]interface{}{
				"status":     "success",
				"statusCode": http.StatusOK,
				"message":    "found cart",
				"data":       map[string]interface{}{"cart": cart},
			})
			if err != nil {
				t.Errorf("failed encoding cart response with error: %s", err)
			}
		}),
	)
}

func TestFindBudgetDefault(t *testing.T) {
	budgetService := NewBudgetService(newMemorySettingsStore(), "http://cart")

	actual, err := budgetService.FindBudget(testContext(), "ABC123")

	assert.NoError(t, err)
	assert.EqualValues(t, "ABC123", actual.CartCode)
	assert.True(t, calc.DefaultMonthlyBudget.Equal(actual.MonthlyBudget))
}

func TestSetBudget(t *testing.T) {
	settings := newMemorySettingsStore()
	budgetService := NewBudgetService(settings, "http://cart")
	c := testContext()

	actual, err := budgetService.SetBudget(c, "ABC123", decimal.NewFromInt(5000))
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000).Equal(actual.MonthlyBudget))

	found, err := budgetService.FindBudget(c, "ABC123")
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(5000).Equal(found.MonthlyBudget))
}

func TestSetBudgetInvalid(t *testing.T) {
	budgetService := NewBudgetService(newMemorySettingsStore(), "http://cart")
	c := testContext()

	_, err := budgetService.SetBudget(c, "ABC123", decimal.Zero)
	assert.ErrorIs(t, err, inErrors.ErrInvalidBudget)

	_, err = budgetService.SetBudget(c, "ABC123", decimal.NewFromInt(-100))
	assert.ErrorIs(t, err, inErrors.ErrInvalidBudget)
}

func TestSummary(t *testing.T) {
	items := []cartResponse.CartItem{
		{
			ID:            uuid.New(),
			Name:          "Organic Neem Soap",
			Price:         decimal.NewFromInt(85),
			OriginalPrice: decimal.NewFromInt(120),
			Quantity:      2,
			CarbonScore:   0.2,
			Eco:           true,
			AddedAt:       time.Now(),
		},
		{
			ID:            uuid.New(),
			Name:          "Organic Cotton T-Shirt",
			Price:         decimal.NewFromInt(250),
			OriginalPrice: decimal.NewFromInt(400),
			Quantity:      1,
			CarbonScore:   0.6,
			Eco:           false,
			AddedAt:       time.Now(),
		},
	}
	cartServer := newCartServer(t, map[string]cartResponse.Cart{
		"ABC123": {Code: "ABC123", CartItems: items},
	})
	defer cartServer.Close()

	settings := newMemorySettingsStore()
	budgetService := NewBudgetService(settings, cartServer.URL)
	c := testContext()

	_, err := budgetService.SetBudget(c, "ABC123", decimal.NewFromInt(500))
	assert.NoError(t, err)

	actual, err := budgetService.Summary(c, "ABC123")
	assert.NoError(t, err)

	// spent 85*2 + 250 = 420 of 500, 84 percent
	assert.True(
		t,
		decimal.NewFromInt(420).Equal(actual.Budget.CurrentSpent),
		"spent should be 420 got %s",
		actual.Budget.CurrentSpent,
	)
	assert.InDelta(t, 84.0, actual.Budget.SpentPercentage, 0.001)
	assert.EqualValues(t, calc.StatusApproachingLimit, actual.Budget.Status)

	// co2 (10-0.2)*2 + (10-0.6)*1, money (120-85)*2 + (400-250)*1
	assert.InDelta(t, 29.0, actual.EcoImpact.Co2Saved, 0.001)
	assert.True(
		t,
		decimal.NewFromInt(220).Equal(actual.EcoImpact.MoneySaved),
		"money saved should be 220 got %s",
		actual.EcoImpact.MoneySaved,
	)
	assert.EqualValues(t, 2, actual.EcoImpact.PlasticAvoided)

	assert.Len(t, actual.RecentTransactions, 2)
	assert.EqualValues(t, items[0].ID, actual.RecentTransactions[0].ID)
	assert.True(t, actual.RecentTransactions[0].Eco)
}

func TestSummaryCartNotFound(t *testing.T) {
	cartServer := newCartServer(t, map[string]cartResponse.Cart{})
	defer cartServer.Close()

	budgetService := NewBudgetService(newMemorySettingsStore(), cartServer.URL)

	_, err := budgetService.Summary(testContext(), "ZZZZZZ")
	assert.ErrorIs(t, err, inErrors.ErrCartNotFound)
}
