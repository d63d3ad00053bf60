package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BudgetState struct {
	MonthlyBudget   decimal.Decimal `json:"monthlyBudget"`
	CurrentSpent    decimal.Decimal `json:"currentSpent"`
	Remaining       decimal.Decimal `json:"remaining"`
	SpentPercentage float64         `json:"spentPercentage"`
	Status          string          `json:"status"`
}

type EcoImpact struct {
	Co2Saved       float64         `json:"co2Saved"`
	MoneySaved     decimal.Decimal `json:"moneySaved"`
	PlasticAvoided int             `json:"plasticAvoided"`
	TreesPlanted   int             `json:"treesPlanted"`
}

type Transaction struct {
	ID      uuid.UUID       `json:"id"`
	Item    string          `json:"item"`
	Amount  decimal.Decimal `json:"amount"`
	AddedAt time.Time       `json:"addedAt"`
	Eco     bool            `json:"eco"`
}

type Summary struct {
	Budget             BudgetState   `json:"budget"`
	EcoImpact          EcoImpact     `json:"ecoImpact"`
	RecentTransactions []Transaction `json:"recentTransactions"`
}

type Budget struct {
	CartCode      string          `json:"cartCode"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}
