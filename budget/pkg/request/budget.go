package request

import (
	"github.com/shopspring/decimal"
)

type SetBudget struct {
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
}
