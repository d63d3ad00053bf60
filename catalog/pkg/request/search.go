package request

import (
	"github.com/shopspring/decimal"
)

type SearchProducts struct {
	Query     string           `json:"query"`
	Language  string           `json:"language"  validate:"omitempty,oneof=en hi kn ta te ml"`
	MaxBudget *decimal.Decimal `json:"maxBudget"`
}
