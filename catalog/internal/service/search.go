package service

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/madhuraks/ecobazaar/catalog/pkg/response"
)

const maxSearchResults = 12

// Search filters the catalog by a free-form query and an optional budget cap.
// Matching is symmetric on keywords so a long spoken query like
// "दस रुपये के अंदर साबुन" still hits the keyword "साबुन", and a short query
// still hits longer keywords and product names. Results are ordered by
// carbon score then price, catalog order preserved on full ties.
func Search(
	products []response.Product,
	query string,
	maxBudget *decimal.Decimal,
) []response.Product {
	normalized := strings.ToLower(strings.TrimSpace(query))

	matched := []response.Product{}
	for _, product := range products {
		if !matchesQuery(product, normalized) {
			continue
		}
		if maxBudget != nil && product.Price.GreaterThan(*maxBudget) {
			continue
		}
		matched = append(matched, product)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CarbonScore != matched[j].CarbonScore {
			return matched[i].CarbonScore < matched[j].CarbonScore
		}
		return matched[i].Price.LessThan(matched[j].Price)
	})

	if len(matched) > maxSearchResults {
		matched = matched[:maxSearchResults]
	}
	return matched
}

func matchesQuery(product response.Product, query string) bool {
	if query == "" {
		return true
	}
	for _, keyword := range product.Keywords {
		k := strings.ToLower(keyword)
		if strings.Contains(query, k) || strings.Contains(k, query) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(product.Name), query)
}
