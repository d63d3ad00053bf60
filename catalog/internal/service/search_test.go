package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/madhuraks/ecobazaar/catalog/pkg/response"
)

func testCatalog() []response.Product {
	return []response.Product{
		{
			ID:          1,
			Name:        "Herbal Soap Bar",
			Price:       decimal.NewFromInt(8),
			CarbonScore: 0.2,
			Keywords:    []string{"साबुन", "soap", "sabun"},
		},
		{
			ID:          2,
			Name:        "Premium Soap Set",
			Price:       decimal.NewFromInt(45),
			CarbonScore: 0.7,
			Keywords:    []string{"soap", "साबुन"},
		},
		{
			ID:          3,
			Name:        "Organic Rice 1kg",
			Price:       decimal.NewFromInt(60),
			CarbonScore: 0.2,
			Keywords:    []string{"चावल", "rice", "akki"},
		},
		{
			ID:          4,
			Name:        "Bamboo Toothbrush",
			Price:       decimal.NewFromInt(25),
			CarbonScore: 0.1,
			Keywords:    []string{"toothbrush", "ब्रश"},
		},
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		maxBudget   *decimal.Decimal
		expectedIds []int32
	}{
		{
			name:        "given query containing a keyword should match that product",
			query:       "दस रुपये के अंदर साबुन",
			expectedIds: []int32{1, 2},
		},
		{
			name:        "given query that is a substring of a keyword should match",
			query:       "tooth",
			expectedIds: []int32{4},
		},
		{
			name:        "given query matching the product name should match",
			query:       "organic rice",
			expectedIds: []int32{3},
		},
		{
			name:        "given query in uppercase should match case insensitively",
			query:       "SOAP",
			expectedIds: []int32{1, 2},
		},
		{
			name:        "given empty query should return the whole catalog",
			query:       "",
			expectedIds: []int32{4, 1, 3, 2},
		},
		{
			name:        "given budget should drop products above it",
			query:       "soap",
			maxBudget:   newDecimal(t, "10"),
			expectedIds: []int32{1},
		},
		{
			name:        "given budget equal to price should keep the product",
			query:       "soap",
			maxBudget:   newDecimal(t, "45"),
			expectedIds: []int32{1, 2},
		},
		{
			name:        "given query matching nothing should return empty",
			query:       "laptop",
			expectedIds: []int32{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual := Search(testCatalog(), tt.query, tt.maxBudget)

			actualIds := []int32{}
			for _, product := range actual {
				actualIds = append(actualIds, product.ID)
			}
			assert.EqualValues(t, tt.expectedIds, actualIds, "result order should be equal to expected")
		})
	}
}

func TestSearchOrdersByCarbonThenPrice(t *testing.T) {
	products := []response.Product{
		{ID: 1, Name: "a", Price: decimal.NewFromInt(30), CarbonScore: 0.5},
		{ID: 2, Name: "b", Price: decimal.NewFromInt(10), CarbonScore: 0.5},
		{ID: 3, Name: "c", Price: decimal.NewFromInt(99), CarbonScore: 0.1},
	}

	actual := Search(products, "", nil)

	assert.Len(t, actual, 3)
	assert.EqualValues(t, int32(3), actual[0].ID, "lowest carbon score should come first")
	assert.EqualValues(t, int32(2), actual[1].ID, "cheaper product should win the carbon tie")
	assert.EqualValues(t, int32(1), actual[2].ID)
}

func TestSearchTruncatesResults(t *testing.T) {
	products := make([]response.Product, 0, 20)
	for i := int32(1); i <= 20; i++ {
		products = append(products, response.Product{
			ID:    i,
			Name:  "bag",
			Price: decimal.NewFromInt32(i),
		})
	}

	actual := Search(products, "bag", nil)

	assert.Len(t, actual, maxSearchResults)
}

func newDecimal(t *testing.T, s string) *decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("failed parsing decimal %s with error: %s", s, err)
	}
	return &d
}
