package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCarbonLabel(t *testing.T) {
	assert.EqualValues(t, "low", CarbonLabel(0))
	assert.EqualValues(t, "low", CarbonLabel(0.3))
	assert.EqualValues(t, "medium", CarbonLabel(0.31))
	assert.EqualValues(t, "medium", CarbonLabel(0.6))
	assert.EqualValues(t, "high", CarbonLabel(0.61))
	assert.EqualValues(t, "high", CarbonLabel(2))
}
