package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCartCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := NewCartCode()

		assert.NoError(t, err)
		assert.Len(t, code, cartCodeLength)
		for _, r := range code {
			assert.True(
				t,
				strings.ContainsRune(cartCodeAlphabet, r),
				"code %s should only contain characters from the alphabet",
				code,
			)
		}
		seen[code] = true
	}
	assert.Greater(t, len(seen), 1, "codes should not all be identical")
}
