package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateVerificationCode(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateVerificationCode()
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateVerificationCode_Varies(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		seen[GenerateVerificationCode()] = true
	}
	assert.Greater(t, len(seen), 1)
}
