package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateState(t *testing.T) {
	first, err := GenerateState()
	require.NoError(t, err)
	second, err := GenerateState()
	require.NoError(t, err)

	assert.Len(t, first, stateLength)
	assert.Regexp(t, "^[A-Za-z0-9]+$", first)
	assert.NotEqual(t, first, second)
}
