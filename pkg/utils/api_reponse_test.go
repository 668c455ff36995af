package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSuccessResponse(t *testing.T) {
	resp := CreateSuccessResponse(map[string]int{"succeeded": 3})

	assert.True(t, resp.Success)
	assert.Equal(t, map[string]int{"succeeded": 3}, resp.Data)
	require.NotNil(t, resp.Meta)
	assert.False(t, resp.Meta.Timestamp.IsZero())
}

func TestCreateErrorResponse(t *testing.T) {
	resp := CreateErrorResponse("NOT_FOUND", "Customer not found")

	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "Customer not found", resp.Error.Message)
}
