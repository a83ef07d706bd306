package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(0))
	assert.False(t, IsSuccess(1))
	assert.False(t, IsSuccess(127))
}

func TestGetErrorMessage(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{0, "Success"},
		{1, "Package installation failed"},
		{127, "R executable not found"},
		{137, "Terminated by signal 9"},
		{42, "Unknown error"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, GetErrorMessage(test.code), "code %d", test.code)
	}
}
