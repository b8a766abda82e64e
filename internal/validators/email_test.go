package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	valid := []string{
		"maria@example.com",
		"maria.silva@sub.example.com.br",
		"maria+agenda@example.com",
	}
	for _, email := range valid {
		assert.True(t, IsEmailValid(email), email)
	}

	invalid := []string{
		"",
		"maria",
		"maria@",
		"@example.com",
		"maria@localhost",
		"Maria Silva <maria@example.com>",
		"maria @example.com",
	}
	for _, email := range invalid {
		assert.False(t, IsEmailValid(email), email)
	}
}
