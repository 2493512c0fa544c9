package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		token  string
		name   string
		length string
	}{
		{"varchar(255)", "VARCHAR", "255"},
		{"DECIMAL(10,2)", "DECIMAL", "10,2"},
		{"bigint", "BIGINT", ""},
		{"datetime", "DATETIME", ""},
		{"TIMESTAMP (6)", "TIMESTAMP", "6"},
		{"tinyint(1)", "TINYINT", "1"},
	}
	for _, tt := range tests {
		info := normalizeType(tt.token)
		assert.Equal(t, tt.name, info.Name, tt.token)
		assert.Equal(t, tt.length, info.Length, tt.token)
		assert.Equal(t, tt.token, info.Original, tt.token)
	}
}

func TestNormalizeType_FallbackKeepsWholeToken(t *testing.T) {
	info := normalizeType("4e-strange")

	assert.Equal(t, "4E-STRANGE", info.Name)
	assert.Empty(t, info.Length)
	assert.Equal(t, "4e-strange", info.Original)
}
