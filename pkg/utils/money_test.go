package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input   string
		cents   int64
		wantErr bool
	}{
		{"4.50", 450, false},
		{"4.5", 450, false},
		{"4", 400, false},
		{"0.05", 5, false},
		{"12.99", 1299, false},
		{"", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
		{"-3", 0, true},
		{"-0.50", 0, true},
		{"-0", 0, true},
		{"4.999", 0, true},
		{"abc", 0, true},
		{"4.x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cents, err := ParsePrice(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cents, cents)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "4.50", FormatPrice(450))
	assert.Equal(t, "0.05", FormatPrice(5))
	assert.Equal(t, "12.00", FormatPrice(1200))
}
