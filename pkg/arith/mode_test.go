package arith

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOverflowMode(t *testing.T) {
	tests := []struct {
		input    string
		expected OverflowMode
		wantErr  bool
	}{
		{"", OverflowWrap, false},
		{"wrap", OverflowWrap, false},
		{"Checked", OverflowChecked, false},
		{" saturate ", OverflowSaturate, false},
		{"panic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOverflowMode(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownOverflowMode))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestAddWithMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     OverflowMode
		expected int32
		wantErr  error
	}{
		{"wrap", OverflowWrap, math.MinInt32, nil},
		{"empty mode wraps", "", math.MinInt32, nil},
		{"checked", OverflowChecked, 0, ErrOverflow},
		{"saturate", OverflowSaturate, math.MaxInt32, nil},
		{"unknown", OverflowMode("bogus"), 0, ErrUnknownOverflowMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddWithMode(tt.mode, math.MaxInt32, 1)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
