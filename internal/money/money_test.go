package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		places int32
		want   uint64
	}{
		{"12.34", 2, 1234},
		{"12", 2, 1200},
		{"0", 2, 0},
		{"0.01", 2, 1},
		{"1000", 0, 1000},
		{"550.00", 2, 55000},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in, tt.places)
		require.NoError(t, err, "Parse(%q, %d)", tt.in, tt.places)
		assert.Equal(t, tt.want, got, "Parse(%q, %d)", tt.in, tt.places)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		places int32
	}{
		{"garbage", "abc", 2},
		{"negative", "-1.00", 2},
		{"excess precision", "1.234", 2},
		{"fraction at zero places", "1.5", 0},
		{"too large", "99999999999999999999", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.in, tt.places)
			assert.Error(t, err)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "12.34", Format(1234, 2))
	assert.Equal(t, "0.00", Format(0, 2))
	assert.Equal(t, "1000", Format(1000, 0))
	assert.Equal(t, "0.05", Format(5, 2))
}

func TestRoundTrip(t *testing.T) {
	for _, units := range []uint64{0, 1, 99, 100, 55000, 123456789} {
		got, err := Parse(Format(units, 2), 2)
		require.NoError(t, err)
		assert.Equal(t, units, got)
	}
}
