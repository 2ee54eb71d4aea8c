package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPad(t *testing.T) {
	assert.Empty(t, Pad(-1))
	assert.Empty(t, Pad(0))
	assert.Equal(t, "   ", Pad(3))
}

func TestSpreadRow(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
		width int
		want  string
	}{
		{"fits", "Ann", "1h", 10, "Ann     1h"},
		{"exact", "Ann to You", "1h", 13, "Ann to You 1h"},
		{"truncates left", "Ann to You", "1h", 8, "Ann … 1h"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SpreadRow(tt.left, tt.right, tt.width))
		})
	}
}
