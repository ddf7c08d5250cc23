package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuantityEntry(t *testing.T) {
	tests := []struct {
		raw       string
		mode      QuantityMode
		wantDelta int
		wantOK    bool
	}{
		{"5", QuantityAdd, 5, true},
		{" 12 ", QuantityAdd, 12, true},
		{"3", QuantityRemove, -3, true},
		{"0", QuantityAdd, 0, false},
		{"-2", QuantityAdd, 0, false},
		{"", QuantityAdd, 0, false},
		{"abc", QuantityRemove, 0, false},
		{"2.5", QuantityAdd, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			delta, ok := ParseQuantityEntry(tt.raw, tt.mode)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantDelta, delta)
		})
	}
}
