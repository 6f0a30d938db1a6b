package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "Zero", value: 0, expected: 0},
		{name: "Resíduo de soma", value: 0.1 + 0.2, expected: 0.3},
		{name: "Arredonda para cima", value: 10.005, expected: 10.01},
		{name: "Negativo", value: -3.333, expected: -3.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoundCents(tt.value))
		})
	}
}
