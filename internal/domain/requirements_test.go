package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequirements_Number(t *testing.T) {
	tests := []struct {
		name          string
		requirements  Requirements
		expectedValue float64
		expectedFound bool
	}{
		{"Missing key", Requirements{}, 0, false},
		{"Nil requirements", nil, 0, false},
		{"Explicit null", Requirements{"wallet_count": nil}, 0, false},
		{"Fractional number", Requirements{"wallet_count": 2.5}, 2.5, true},
		{"Plain int", Requirements{"wallet_count": 3}, 3, true},
		{"json.Number", Requirements{"wallet_count": json.Number("4.5")}, 4.5, true},
		{"Word", Requirements{"wallet_count": "five"}, 0, false},
		{"Numeric string", Requirements{"wallet_count": "5"}, 0, false},
		{"Unsupported value", Requirements{"wallet_count": []int{1}}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := tt.requirements.Number("wallet_count")
			assert.Equal(t, tt.expectedValue, value)
			assert.Equal(t, tt.expectedFound, found)
			assert.Equal(t, tt.requirements["wallet_count"] != nil, tt.requirements.Has("wallet_count"))
		})
	}
}
