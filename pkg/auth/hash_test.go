package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewHashService(t *testing.T) {
	tests := []struct {
		name         string
		cost         int
		expectedCost int
	}{
		{name: "Minimum cost kept", cost: bcrypt.MinCost, expectedCost: bcrypt.MinCost},
		{name: "Custom cost kept", cost: 6, expectedCost: 6},
		{name: "Zero falls back to default", cost: 0, expectedCost: bcrypt.DefaultCost},
		{name: "Too high falls back to default", cost: bcrypt.MaxCost + 1, expectedCost: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCost, NewHashService(tt.cost).cost)
		})
	}
}

func TestHashPassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)

	tests := []struct {
		name        string
		password    string
		expectError bool
	}{
		{name: "Child account password", password: "piggy-bank-42"},
		{name: "Empty password", password: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashed, err := hashService.HashPassword(tt.password)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, hashed)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tt.password, hashed)
			assert.Equal(t, bcrypt.MinCost, hashService.Cost(hashed))
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashService := NewHashService(bcrypt.MinCost)
	hashed, err := hashService.HashPassword("piggy-bank-42")
	require.NoError(t, err)

	tests := []struct {
		name        string
		hashed      string
		password    string
		expectMatch bool
	}{
		{name: "Matching password", hashed: hashed, password: "piggy-bank-42", expectMatch: true},
		{name: "Wrong password", hashed: hashed, password: "piggy-bank-43"},
		{name: "Missing hash", hashed: "", password: "piggy-bank-42"},
		{name: "Malformed hash", hashed: "not-a-hash", password: "piggy-bank-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectMatch, hashService.ComparePassword(tt.hashed, tt.password))
		})
	}
}

func TestCost_MalformedHash(t *testing.T) {
	assert.Zero(t, NewHashService(bcrypt.MinCost).Cost("not-a-hash"))
}
