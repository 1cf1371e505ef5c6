package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_GenerateSalt(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		salt, err := h.GenerateSalt()
		require.NoError(t, err)
		assert.Regexp(t, `^[0-9a-f]{64}$`, salt)
		assert.False(t, seen[salt], "salts must not repeat")
		seen[salt] = true
	}
}

func TestBcryptHasher_Compare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	salt, err := h.GenerateSalt()
	require.NoError(t, err)
	otherSalt, err := h.GenerateSalt()
	require.NoError(t, err)
	long := strings.Repeat("x", 100)

	tests := []struct {
		name      string
		stored    string
		salt      string
		candidate string
		wantErr   bool
	}{
		{"match", "timetable-pass", salt, "timetable-pass", false},
		{"wrong password", "timetable-pass", salt, "timetable-fail", true},
		{"wrong salt", "timetable-pass", otherSalt, "timetable-pass", true},
		{"long passwords differ past 72 bytes", long, salt, long + "y", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(salt, tt.stored)
			require.NoError(t, err)
			err = h.Compare(hash, tt.salt, tt.candidate)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewBcryptHasher_LowCostFallsBackToDefault(t *testing.T) {
	h := NewBcryptHasher(0).(*saltedBcrypt)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
