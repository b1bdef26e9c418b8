//go:build unit

package policy_test

import (
	"testing"

	"barberbook/internal/domain/policy"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, policy.Locked, policy.Parse("LOCKED"))
	assert.Equal(t, policy.Locked, policy.Parse(" locked "))

	// Anything else, including garbage and the empty cell, means unlocked.
	assert.Equal(t, policy.Unlocked, policy.Parse("UNLOCKED"))
	assert.Equal(t, policy.Unlocked, policy.Parse(""))
	assert.Equal(t, policy.Unlocked, policy.Parse("whatever"))
}

func TestAllowsDiscount(t *testing.T) {
	assert.False(t, policy.Locked.AllowsDiscount())
	assert.True(t, policy.Unlocked.AllowsDiscount())
}
