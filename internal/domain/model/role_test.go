package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoleName(t *testing.T) {
	assert.Equal(t, "super-admin", NormalizeRoleName("Super Admin"))
	assert.Equal(t, "read-only", NormalizeRoleName("  Read Only  "))
	assert.Equal(t, "ops", NormalizeRoleName("ops"))
}

func TestNormalizeAPIKeyName(t *testing.T) {
	assert.Equal(t, "mobile-app-key", NormalizeAPIKeyName("Mobile App Key"))
}
