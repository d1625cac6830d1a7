package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedKeys_ContainRequired(t *testing.T) {
	allowed := make(map[string]bool, len(AllowedKeys))
	for _, key := range AllowedKeys {
		assert.False(t, allowed[key], "duplicate allowlist key %s", key)
		allowed[key] = true
	}

	for _, key := range RequiredKeys {
		assert.True(t, allowed[key], "required key %s must be allowlisted", key)
	}
}

func TestAllowedKeys_ExcludeRepo(t *testing.T) {
	assert.NotContains(t, AllowedKeys, "repo")
}
